package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"lessonhub/internal/models/db_models"
)

type FavoriteRepositoryInterface interface {
	Find(ctx context.Context, email string, lessonID uuid.UUID) (*db_models.Favorite, error)
	Insert(ctx context.Context, favorite *db_models.Favorite) error
	Delete(ctx context.Context, email string, lessonID uuid.UUID) error
	ListByAccount(ctx context.Context, email string) ([]db_models.Favorite, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepositoryInterface {
	return &favoriteRepository{db: db}
}

func (f *favoriteRepository) Find(ctx context.Context, email string, lessonID uuid.UUID) (*db_models.Favorite, error) {
	var favorite db_models.Favorite
	err := f.db.WithContext(ctx).
		Where("account_email = ? AND lesson_id = ?", email, lessonID).
		First(&favorite).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &favorite, nil
}

func (f *favoriteRepository) Insert(ctx context.Context, favorite *db_models.Favorite) error {
	return f.db.WithContext(ctx).Create(favorite).Error
}

func (f *favoriteRepository) Delete(ctx context.Context, email string, lessonID uuid.UUID) error {
	return f.db.WithContext(ctx).
		Where("account_email = ? AND lesson_id = ?", email, lessonID).
		Delete(&db_models.Favorite{}).Error
}

func (f *favoriteRepository) ListByAccount(ctx context.Context, email string) ([]db_models.Favorite, error) {
	var favorites []db_models.Favorite
	err := f.db.WithContext(ctx).
		Where("account_email = ?", email).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}
