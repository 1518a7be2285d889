package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"lessonhub/internal/models/db_models"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindById(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	SetPremiumByEmail(ctx context.Context, email string) error
	AddFavoriteID(ctx context.Context, email, lessonID string) error
	RemoveFavoriteID(ctx context.Context, email, lessonID string) error
	List(ctx context.Context, page, pageSize int) ([]db_models.Account, error)
	Delete(ctx context.Context, id string) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (a *accountRepository) SetPremiumByEmail(ctx context.Context, email string) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("email = ?", email).
		Update("is_premium", true).Error
}

// AddFavoriteID appends the lesson id to the profile-view cache unless it is
// already present, in one UPDATE.
func (a *accountRepository) AddFavoriteID(ctx context.Context, email, lessonID string) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("email = ? AND NOT (? = ANY(COALESCE(favorite_lesson_ids, '{}')))", email, lessonID).
		Update("favorite_lesson_ids", gorm.Expr("array_append(COALESCE(favorite_lesson_ids, '{}'), ?)", lessonID)).Error
}

func (a *accountRepository) RemoveFavoriteID(ctx context.Context, email, lessonID string) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("email = ?", email).
		Update("favorite_lesson_ids", gorm.Expr("array_remove(COALESCE(favorite_lesson_ids, '{}'), ?)", lessonID)).Error
}

func (a *accountRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := a.db.WithContext(ctx).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (a *accountRepository) Delete(ctx context.Context, id string) error {
	return a.db.WithContext(ctx).Delete(&db_models.Account{}, "id = ?", id).Error
}
