package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"lessonhub/internal/models/db_models"
)

type CommentRepositoryInterface interface {
	Insert(ctx context.Context, comment *db_models.Comment) error
	ListByLesson(ctx context.Context, lessonID uuid.UUID, page, pageSize int) ([]db_models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepositoryInterface {
	return &commentRepository{db: db}
}

func (c *commentRepository) Insert(ctx context.Context, comment *db_models.Comment) error {
	return c.db.WithContext(ctx).Create(comment).Error
}

func (c *commentRepository) ListByLesson(ctx context.Context, lessonID uuid.UUID, page, pageSize int) ([]db_models.Comment, error) {
	var comments []db_models.Comment
	err := c.db.WithContext(ctx).
		Where("lesson_id = ?", lessonID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
