package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"lessonhub/internal/models/db_models"
)

// LessonFilter narrows a listing. Zero values mean "no constraint";
// Visibility left empty lists every visibility (admin and owner views).
type LessonFilter struct {
	Category     string
	EmotionalTag string
	Search       string // case-insensitive substring match on title
	CreatorEmail string
	FeaturedOnly bool
	Visibility   string
	Sort         string // "newest" | "oldest" | "popular"
	Page         int
	PageSize     int
}

type LessonRepositoryInterface interface {
	Insert(ctx context.Context, lesson *db_models.Lesson) error
	FindById(ctx context.Context, id string) (*db_models.Lesson, error)
	FindByIds(ctx context.Context, ids []string) ([]db_models.Lesson, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter LessonFilter) ([]db_models.Lesson, int64, error)
	CountByCreator(ctx context.Context, email string) (int64, error)
	AddLike(ctx context.Context, id, email string) (bool, error)
	RemoveLike(ctx context.Context, id, email string) (bool, error)
}

type lessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) LessonRepositoryInterface {
	return &lessonRepository{db: db}
}

func (l *lessonRepository) Insert(ctx context.Context, lesson *db_models.Lesson) error {
	return l.db.WithContext(ctx).Create(lesson).Error
}

func (l *lessonRepository) FindById(ctx context.Context, id string) (*db_models.Lesson, error) {
	var lesson db_models.Lesson
	err := l.db.WithContext(ctx).First(&lesson, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &lesson, nil
}

func (l *lessonRepository) FindByIds(ctx context.Context, ids []string) ([]db_models.Lesson, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var lessons []db_models.Lesson
	err := l.db.WithContext(ctx).Where("id IN ?", ids).Find(&lessons).Error
	if err != nil {
		return nil, err
	}
	return lessons, nil
}

func (l *lessonRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return l.db.WithContext(ctx).
		Model(&db_models.Lesson{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (l *lessonRepository) Delete(ctx context.Context, id string) error {
	return l.db.WithContext(ctx).Delete(&db_models.Lesson{}, "id = ?", id).Error
}

func (l *lessonRepository) List(ctx context.Context, filter LessonFilter) ([]db_models.Lesson, int64, error) {
	query := l.db.WithContext(ctx).Model(&db_models.Lesson{})

	if filter.Visibility != "" {
		query = query.Where("visibility = ?", filter.Visibility)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.EmotionalTag != "" {
		query = query.Where("emotional_tag = ?", filter.EmotionalTag)
	}
	if filter.CreatorEmail != "" {
		query = query.Where("creator_email = ?", filter.CreatorEmail)
	}
	if filter.FeaturedOnly {
		query = query.Where("featured = TRUE")
	}
	if filter.Search != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.Sort {
	case "oldest":
		query = query.Order("created_at ASC")
	case "popular":
		query = query.Order("like_count DESC, created_at DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var lessons []db_models.Lesson
	err := query.
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Find(&lessons).Error
	if err != nil {
		return nil, 0, err
	}

	return lessons, total, nil
}

func (l *lessonRepository) CountByCreator(ctx context.Context, email string) (int64, error) {
	var count int64
	err := l.db.WithContext(ctx).
		Model(&db_models.Lesson{}).
		Where("creator_email = ?", email).
		Count(&count).Error
	return count, err
}

// AddLike appends the caller to liked_by and bumps like_count in a single
// guarded UPDATE, so the counter always matches the set. Returns false when
// the caller already liked the lesson (no row changed).
func (l *lessonRepository) AddLike(ctx context.Context, id, email string) (bool, error) {
	result := l.db.WithContext(ctx).
		Model(&db_models.Lesson{}).
		Where("id = ? AND NOT (? = ANY(COALESCE(liked_by, '{}')))", id, email).
		Updates(map[string]interface{}{
			"liked_by":   gorm.Expr("array_append(COALESCE(liked_by, '{}'), ?)", email),
			"like_count": gorm.Expr("like_count + 1"),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (l *lessonRepository) RemoveLike(ctx context.Context, id, email string) (bool, error) {
	result := l.db.WithContext(ctx).
		Model(&db_models.Lesson{}).
		Where("id = ? AND ? = ANY(COALESCE(liked_by, '{}'))", id, email).
		Updates(map[string]interface{}{
			"liked_by":   gorm.Expr("array_remove(liked_by, ?)", email),
			"like_count": gorm.Expr("like_count - 1"),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
