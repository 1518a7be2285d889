package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"lessonhub/internal/models/db_models"
)

// ReportCountRow is one group of the per-lesson report aggregation.
type ReportCountRow struct {
	LessonID    uuid.UUID
	ReportCount int64
}

type ReportRepositoryInterface interface {
	Insert(ctx context.Context, report *db_models.Report) error
	FindById(ctx context.Context, id string) (*db_models.Report, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, lessonID string) ([]db_models.Report, error)
	CountByLesson(ctx context.Context) ([]ReportCountRow, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepositoryInterface {
	return &reportRepository{db: db}
}

func (r *reportRepository) Insert(ctx context.Context, report *db_models.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) FindById(ctx context.Context, id string) (*db_models.Report, error) {
	var report db_models.Report
	err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &report, nil
}

func (r *reportRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Report{}, "id = ?", id).Error
}

func (r *reportRepository) List(ctx context.Context, lessonID string) ([]db_models.Report, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Report{})
	if lessonID != "" {
		query = query.Where("lesson_id = ?", lessonID)
	}

	var reports []db_models.Report
	err := query.Order("created_at DESC").Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) CountByLesson(ctx context.Context) ([]ReportCountRow, error) {
	var rows []ReportCountRow
	err := r.db.WithContext(ctx).
		Model(&db_models.Report{}).
		Select("lesson_id, COUNT(*) AS report_count").
		Group("lesson_id").
		Order("report_count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
