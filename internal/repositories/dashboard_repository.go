package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"lessonhub/internal/models/db_models"
)

type DashboardRepository interface {
	CountAccounts(ctx context.Context) (int64, error)
	CountPremiumAccounts(ctx context.Context) (int64, error)
	CountNewAccountsSince(ctx context.Context, since time.Time) (int64, error)
	CountLessons(ctx context.Context) (int64, error)
	CountReports(ctx context.Context) (int64, error)
	CountComments(ctx context.Context) (int64, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (d *dashboardRepository) CountAccounts(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&db_models.Account{}).Count(&count).Error
	return count, err
}

func (d *dashboardRepository) CountPremiumAccounts(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("is_premium = TRUE").
		Count(&count).Error
	return count, err
}

func (d *dashboardRepository) CountNewAccountsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("created_at >= ?", since.Unix()).
		Count(&count).Error
	return count, err
}

func (d *dashboardRepository) CountLessons(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&db_models.Lesson{}).Count(&count).Error
	return count, err
}

func (d *dashboardRepository) CountReports(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&db_models.Report{}).Count(&count).Error
	return count, err
}

func (d *dashboardRepository) CountComments(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&db_models.Comment{}).Count(&count).Error
	return count, err
}
