package services

import (
	"context"
	"time"

	"lessonhub/internal/models/response_models"
	"lessonhub/internal/repositories"
	"lessonhub/pkg/utils"
)

type DashboardService interface {
	BuildDashboard(ctx context.Context) (*response_models.DashboardReport, error)
}

type dashboardService struct {
	repo    repositories.DashboardRepository
	reports ReportServiceInterface
}

func NewDashboardService(repo repositories.DashboardRepository, reports ReportServiceInterface) DashboardService {
	return &dashboardService{repo: repo, reports: reports}
}

func (s *dashboardService) BuildDashboard(ctx context.Context) (*response_models.DashboardReport, error) {
	totalAccounts, err := s.repo.CountAccounts(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	premiumAccounts, err := s.repo.CountPremiumAccounts(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newAccounts, err := s.repo.CountNewAccountsSince(ctx, time.Now().AddDate(0, 0, -30))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalLessons, err := s.repo.CountLessons(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalReports, err := s.repo.CountReports(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalComments, err := s.repo.CountComments(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	reported, err := s.reports.AggregatedReportedLessons(ctx)
	if err != nil {
		return nil, err
	}

	return &response_models.DashboardReport{
		TotalAccounts:   totalAccounts,
		PremiumAccounts: premiumAccounts,
		NewAccounts30d:  newAccounts,
		TotalLessons:    totalLessons,
		TotalReports:    totalReports,
		TotalComments:   totalComments,
		ReportedLessons: reported,
	}, nil
}
