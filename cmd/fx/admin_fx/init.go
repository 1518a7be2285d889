package admin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"lessonhub/internal/api/controllers"
	"lessonhub/internal/repositories"
	"lessonhub/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService, provideAdminController)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(repo repositories.DashboardRepository, reportService services.ReportServiceInterface) services.DashboardService {
	return services.NewDashboardService(repo, reportService)
}

func provideAdminController(
	accountService services.AccountServiceInterface,
	lessonService services.LessonServiceInterface,
	dashboardService services.DashboardService,
) *controllers.AdminController {
	return controllers.NewAdminController(accountService, lessonService, dashboardService)
}
