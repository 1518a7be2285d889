package report_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"lessonhub/internal/api/controllers"
	"lessonhub/internal/repositories"
	"lessonhub/internal/services"
)

var Module = fx.Provide(
	provideReportRepo, provideReportService, provideReportController)

func provideReportRepo(db *gorm.DB) repositories.ReportRepositoryInterface {
	return repositories.NewReportRepository(db)
}

func provideReportService(reportRepo repositories.ReportRepositoryInterface, lessonRepo repositories.LessonRepositoryInterface) services.ReportServiceInterface {
	return services.NewReportService(reportRepo, lessonRepo)
}

func provideReportController(reportService services.ReportServiceInterface) *controllers.ReportController {
	return controllers.NewReportController(reportService)
}
