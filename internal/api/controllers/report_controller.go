package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"lessonhub/internal/models/request_models"
	"lessonhub/internal/services"
	"lessonhub/pkg/middleware"
	"lessonhub/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
}

func NewReportController(reportService services.ReportServiceInterface) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

func (r *ReportController) FileReport(c *gin.Context) {
	var request request_models.CreateReportRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	report, err := r.reportService.FileReport(c.Request.Context(), middleware.CallerFromContext(c), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Report filed successfully")
}

// ListReports godoc
// @Summary List reports, each joined with its lesson when it still exists
// @Tags Moderation
// @Produce json
// @Param lessonId query string false "Filter by lesson"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reports [get]
func (r *ReportController) ListReports(c *gin.Context) {
	reports, err := r.reportService.ListReports(c.Request.Context(), c.Query("lessonId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reports, "Reports fetched successfully")
}

func (r *ReportController) ResolveReport(c *gin.Context) {
	if err := r.reportService.ResolveReport(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Report resolved successfully")
}
