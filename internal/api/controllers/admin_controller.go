package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"lessonhub/internal/models/request_models"
	"lessonhub/internal/models/response_models"
	"lessonhub/internal/services"
	"lessonhub/pkg/middleware"
	"lessonhub/pkg/utils"
)

type AdminController struct {
	accountService   services.AccountServiceInterface
	lessonService    services.LessonServiceInterface
	dashboardService services.DashboardService
}

func NewAdminController(
	accountService services.AccountServiceInterface,
	lessonService services.LessonServiceInterface,
	dashboardService services.DashboardService,
) *AdminController {
	return &AdminController{
		accountService:   accountService,
		lessonService:    lessonService,
		dashboardService: dashboardService,
	}
}

func (a *AdminController) ListUsers(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidPage)
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidPageSize)
		return
	}

	accounts, err := a.accountService.ListAccounts(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	items := make([]*response_models.AccountResponse, 0, len(accounts))
	for i := range accounts {
		items = append(items, response_models.AccountFromModel(&accounts[i]))
	}
	utils.RespondSuccess(c, items, "Users fetched successfully")
}

func (a *AdminController) SetUserRole(c *gin.Context) {
	var request request_models.SetRoleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.accountService.SetRole(c.Request.Context(), c.Param("id"), request.Role); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Role updated successfully")
}

func (a *AdminController) DeleteUser(c *gin.Context) {
	if err := a.accountService.DeleteAccount(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User deleted successfully")
}

// ListAllLessons lists every lesson regardless of visibility.
func (a *AdminController) ListAllLessons(c *gin.Context) {
	query, err := parseLessonsQuery(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	query.AnyVisibility = true

	result, err := a.lessonService.ListLessons(c.Request.Context(), middleware.CallerFromContext(c), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Lessons fetched successfully")
}

func (a *AdminController) DeleteLesson(c *gin.Context) {
	err := a.lessonService.DeleteLesson(c.Request.Context(), middleware.CallerFromContext(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Lesson deleted successfully")
}

// GetStats godoc
// @Summary Admin dashboard: platform totals and the per-lesson report aggregation
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/stats [get]
func (a *AdminController) GetStats(c *gin.Context) {
	report, err := a.dashboardService.BuildDashboard(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard built successfully")
}
