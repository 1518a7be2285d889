package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"lessonhub/internal/models/request_models"
	"lessonhub/internal/services"
	"lessonhub/pkg/middleware"
	"lessonhub/pkg/utils"
)

type LessonController struct {
	lessonService services.LessonServiceInterface
}

func NewLessonController(lessonService services.LessonServiceInterface) *LessonController {
	return &LessonController{
		lessonService: lessonService,
	}
}

func (l *LessonController) CreateLesson(c *gin.Context) {
	var request request_models.CreateLessonRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	lesson, err := l.lessonService.CreateLesson(c.Request.Context(), middleware.CallerFromContext(c), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, lesson, "Lesson created successfully")
}

func (l *LessonController) GetLessonById(c *gin.Context) {
	lesson, err := l.lessonService.GetLessonById(c.Request.Context(), middleware.CallerFromContext(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, lesson, "Lesson fetched successfully")
}

// ListLessons godoc
// @Summary List public lessons
// @Description Filterable by category, emotionalTag, creator, search (title substring), featured. Sort: newest (default), oldest, popular. Pass mine=true for the caller's own lessons regardless of visibility.
// @Tags Lessons
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /lessons [get]
func (l *LessonController) ListLessons(c *gin.Context) {
	query, err := parseLessonsQuery(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	result, err := l.lessonService.ListLessons(c.Request.Context(), middleware.CallerFromContext(c), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Lessons fetched successfully")
}

func (l *LessonController) UpdateLesson(c *gin.Context) {
	var request request_models.UpdateLessonRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	lesson, err := l.lessonService.UpdateLesson(c.Request.Context(), middleware.CallerFromContext(c), c.Param("id"), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, lesson, "Lesson updated successfully")
}

func (l *LessonController) DeleteLesson(c *gin.Context) {
	err := l.lessonService.DeleteLesson(c.Request.Context(), middleware.CallerFromContext(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Lesson deleted successfully")
}

func (l *LessonController) ToggleLike(c *gin.Context) {
	result, err := l.lessonService.ToggleLike(c.Request.Context(), middleware.CallerFromContext(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Like toggled successfully")
}

func parseLessonsQuery(c *gin.Context) (request_models.ListLessonsQuery, error) {
	query := request_models.ListLessonsQuery{
		Category:     c.Query("category"),
		EmotionalTag: c.Query("emotionalTag"),
		Search:       c.Query("search"),
		CreatorEmail: c.Query("creator"),
		FeaturedOnly: c.Query("featured") == "true",
		Sort:         c.DefaultQuery("sort", "newest"),
		Mine:         c.Query("mine") == "true",
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return query, utils.ErrInvalidPage
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil {
		return query, utils.ErrInvalidPageSize
	}
	query.Page = page
	query.PageSize = pageSize

	return query, nil
}
