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

type CommentController struct {
	commentService services.CommentServiceInterface
}

func NewCommentController(commentService services.CommentServiceInterface) *CommentController {
	return &CommentController{
		commentService: commentService,
	}
}

func (cc *CommentController) AddComment(c *gin.Context) {
	var request request_models.CreateCommentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	comment, err := cc.commentService.AddComment(c.Request.Context(), middleware.CallerFromContext(c), c.Param("id"), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comment, "Comment added successfully")
}

func (cc *CommentController) ListComments(c *gin.Context) {
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

	comments, err := cc.commentService.ListComments(c.Request.Context(), middleware.CallerFromContext(c), c.Param("id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comments, "Comments fetched successfully")
}
