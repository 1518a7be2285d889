package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"lessonhub/internal/models/request_models"
	"lessonhub/internal/models/response_models"
	"lessonhub/internal/services"
	"lessonhub/pkg/middleware"
	"lessonhub/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// SyncAccount godoc
// @Summary Sync the caller's profile from the identity provider
// @Description The auth middleware already verified the credential and created the account on first sight; this returns the merged identity.
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/sync [post]
func (a *AccountController) SyncAccount(c *gin.Context) {
	caller := middleware.CallerFromContext(c)
	utils.RespondSuccess(c, response_models.AccountFromModel(caller), "Account synced successfully")
}

func (a *AccountController) GetMe(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	account, err := a.accountService.GetByEmail(c.Request.Context(), caller.Email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.AccountFromModel(account), "Account fetched successfully")
}

func (a *AccountController) UpdateMe(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	var request request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	account, err := a.accountService.UpdateProfile(c.Request.Context(), caller.Email, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.AccountFromModel(account), "Profile updated successfully")
}
