package controllers

import (
	"github.com/gin-gonic/gin"
	"lessonhub/internal/services"
	"lessonhub/pkg/middleware"
	"lessonhub/pkg/utils"
)

type FavoriteController struct {
	favoriteService services.FavoriteServiceInterface
}

func NewFavoriteController(favoriteService services.FavoriteServiceInterface) *FavoriteController {
	return &FavoriteController{
		favoriteService: favoriteService,
	}
}

func (f *FavoriteController) ToggleFavorite(c *gin.Context) {
	result, err := f.favoriteService.ToggleFavorite(c.Request.Context(), middleware.CallerFromContext(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Favorite toggled successfully")
}

func (f *FavoriteController) ListFavorites(c *gin.Context) {
	lessons, err := f.favoriteService.ListFavorites(
		c.Request.Context(),
		middleware.CallerFromContext(c),
		c.Query("category"),
		c.Query("emotionalTag"),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, lessons, "Favorites fetched successfully")
}
