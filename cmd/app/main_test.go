package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lessonhub/internal/api/controllers"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	// Handlers are never reached in these tests, so the controllers can
	// carry nil services; building the engine is what exercises the route
	// tree registration.
	return ProvideRouter(
		nil, nil,
		controllers.NewAccountController(nil),
		controllers.NewLessonController(nil),
		controllers.NewFavoriteController(nil),
		controllers.NewCommentController(nil),
		controllers.NewReportController(nil),
		controllers.NewAdminController(nil, nil, nil),
		controllers.NewPaymentController(nil),
	)
}

func TestRouterRegistersContractPaths(t *testing.T) {
	router := testRouter()

	registered := map[string]bool{}
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"POST /users/sync",
		"GET /users/me",
		"PUT /users/me",
		"GET /lessons",
		"GET /lessons/favorites",
		"GET /lessons/:id",
		"GET /lessons/:id/comments",
		"POST /lessons",
		"PUT /lessons/:id",
		"DELETE /lessons/:id",
		"POST /lessons/:id/like",
		"POST /lessons/:id/favorite",
		"POST /lessons/:id/comments",
		"POST /reports",
		"GET /reports",
		"DELETE /reports/:id",
		"GET /admin/users",
		"PUT /admin/users/:id/role",
		"DELETE /admin/users/:id",
		"GET /admin/lessons",
		"DELETE /admin/lessons/:id",
		"GET /admin/stats",
		"POST /payments/create-checkout",
		"POST /payments/webhook",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

// /lessons/favorites is a static sibling of /lessons/:id; the router must
// dispatch it to the favorites handler, not treat "favorites" as a lesson id.
func TestFavoritesPathNotShadowedByLessonParam(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/lessons/favorites", nil))

	// No credential: the auth middleware on the favorites route rejects with
	// 401. A 404 here would mean the path never matched.
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
