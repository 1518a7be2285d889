package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lessonhub/internal/identity"
	"lessonhub/internal/models/db_models"
	"lessonhub/internal/models/request_models"
)

type fakeVerifier struct {
	claims *identity.Claims
	err    error
}

func (f *fakeVerifier) Verify(ctx context.Context, raw string) (*identity.Claims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

// fakeAccountService returns a fixed account from Sync; other operations are
// unused by the middleware.
type fakeAccountService struct {
	account *db_models.Account
	syncErr error
}

func (f *fakeAccountService) Sync(ctx context.Context, claims *identity.Claims) (*db_models.Account, error) {
	if f.syncErr != nil {
		return nil, f.syncErr
	}
	return f.account, nil
}

func (f *fakeAccountService) GetByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return f.account, nil
}

func (f *fakeAccountService) UpdateProfile(ctx context.Context, email string, request request_models.UpdateProfileRequest) (*db_models.Account, error) {
	return f.account, nil
}

func (f *fakeAccountService) ListAccounts(ctx context.Context, page, pageSize int) ([]db_models.Account, error) {
	return nil, nil
}

func (f *fakeAccountService) SetRole(ctx context.Context, id string, role string) error {
	return nil
}

func (f *fakeAccountService) DeleteAccount(ctx context.Context, id string) error {
	return nil
}

// probeRouter wires the middleware in front of a handler that reports the
// resolved caller's email, or "anonymous".
func probeRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	probe := func(c *gin.Context) {
		caller := CallerFromContext(c)
		if caller == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, caller.Email)
	}
	router.GET("/probe", append(handlers, probe)...)
	return router
}

func get(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingOrMalformedHeader(t *testing.T) {
	router := probeRouter(AuthMiddleware(&fakeVerifier{}, &fakeAccountService{}))

	assert.Equal(t, http.StatusUnauthorized, get(router, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(router, "Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, get(router, "token-without-scheme").Code)
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("expired")}
	router := probeRouter(AuthMiddleware(verifier, &fakeAccountService{}))

	assert.Equal(t, http.StatusUnauthorized, get(router, "Bearer bad").Code)
}

func TestAuthMiddlewarePutsCallerInContext(t *testing.T) {
	verifier := &fakeVerifier{claims: &identity.Claims{Email: "alice@x.com"}}
	accounts := &fakeAccountService{account: &db_models.Account{Email: "alice@x.com", Role: db_models.RoleUser}}
	router := probeRouter(AuthMiddleware(verifier, accounts))

	w := get(router, "Bearer good")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice@x.com", w.Body.String())
}

func TestOptionalAuthMiddlewareContinuesAnonymously(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("expired")}
	router := probeRouter(OptionalAuthMiddleware(verifier, &fakeAccountService{}))

	w := get(router, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())

	// A bad token degrades to anonymous rather than failing the request.
	w = get(router, "Bearer bad")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())
}

func TestOptionalAuthMiddlewareResolvesValidCaller(t *testing.T) {
	verifier := &fakeVerifier{claims: &identity.Claims{Email: "alice@x.com"}}
	accounts := &fakeAccountService{account: &db_models.Account{Email: "alice@x.com", Role: db_models.RoleUser}}
	router := probeRouter(OptionalAuthMiddleware(verifier, accounts))

	w := get(router, "Bearer good")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice@x.com", w.Body.String())
}

func TestRoleMiddleware(t *testing.T) {
	verifier := &fakeVerifier{claims: &identity.Claims{Email: "user@x.com"}}
	userAccounts := &fakeAccountService{account: &db_models.Account{Email: "user@x.com", Role: db_models.RoleUser}}
	router := probeRouter(AuthMiddleware(verifier, userAccounts), RoleMiddleware(db_models.RoleAdmin))

	assert.Equal(t, http.StatusForbidden, get(router, "Bearer good").Code)

	adminAccounts := &fakeAccountService{account: &db_models.Account{Email: "admin@x.com", Role: db_models.RoleAdmin}}
	router = probeRouter(AuthMiddleware(verifier, adminAccounts), RoleMiddleware(db_models.RoleAdmin))

	w := get(router, "Bearer good")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin@x.com", w.Body.String())
}
