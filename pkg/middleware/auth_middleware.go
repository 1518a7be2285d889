package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"lessonhub/internal/identity"
	"lessonhub/internal/models/db_models"
	"lessonhub/internal/services"
	"lessonhub/pkg/utils"
)

const callerKey = "caller"

// AuthMiddleware resolves the caller identity exactly once per request:
// verify the bearer credential, then look up (or lazily create) the local
// account. Handlers read the merged identity from the context instead of
// re-parsing the header.
func AuthMiddleware(verifier identity.TokenVerifier, accounts services.AccountServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := verifier.Verify(c.Request.Context(), tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		account, err := accounts.Sync(c.Request.Context(), claims)
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		c.Set(callerKey, account)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller when a valid credential is
// present and continues anonymously otherwise. Used on routes that are
// readable without an account (public lesson listing and reads).
func OptionalAuthMiddleware(verifier identity.TokenVerifier, accounts services.AccountServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		claims, err := verifier.Verify(c.Request.Context(), strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.Next()
			return
		}

		if account, err := accounts.Sync(c.Request.Context(), claims); err == nil {
			c.Set(callerKey, account)
		}
		c.Next()
	}
}

func RoleMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := CallerFromContext(c)
		if caller == nil || caller.Role != requiredRole {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CallerFromContext returns the resolved caller, or nil for anonymous
// requests.
func CallerFromContext(c *gin.Context) *db_models.Account {
	value, ok := c.Get(callerKey)
	if !ok {
		return nil
	}
	account, ok := value.(*db_models.Account)
	if !ok {
		return nil
	}
	return account
}
