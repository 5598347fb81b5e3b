package middleware

import (
	"net/http"
	"strings"

	"motorhub/internal/domain"
	"motorhub/internal/pkg/response"
	"motorhub/internal/pkg/token"

	"github.com/gin-gonic/gin"
)

const (
	ctxAccountID = "account_id"
	ctxRole      = "role"
)

// Auth validates the bearer token and stores the resolved actor on the
// request context.
func Auth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or malformed authorization header")
			c.Abort()
			return
		}

		claims, err := tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ctxAccountID, claims.AccountID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// ActorFrom reads the actor set by Auth. The bool is false on routes that
// skipped the middleware.
func ActorFrom(c *gin.Context) (domain.Actor, bool) {
	id, ok := c.Get(ctxAccountID)
	if !ok {
		return domain.Actor{}, false
	}
	role, ok := c.Get(ctxRole)
	if !ok {
		return domain.Actor{}, false
	}

	accountID, ok := id.(int64)
	if !ok {
		return domain.Actor{}, false
	}
	roleStr, ok := role.(string)
	if !ok {
		return domain.Actor{}, false
	}

	return domain.Actor{ID: accountID, Role: domain.UserRole(roleStr)}, true
}
