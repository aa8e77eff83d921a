package handlers

import (
	"net/http"
	"strings"

	"order_manager/internal/apierror"
	"order_manager/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const claimsKey = "auth_claims"

// AuthMiddleware validates the bearer token and stores its claims on the
// request context. The role name rides in the token, so no lookup happens
// per request.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierror.New("missing bearer token", apierror.CodeUnauthorized))
			return
		}

		claims, err := authService.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierror.New("invalid or expired token", apierror.CodeUnauthorized))
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRoles rejects callers whose token role is not in the allow list.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	return func(c *gin.Context) {
		claims := getClaims(c)
		if claims == nil || !allowed[claims.RoleName] {
			c.AbortWithStatusJSON(http.StatusForbidden,
				apierror.New("role is not permitted for this resource", apierror.CodeUnauthorized))
			return
		}
		c.Next()
	}
}

func getClaims(c *gin.Context) *services.Claims {
	value, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, ok := value.(*services.Claims)
	if !ok {
		return nil
	}
	return claims
}

// RateLimit applies an in-memory per-IP limit, e.g. "100-M" for a hundred
// requests a minute.
func RateLimit(format string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(format)
	if err != nil {
		return nil, err
	}
	instance := limiter.New(memory.NewStore(), rate)
	return mgin.NewMiddleware(instance), nil
}
