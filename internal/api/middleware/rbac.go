package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/threadmarket/marketplace-api/internal/core/domain"
)

// RequireRole gates a route on the role carried in the verified claims.
// It runs after Auth, so an expired token is rejected as 401 before any
// role comparison happens. Rejections surface as domain.ErrForbidden and
// render through the central error handler, keeping the 403 envelope
// identical to every other error response.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
