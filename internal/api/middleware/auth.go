package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/threadmarket/marketplace-api/internal/api/metrics"
	"github.com/threadmarket/marketplace-api/internal/core/auth"
)

// Auth verifies the bearer token and injects the claims into the echo
// context. All rejections are 401, but missing, malformed, and expired
// tokens are logged and counted separately. The identity is never re-read
// from storage: the signed claims are trusted for the token's lifetime, so a
// role change only takes effect at the next login.
func Auth(tokens *auth.Issuer, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				log.Debug().Str("path", c.Path()).Msg("request without bearer token")
				metrics.AuthRejectedTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				log.Debug().Str("path", c.Path()).Msg("malformed authorization header")
				metrics.AuthRejectedTotal.WithLabelValues("malformed").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					log.Debug().Str("path", c.Path()).Msg("expired token")
					metrics.AuthRejectedTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				log.Warn().Str("path", c.Path()).Msg("malformed or tampered token")
				metrics.AuthRejectedTotal.WithLabelValues("malformed").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("user_id", claims.Subject)
			c.Set("username", claims.Username)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
