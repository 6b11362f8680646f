package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"book-api/internal/application/interfaces"
	"book-api/internal/config"
)

// Context keys set by BearerAuth for downstream handlers.
const (
	ContextUserID = "auth.user_id"
	ContextToken  = "auth.token"
)

// BearerAuth rejects the request before any handler logic runs unless a
// live bearer token is presented.
func BearerAuth(tokens interfaces.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			const scheme = "Bearer "

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, scheme) {
				return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Unauthenticated."})
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, scheme))
			userID, err := tokens.Authenticate(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Unauthenticated."})
			}

			c.Set(ContextUserID, userID)
			c.Set(ContextToken, token)
			return next(c)
		}
	}
}

// LoginRateLimiter throttles login attempts per client IP, 429 with a
// Retry-After hint once the bucket is drained.
func LoginRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	window := cfg.LoginRateWindow
	if window <= 0 {
		window = time.Minute
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(cfg.LoginRateLimit) / window.Seconds()),
			Burst:     cfg.LoginRateLimit,
			ExpiresIn: 3 * window,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			c.Response().Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
			return c.JSON(http.StatusTooManyRequests, messageResponse{Message: "Too Many Attempts."})
		},
	})
}
