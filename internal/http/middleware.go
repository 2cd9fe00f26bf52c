package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"promptcraft/backend/internal/handler"
	"promptcraft/backend/internal/logger"
	"promptcraft/backend/internal/service"
)

// RequestLoggerMiddleware logs HTTP requests using logger. Server errors log
// at error, client errors at warn and everything else at debug.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			status := res.Status
			result := "ok"
			if status >= 400 {
				result = "failed"
			}
			args := []any{
				"module", "http",
				"action", "request",
				"resource", "http",
				"result", result,
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", res.Header().Get(echo.HeaderXRequestID),
				"remote_ip", c.RealIP(),
			}

			switch {
			case status >= 500:
				logger.Error("http request", args...)
			case status >= 400:
				logger.Warn("http request", args...)
			default:
				logger.Debug("http request", args...)
			}
			return nil
		}
	}
}

// JWTAuthMiddleware validates the bearer token and puts its owner id on the
// request context. It checks the Authorization header first and falls back to
// the auth cookie.
func JWTAuthMiddleware(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				if cookie, err := c.Cookie(handler.AuthCookieName); err == nil && cookie.Value != "" {
					token = cookie.Value
				}
			}

			if token == "" {
				logAuthFailure(c, "auth missing")
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "missing authentication",
				})
			}

			ownerID, err := authService.ValidateToken(token)
			if err != nil {
				logAuthFailure(c, "auth invalid")
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "invalid token",
				})
			}

			req := c.Request()
			c.SetRequest(req.WithContext(service.WithOwner(req.Context(), ownerID)))
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func logAuthFailure(c echo.Context, msg string) {
	logger.Warn(msg,
		"module", "http",
		"action", "request",
		"resource", "auth",
		"result", "failed",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"remote_ip", c.RealIP(),
	)
}
