package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"promptcraft/backend/internal/logger"
	"promptcraft/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{Error: "operation not allowed on system folder"})
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrAIUnavailable):
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "ai provider not configured"})
	case errors.Is(err, service.ErrInvariant):
		logger.Error("hierarchy invariant violated",
			"module", "handler",
			"action", "request",
			"resource", "folder",
			"result", "failed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	default:
		logger.Error("request failed",
			"module", "handler",
			"action", "request",
			"resource", "http",
			"result", "failed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func idToString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func idPtrToString(id *int64) *string {
	if id == nil {
		return nil
	}
	s := idToString(*id)
	return &s
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
