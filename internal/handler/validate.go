package handler

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"promptcraft/backend/internal/service"
)

const (
	maxFolderNameLength = 255
	maxTitleLength      = 500
	maxTagLength        = 64
	maxTags             = 50
)

var errInvalidFolderID = fmt.Errorf("%w: invalid folder ID", service.ErrInvalid)

// bindValid decodes the body into req and runs its rules. Both failures are
// reported as service.ErrInvalid so they map to 400.
func bindValid(c echo.Context, req validation.Validatable) error {
	if err := c.Bind(req); err != nil {
		return fmt.Errorf("%w: malformed request body", service.ErrInvalid)
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalid, err)
	}
	return nil
}
