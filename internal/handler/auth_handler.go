package handler

import (
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"promptcraft/backend/internal/service"
)

// AuthCookieName must match the one read by the JWT middleware.
const AuthCookieName = "promptcraft_auth"

type AuthHandler struct {
	service   service.AuthService
	cookieTTL time.Duration
}

func NewAuthHandler(service service.AuthService, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{service: service, cookieTTL: cookieTTL}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *credentialsRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type authResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// RegisterPublicRoutes registers routes that don't require authentication.
func (h *AuthHandler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/auth/register", h.Register)
	g.POST("/auth/login", h.Login)
	g.POST("/auth/logout", h.Logout)
}

// Register creates a new user together with its Trash folder.
// @Summary Register user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body credentialsRequest true "Registration info"
// @Success 201 {object} authResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := bindValid(c, &req); err != nil {
		return writeServiceError(c, err)
	}

	resp, err := h.service.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}

	h.setAuthCookie(c, resp.Token)
	return c.JSON(http.StatusCreated, toAuthResponse(resp))
}

// Login authenticates a user.
// @Summary Login
// @Description Authenticate a user and get a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body credentialsRequest true "Login credentials"
// @Success 200 {object} authResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := bindValid(c, &req); err != nil {
		return writeServiceError(c, err)
	}

	resp, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}

	h.setAuthCookie(c, resp.Token)
	return c.JSON(http.StatusOK, toAuthResponse(resp))
}

// Logout clears the authentication cookie.
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} messageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

func (h *AuthHandler) setAuthCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Request().TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.cookieTTL.Seconds()),
	})
}

func toAuthResponse(resp *service.AuthResponse) authResponse {
	return authResponse{
		Token:    resp.Token,
		UserID:   idToString(resp.UserID),
		Username: resp.Username,
	}
}
