package handler

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"promptcraft/backend/internal/service"
)

const (
	maxSuggestionContentLength = 20000
	maxRefineTokens            = 8192
)

type AIHandler struct {
	service service.SuggestionService
}

type suggestRequest struct {
	Content  string  `json:"content"`
	FolderID *string `json:"folderId"`
}

func (r *suggestRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Content, validation.Required, validation.RuneLength(1, maxSuggestionContentLength)),
	)
}

type refineOptionsRequest struct {
	Persona *bool `json:"persona"`
	Task    *bool `json:"task"`
	Context *bool `json:"context"`
	Format  *bool `json:"format"`
}

type refineRequest struct {
	Content   string               `json:"content"`
	Options   refineOptionsRequest `json:"options"`
	MaxTokens int                  `json:"maxTokens"`
}

func (r *refineRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Content, validation.Required, validation.RuneLength(1, maxSuggestionContentLength)),
		validation.Field(&r.MaxTokens, validation.Min(0), validation.Max(maxRefineTokens)),
	)
}

type suggestTagsResponse struct {
	SuggestedTags []string `json:"suggestedTags"`
}

type suggestTitleResponse struct {
	Title string `json:"title"`
}

type refineResponse struct {
	RefinedPrompt string `json:"refinedPrompt"`
}

func NewAIHandler(service service.SuggestionService) *AIHandler {
	return &AIHandler{service: service}
}

func (h *AIHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/ai/suggest-tags", h.SuggestTags)
	g.POST("/ai/suggest-title", h.SuggestTitle)
	g.POST("/ai/refine-prompt", h.Refine)
}

// SuggestTags asks the AI provider for tags.
// @Summary Suggest tags
// @Description Suggest 3 to 5 tags for the prompt content. folderId adds the folder path as context.
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body suggestRequest true "Prompt content"
// @Success 200 {object} suggestTagsResponse
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /ai/suggest-tags [post]
func (h *AIHandler) SuggestTags(c echo.Context) error {
	ownerID, content, folderID, err := h.bindSuggest(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	tags, err := h.service.SuggestTags(c.Request().Context(), ownerID, content, folderID)
	if err != nil {
		return writeServiceError(c, err)
	}
	if tags == nil {
		tags = []string{}
	}
	return c.JSON(http.StatusOK, suggestTagsResponse{SuggestedTags: tags})
}

// SuggestTitle asks the AI provider for a short title.
// @Summary Suggest title
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body suggestRequest true "Prompt content"
// @Success 200 {object} suggestTitleResponse
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /ai/suggest-title [post]
func (h *AIHandler) SuggestTitle(c echo.Context) error {
	ownerID, content, folderID, err := h.bindSuggest(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	title, err := h.service.SuggestTitle(c.Request().Context(), ownerID, content, folderID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, suggestTitleResponse{Title: title})
}

// Refine rewrites a prompt along the selected criteria.
// @Summary Refine prompt
// @Description Rewrite the prompt. Options left out default to enabled.
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body refineRequest true "Prompt and refine options"
// @Success 200 {object} refineResponse
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /ai/refine-prompt [post]
func (h *AIHandler) Refine(c echo.Context) error {
	var req refineRequest
	if err := bindValid(c, &req); err != nil {
		return writeServiceError(c, err)
	}
	refined, err := h.service.Refine(c.Request().Context(), req.Content, service.RefineOptions{
		Persona:   req.Options.Persona,
		Task:      req.Options.Task,
		Context:   req.Options.Context,
		Format:    req.Options.Format,
		MaxTokens: req.MaxTokens,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, refineResponse{RefinedPrompt: refined})
}

func (h *AIHandler) bindSuggest(c echo.Context) (int64, string, *int64, error) {
	var req suggestRequest
	if err := bindValid(c, &req); err != nil {
		return 0, "", nil, err
	}
	folderID, err := parseOptionalID(req.FolderID)
	if err != nil {
		return 0, "", nil, errInvalidFolderID
	}
	ownerID, err := service.OwnerFrom(c.Request().Context())
	if err != nil {
		return 0, "", nil, err
	}
	return ownerID, req.Content, folderID, nil
}
