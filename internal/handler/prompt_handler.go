package handler

import (
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"promptcraft/backend/internal/model"
	"promptcraft/backend/internal/service"
)

type PromptHandler struct {
	prompts service.PromptService
	scoper  *service.Scoper
}

type promptRequest struct {
	Title    string   `json:"title"`
	Prompt   string   `json:"prompt"`
	Tags     []string `json:"tags"`
	FolderID string   `json:"folderId"`
}

func (r *promptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.RuneLength(0, maxTitleLength)),
		validation.Field(&r.Prompt, validation.Required),
		validation.Field(&r.FolderID, validation.Required),
		validation.Field(&r.Tags,
			validation.Length(0, maxTags),
			validation.Each(validation.RuneLength(0, maxTagLength)),
		),
	)
}

type favoriteRequest struct {
	IsFavorite bool `json:"isFavorite"`
}

func (r *favoriteRequest) Validate() error {
	return nil
}

type promptResponse struct {
	ID         string   `json:"id"`
	FolderID   string   `json:"folderId"`
	Title      string   `json:"title"`
	Prompt     string   `json:"prompt"`
	Tags       []string `json:"tags"`
	IsFavorite bool     `json:"isFavorite"`
	DeletedAt  *string  `json:"deletedAt,omitempty"`
	CreatedAt  string   `json:"createdAt"`
	UpdatedAt  string   `json:"updatedAt"`
}

func NewPromptHandler(prompts service.PromptService, scoper *service.Scoper) *PromptHandler {
	return &PromptHandler{prompts: prompts, scoper: scoper}
}

func (h *PromptHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/prompts", h.List)
	g.POST("/prompts", h.Create)
	g.GET("/prompts/:id", h.Get)
	g.PUT("/prompts/:id", h.Update)
	g.DELETE("/prompts/:id", h.Delete)
	g.PUT("/prompts/:id/favorite", h.SetFavorite)
	g.PUT("/prompts/:id/move-to-trash", h.MoveToTrash)
}

// List returns prompts, optionally filtered.
// @Summary List prompts
// @Description List prompts of one folder (folderId) or all of them, optionally favorites only.
// @Tags prompts
// @Produce json
// @Security BearerAuth
// @Param folderId query string false "Filter by folder ID"
// @Param favorites query bool false "Only favorites"
// @Success 200 {array} promptResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /prompts [get]
func (h *PromptHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	ownerID, err := service.OwnerFrom(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}

	var folderID *int64
	if raw := c.QueryParam("folderId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid folder ID"})
		}
		folderID = &id
	}

	prompts, err := h.prompts.List(ctx, ownerID, folderID, isTrue(c.QueryParam("favorites")))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toPromptResponses(prompts))
}

// Create creates a prompt.
// @Summary Create a prompt
// @Tags prompts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param prompt body promptRequest true "Prompt"
// @Success 201 {object} promptResponse
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /prompts [post]
func (h *PromptHandler) Create(c echo.Context) error {
	in, err := h.bindInput(c)
	if err != nil {
		return writeServiceError(c, err)
	}

	ctx := c.Request().Context()
	ownerID, err := service.OwnerFrom(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	prompt, err := h.prompts.Create(ctx, ownerID, in)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toPromptResponse(prompt))
}

// Get returns one prompt.
// @Summary Get a prompt
// @Tags prompts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Prompt ID"
// @Success 200 {object} promptResponse
// @Failure 404 {object} errorResponse
// @Router /prompts/{id} [get]
func (h *PromptHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid prompt ID"})
	}

	ctx := c.Request().Context()
	ownerID, err := service.OwnerFrom(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	prompt, err := h.prompts.Get(ctx, ownerID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toPromptResponse(prompt))
}

// Update replaces a prompt's fields.
// @Summary Update a prompt
// @Description Moving a prompt into Trash stamps deletedAt; moving it out clears it.
// @Tags prompts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Prompt ID"
// @Param prompt body promptRequest true "Prompt"
// @Success 200 {object} promptResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /prompts/{id} [put]
func (h *PromptHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid prompt ID"})
	}
	in, err := h.bindInput(c)
	if err != nil {
		return writeServiceError(c, err)
	}

	ctx := c.Request().Context()
	ownerID, err := service.OwnerFrom(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	prompt, err := h.prompts.Update(ctx, ownerID, id, in)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toPromptResponse(prompt))
}

// Delete permanently deletes a prompt.
// @Summary Delete a prompt
// @Tags prompts
// @Security BearerAuth
// @Param id path string true "Prompt ID"
// @Success 204 "No Content"
// @Failure 404 {object} errorResponse
// @Router /prompts/{id} [delete]
func (h *PromptHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid prompt ID"})
	}

	ctx := c.Request().Context()
	ownerID, err := service.OwnerFrom(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	if err := h.prompts.Delete(ctx, ownerID, id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SetFavorite marks or unmarks a prompt as favorite.
// @Summary Set favorite
// @Tags prompts
// @Accept json
// @Security BearerAuth
// @Param id path string true "Prompt ID"
// @Param request body favoriteRequest true "Favorite flag"
// @Success 204 "No Content"
// @Failure 404 {object} errorResponse
// @Router /prompts/{id}/favorite [put]
func (h *PromptHandler) SetFavorite(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid prompt ID"})
	}
	var req favoriteRequest
	if err := bindValid(c, &req); err != nil {
		return writeServiceError(c, err)
	}

	ctx := c.Request().Context()
	ownerID, err := service.OwnerFrom(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	if err := h.prompts.SetFavorite(ctx, ownerID, id, req.IsFavorite); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// MoveToTrash moves a prompt into the owner's Trash.
// @Summary Move a prompt to Trash
// @Tags prompts
// @Security BearerAuth
// @Param id path string true "Prompt ID"
// @Success 204 "No Content"
// @Failure 404 {object} errorResponse
// @Router /prompts/{id}/move-to-trash [put]
func (h *PromptHandler) MoveToTrash(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid prompt ID"})
	}

	ctx := c.Request().Context()
	ws, err := h.scoper.FromContext(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	if err := ws.MoveToTrash(ctx, id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PromptHandler) bindInput(c echo.Context) (service.PromptInput, error) {
	var req promptRequest
	if err := bindValid(c, &req); err != nil {
		return service.PromptInput{}, err
	}
	folderID, err := strconv.ParseInt(req.FolderID, 10, 64)
	if err != nil {
		return service.PromptInput{}, errInvalidFolderID
	}
	return service.PromptInput{
		Title:    req.Title,
		Prompt:   req.Prompt,
		Tags:     req.Tags,
		FolderID: folderID,
	}, nil
}

func toPromptResponse(prompt model.Prompt) promptResponse {
	tags := prompt.Tags
	if tags == nil {
		tags = []string{}
	}
	response := promptResponse{
		ID:         idToString(prompt.ID),
		FolderID:   idToString(prompt.FolderID),
		Title:      prompt.Title,
		Prompt:     prompt.Prompt,
		Tags:       tags,
		IsFavorite: prompt.IsFavorite,
		CreatedAt:  formatTime(prompt.CreatedAt),
		UpdatedAt:  formatTime(prompt.UpdatedAt),
	}
	if prompt.DeletedAt != nil {
		deletedAt := formatTime(*prompt.DeletedAt)
		response.DeletedAt = &deletedAt
	}
	return response
}

func toPromptResponses(prompts []model.Prompt) []promptResponse {
	response := make([]promptResponse, 0, len(prompts))
	for _, prompt := range prompts {
		response = append(response, toPromptResponse(prompt))
	}
	return response
}
