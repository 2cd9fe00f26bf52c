package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"promptcraft/backend/internal/service"
)

const maxTopTags = 100

type TagHandler struct {
	prompts service.PromptService
}

type tagCountResponse struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

func NewTagHandler(prompts service.PromptService) *TagHandler {
	return &TagHandler{prompts: prompts}
}

func (h *TagHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/tags/top", h.Top)
}

// Top returns the most used tags.
// @Summary Top tags
// @Description Tags ordered by how many prompts carry them, most used first.
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of tags (default 15)"
// @Success 200 {array} tagCountResponse
// @Failure 400 {object} errorResponse
// @Router /tags/top [get]
func (h *TagHandler) Top(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxTopTags {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid limit"})
		}
		limit = n
	}

	ctx := c.Request().Context()
	ownerID, err := service.OwnerFrom(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	tags, err := h.prompts.TopTags(ctx, ownerID, limit)
	if err != nil {
		return writeServiceError(c, err)
	}

	response := make([]tagCountResponse, 0, len(tags))
	for _, tag := range tags {
		response = append(response, tagCountResponse{Tag: tag.Tag, Count: tag.Count})
	}
	return c.JSON(http.StatusOK, response)
}
