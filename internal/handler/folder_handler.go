package handler

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"promptcraft/backend/internal/model"
	"promptcraft/backend/internal/service"
)

type FolderHandler struct {
	scoper *service.Scoper
}

type createFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parentId"`
}

func (r *createFolderRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, maxFolderNameLength)),
	)
}

type renameFolderRequest struct {
	Name string `json:"name"`
}

func (r *renameFolderRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, maxFolderNameLength)),
	)
}

type moveFolderRequest struct {
	ParentID *string `json:"parentId"`
}

func (r *moveFolderRequest) Validate() error {
	return nil
}

type reorderFolderRequest struct {
	Direction string `json:"direction"`
}

func (r *reorderFolderRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Direction,
			validation.Required,
			validation.In(string(service.DirectionUp), string(service.DirectionDown)),
		),
	)
}

type folderResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ParentID  *string `json:"parentId"`
	SortOrder int     `json:"sortOrder"`
	IsSystem  bool    `json:"isSystem"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type folderNodeResponse struct {
	folderResponse
	Children []folderNodeResponse `json:"children"`
}

type descendantsResponse struct {
	IDs []string `json:"ids"`
}

type folderPathResponse struct {
	Path string `json:"path"`
}

func NewFolderHandler(scoper *service.Scoper) *FolderHandler {
	return &FolderHandler{scoper: scoper}
}

func (h *FolderHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/folders", h.Tree)
	g.GET("/folders/trash", h.Trash)
	g.POST("/folders", h.Create)
	g.PUT("/folders/:id", h.Rename)
	g.DELETE("/folders/:id", h.Delete)
	g.PUT("/folders/:id/move", h.Move)
	g.PUT("/folders/:id/reorder", h.Reorder)
	g.GET("/folders/:id/descendants", h.Descendants)
	g.GET("/folders/:id/prompts", h.Prompts)
	g.GET("/folders/:id/path", h.Path)
}

// Tree returns the owner's folder forest.
// @Summary Get folder tree
// @Description Root folders with nested children in display order. Trash is not part of the tree.
// @Tags folders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} folderNodeResponse
// @Router /folders [get]
func (h *FolderHandler) Tree(c echo.Context) error {
	ctx := c.Request().Context()
	ws, err := h.scoper.FromContext(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	nodes, err := ws.GetTree(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toFolderNodeResponses(nodes))
}

// Trash returns the owner's Trash folder.
// @Summary Get Trash folder
// @Tags folders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} folderResponse
// @Failure 404 {object} errorResponse
// @Router /folders/trash [get]
func (h *FolderHandler) Trash(c echo.Context) error {
	ctx := c.Request().Context()
	ws, err := h.scoper.FromContext(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	trash, err := ws.GetTrash(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toFolderResponse(trash))
}

// Create creates a new folder.
// @Summary Create a folder
// @Description Create a folder at the end of its siblings. parentId null creates a root folder.
// @Tags folders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param folder body createFolderRequest true "Folder creation request"
// @Success 201 {object} folderResponse
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /folders [post]
func (h *FolderHandler) Create(c echo.Context) error {
	var req createFolderRequest
	if err := bindValid(c, &req); err != nil {
		return writeServiceError(c, err)
	}
	parentID, err := parseOptionalID(req.ParentID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid parent ID"})
	}

	ctx := c.Request().Context()
	ws, err := h.scoper.FromContext(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	folder, err := ws.CreateFolder(ctx, req.Name, parentID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toFolderResponse(folder))
}

// Rename renames a folder.
// @Summary Rename a folder
// @Tags folders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Folder ID"
// @Param folder body renameFolderRequest true "New name"
// @Success 200 {object} folderResponse
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /folders/{id} [put]
func (h *FolderHandler) Rename(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid folder ID"})
	}
	var req renameFolderRequest
	if err := bindValid(c, &req); err != nil {
		return writeServiceError(c, err)
	}

	ctx := c.Request().Context()
	ws, err := h.scoper.FromContext(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	folder, err := ws.RenameFolder(ctx, id, req.Name)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toFolderResponse(folder))
}

// Delete deletes a folder and its subfolders.
// @Summary Delete a folder
// @Description Deletes the folder and every folder below it. Their prompts move to Trash.
// @Tags folders
// @Security BearerAuth
// @Param id path string true "Folder ID"
// @Success 204 "No Content"
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /folders/{id} [delete]
func (h *FolderHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid folder ID"})
	}

	ctx := c.Request().Context()
	ws, err := h.scoper.FromContext(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	if err := ws.DeleteFolder(ctx, id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Move re-parents a folder.
// @Summary Move a folder
// @Description Move a folder under another parent, or to the root with parentId null.
// @Tags folders
// @Accept json
// @Security BearerAuth
// @Param id path string true "Folder ID"
// @Param request body moveFolderRequest true "New parent"
// @Success 204 "No Content"
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /folders/{id}/move [put]
func (h *FolderHandler) Move(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid folder ID"})
	}
	var req moveFolderRequest
	if err := bindValid(c, &req); err != nil {
		return writeServiceError(c, err)
	}
	parentID, err := parseOptionalID(req.ParentID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid parent ID"})
	}

	ctx := c.Request().Context()
	ws, err := h.scoper.FromContext(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	if err := ws.MoveFolder(ctx, id, parentID); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Reorder swaps a folder with its previous or next sibling.
// @Summary Reorder a folder
// @Tags folders
// @Accept json
// @Security BearerAuth
// @Param id path string true "Folder ID"
// @Param request body reorderFolderRequest true "Direction (up or down)"
// @Success 204 "No Content"
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /folders/{id}/reorder [put]
func (h *FolderHandler) Reorder(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid folder ID"})
	}
	var req reorderFolderRequest
	if err := bindValid(c, &req); err != nil {
		return writeServiceError(c, err)
	}

	ctx := c.Request().Context()
	ws, err := h.scoper.FromContext(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	if err := ws.ReorderFolder(ctx, id, service.Direction(req.Direction)); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Descendants returns the folder id and every folder id below it.
// @Summary List descendant folder ids
// @Tags folders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Folder ID"
// @Success 200 {object} descendantsResponse
// @Failure 404 {object} errorResponse
// @Router /folders/{id}/descendants [get]
func (h *FolderHandler) Descendants(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid folder ID"})
	}

	ctx := c.Request().Context()
	ws, err := h.scoper.FromContext(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	ids, err := ws.DescendantIDs(ctx, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	response := descendantsResponse{IDs: make([]string, 0, len(ids))}
	for _, descendant := range ids {
		response.IDs = append(response.IDs, idToString(descendant))
	}
	return c.JSON(http.StatusOK, response)
}

// Prompts returns every prompt in the folder or below it.
// @Summary List prompts in a subtree
// @Tags folders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Folder ID"
// @Success 200 {array} promptResponse
// @Failure 404 {object} errorResponse
// @Router /folders/{id}/prompts [get]
func (h *FolderHandler) Prompts(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid folder ID"})
	}

	ctx := c.Request().Context()
	ws, err := h.scoper.FromContext(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	prompts, err := ws.PromptsInSubtree(ctx, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toPromptResponses(prompts))
}

// Path returns the slash-joined names from the root down to the folder.
// @Summary Get folder path
// @Tags folders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Folder ID"
// @Success 200 {object} folderPathResponse
// @Failure 404 {object} errorResponse
// @Router /folders/{id}/path [get]
func (h *FolderHandler) Path(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid folder ID"})
	}

	ctx := c.Request().Context()
	ws, err := h.scoper.FromContext(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	path, err := ws.FolderPath(ctx, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, folderPathResponse{Path: path})
}

func toFolderResponse(folder model.Folder) folderResponse {
	return folderResponse{
		ID:        idToString(folder.ID),
		Name:      folder.Name,
		ParentID:  idPtrToString(folder.ParentID),
		SortOrder: folder.SortOrder,
		IsSystem:  folder.IsSystem,
		CreatedAt: formatTime(folder.CreatedAt),
		UpdatedAt: formatTime(folder.UpdatedAt),
	}
}

func toFolderNodeResponses(nodes []*model.FolderNode) []folderNodeResponse {
	response := make([]folderNodeResponse, 0, len(nodes))
	for _, node := range nodes {
		response = append(response, folderNodeResponse{
			folderResponse: toFolderResponse(node.Folder),
			Children:       toFolderNodeResponses(node.Children),
		})
	}
	return response
}
