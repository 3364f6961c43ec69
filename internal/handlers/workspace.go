package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/siteguard/siteguard-api/internal/dto"
	apierrors "github.com/siteguard/siteguard-api/internal/errors"
	"github.com/siteguard/siteguard-api/internal/middleware"
	"github.com/siteguard/siteguard-api/internal/services"
)

// WorkspaceHandler coordinates workspace HTTP handlers.
type WorkspaceHandler struct {
	workspaceService *services.WorkspaceService
}

// NewWorkspaceHandler creates a new WorkspaceHandler.
func NewWorkspaceHandler(workspaceService *services.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceService: workspaceService,
	}
}

// requestScope extracts the authenticated user and the workspace id from
// the request. The second return value reports whether the request was
// already answered with an error.
func requestScope(c *gin.Context, param string) (workspaceID, userID uint64, ok bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return 0, 0, false
	}

	workspaceID, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid workspace ID")
		return 0, 0, false
	}
	return workspaceID, userID, true
}

// List returns all workspaces owned by the caller.
func (h *WorkspaceHandler) List(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	workspaces, err := h.workspaceService.List(userID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "Workspaces retrieved", dto.ToWorkspaceListDTO(workspaces))
}

// Create creates a new workspace with the default inventory.
func (h *WorkspaceHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateRequest struct {
		Name     string `json:"name" binding:"required"`
		Location string `json:"location" binding:"required"`
		Stage    string `json:"stage" binding:"required"`
		Type     string `json:"type" binding:"required"`
		Budget   string `json:"budget" binding:"required"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "name, location, stage, type and budget are required")
		return
	}

	workspace, err := h.workspaceService.Create(userID, services.CreateWorkspaceInput{
		Name:     req.Name,
		Location: req.Location,
		Stage:    req.Stage,
		Type:     req.Type,
		Budget:   req.Budget,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusCreated, "Workspace created", dto.ToWorkspaceDTO(*workspace))
}

// Get returns a single workspace with its embedded collections.
func (h *WorkspaceHandler) Get(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	workspace, err := h.workspaceService.Get(workspaceID, userID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "Workspace retrieved", dto.ToWorkspaceDTO(*workspace))
}

// Update shallow-merges the provided fields.
func (h *WorkspaceHandler) Update(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	type UpdateRequest struct {
		Name     *string `json:"name"`
		Location *string `json:"location"`
		Stage    *string `json:"stage"`
		Type     *string `json:"type"`
		Budget   *string `json:"budget"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	workspace, err := h.workspaceService.Update(workspaceID, userID, services.UpdateWorkspaceInput{
		Name:     req.Name,
		Location: req.Location,
		Stage:    req.Stage,
		Type:     req.Type,
		Budget:   req.Budget,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "Workspace updated", dto.ToWorkspaceDTO(*workspace))
}

// Delete removes the workspace and all embedded data.
func (h *WorkspaceHandler) Delete(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	if err := h.workspaceService.Delete(workspaceID, userID); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetProgress updates the completion percentage.
func (h *WorkspaceHandler) SetProgress(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	type ProgressRequest struct {
		Progress *int `json:"progress" binding:"required"`
	}

	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "progress is required")
		return
	}

	workspace, err := h.workspaceService.SetProgress(workspaceID, userID, *req.Progress)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "Progress updated", dto.ToWorkspaceDTO(*workspace))
}

// ToggleStatus flips UnderConstruction and Finished.
func (h *WorkspaceHandler) ToggleStatus(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	workspace, err := h.workspaceService.ToggleStatus(workspaceID, userID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "Workspace status toggled", dto.ToWorkspaceDTO(*workspace))
}
