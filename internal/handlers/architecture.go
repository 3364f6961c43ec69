package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siteguard/siteguard-api/internal/dto"
	apierrors "github.com/siteguard/siteguard-api/internal/errors"
	"github.com/siteguard/siteguard-api/internal/models"
	"github.com/siteguard/siteguard-api/internal/services"
)

// ArchitectureHandler coordinates architecture-plan HTTP handlers.
type ArchitectureHandler struct {
	architectureService *services.ArchitectureService
}

// NewArchitectureHandler creates a new ArchitectureHandler.
func NewArchitectureHandler(architectureService *services.ArchitectureService) *ArchitectureHandler {
	return &ArchitectureHandler{
		architectureService: architectureService,
	}
}

// PlanRequest is the wire shape of a full or partial architecture plan.
type PlanRequest struct {
	Sections  []models.PlanSection  `json:"sections"`
	Materials []models.PlanMaterial `json:"materials"`
	Stages    []models.PlanStage    `json:"stages"`
	Summary   *string               `json:"summary"`
}

func (r PlanRequest) toInput() services.PlanInput {
	return services.PlanInput{
		Sections:  r.Sections,
		Materials: r.Materials,
		Stages:    r.Stages,
		Summary:   r.Summary,
	}
}

// Get returns the plan, with null data when none exists.
func (h *ArchitectureHandler) Get(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	plan, err := h.architectureService.Get(workspaceID, userID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "Architecture plan retrieved", plan)
}

// Save creates or fully replaces the plan.
func (h *ArchitectureHandler) Save(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	plan, err := h.architectureService.Save(workspaceID, userID, req.toInput())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusCreated, "Architecture plan saved", plan)
}

// Update partially replaces the plan's provided fields.
func (h *ArchitectureHandler) Update(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	plan, err := h.architectureService.Update(workspaceID, userID, req.toInput())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "Architecture plan updated", plan)
}

// Delete removes an existing plan.
func (h *ArchitectureHandler) Delete(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	if err := h.architectureService.Delete(workspaceID, userID); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListSections returns the plan's sections, empty when no plan exists.
func (h *ArchitectureHandler) ListSections(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	sections, err := h.architectureService.ListSections(workspaceID, userID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "Sections retrieved", sections)
}

// ListMaterials returns the plan's materials, empty when no plan exists.
func (h *ArchitectureHandler) ListMaterials(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	materials, err := h.architectureService.ListMaterials(workspaceID, userID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "Materials retrieved", materials)
}

// ListStages returns the plan's stages, empty when no plan exists.
func (h *ArchitectureHandler) ListStages(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	stages, err := h.architectureService.ListStages(workspaceID, userID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "Stages retrieved", stages)
}

// AddSection appends a section to an existing plan.
func (h *ArchitectureHandler) AddSection(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	type SectionRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}

	var req SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "title is required")
		return
	}

	plan, err := h.architectureService.AddSection(workspaceID, userID, models.PlanSection{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusCreated, "Section added", plan)
}

// AddMaterial appends a material to an existing plan.
func (h *ArchitectureHandler) AddMaterial(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	type MaterialRequest struct {
		Name          string  `json:"name" binding:"required"`
		Quantity      float64 `json:"quantity"`
		Specification string  `json:"specification"`
	}

	var req MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "name is required")
		return
	}

	plan, err := h.architectureService.AddMaterial(workspaceID, userID, models.PlanMaterial{
		Name:          req.Name,
		Quantity:      req.Quantity,
		Specification: req.Specification,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusCreated, "Material added", plan)
}

// AddStage appends a stage to an existing plan.
func (h *ArchitectureHandler) AddStage(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	type StageRequest struct {
		Phase    string   `json:"phase" binding:"required"`
		Duration string   `json:"duration"`
		Tasks    []string `json:"tasks" binding:"required"`
	}

	var req StageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "phase and tasks are required")
		return
	}

	plan, err := h.architectureService.AddStage(workspaceID, userID, models.PlanStage{
		Phase:    req.Phase,
		Duration: req.Duration,
		Tasks:    req.Tasks,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusCreated, "Stage added", plan)
}
