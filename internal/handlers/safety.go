package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siteguard/siteguard-api/internal/dto"
	apierrors "github.com/siteguard/siteguard-api/internal/errors"
	"github.com/siteguard/siteguard-api/internal/models"
	"github.com/siteguard/siteguard-api/internal/services"
)

// SafetyHandler coordinates safety-report HTTP handlers.
type SafetyHandler struct {
	safetyService *services.SafetyService
}

// NewSafetyHandler creates a new SafetyHandler.
func NewSafetyHandler(safetyService *services.SafetyService) *SafetyHandler {
	return &SafetyHandler{
		safetyService: safetyService,
	}
}

// List returns the report history, newest first.
func (h *SafetyHandler) List(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	reports, err := h.safetyService.List(workspaceID, userID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "Safety reports retrieved", dto.SafetyReportListDTO(reports))
}

// Save stores a new report and recomputes the workspace safety score.
func (h *SafetyHandler) Save(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	type ReportRequest struct {
		RiskScore *int            `json:"risk_score" binding:"required"`
		Hazards   []models.Hazard `json:"hazards"`
		Summary   string          `json:"summary"`
	}

	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "risk_score is required")
		return
	}

	report, err := h.safetyService.Save(workspaceID, userID, services.SafetyReportInput{
		RiskScore: *req.RiskScore,
		Hazards:   req.Hazards,
		Summary:   req.Summary,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusCreated, "Safety report saved", report)
}

// Get returns a single report from the history.
func (h *SafetyHandler) Get(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	report, err := h.safetyService.GetByID(workspaceID, userID, c.Param("reportId"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "Safety report retrieved", report)
}
