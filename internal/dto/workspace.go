package dto

import (
	"time"

	"github.com/siteguard/siteguard-api/internal/models"
)

// WorkspaceDTO represents a workspace in API responses. Embedded
// collections are always arrays (never null); the plan is null when absent.
type WorkspaceDTO struct {
	ID               uint64                   `json:"id"`
	OwnerID          uint64                   `json:"owner_id"`
	Name             string                   `json:"name"`
	Location         string                   `json:"location"`
	Stage            string                   `json:"stage"`
	Type             string                   `json:"type"`
	Budget           string                   `json:"budget"`
	Status           models.WorkspaceStatus   `json:"status"`
	Progress         int                      `json:"progress"`
	SafetyScore      int                      `json:"safety_score"`
	Resources        []models.ResourceItem    `json:"resources"`
	ArchitecturePlan *models.ArchitecturePlan `json:"architecture_plan"`
	SafetyReports    []models.SafetyReport    `json:"safety_reports"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

// WorkspaceListItemDTO represents a workspace in list responses, without
// the embedded collections.
type WorkspaceListItemDTO struct {
	ID          uint64                 `json:"id"`
	Name        string                 `json:"name"`
	Location    string                 `json:"location"`
	Stage       string                 `json:"stage"`
	Type        string                 `json:"type"`
	Budget      string                 `json:"budget"`
	Status      models.WorkspaceStatus `json:"status"`
	Progress    int                    `json:"progress"`
	SafetyScore int                    `json:"safety_score"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// ToWorkspaceDTO converts a workspace model to its response shape
func ToWorkspaceDTO(w models.Workspace) WorkspaceDTO {
	resources := []models.ResourceItem(w.Resources)
	if resources == nil {
		resources = []models.ResourceItem{}
	}
	reports := []models.SafetyReport(w.SafetyReports)
	if reports == nil {
		reports = []models.SafetyReport{}
	}

	return WorkspaceDTO{
		ID:               w.ID,
		OwnerID:          w.OwnerID,
		Name:             w.Name,
		Location:         w.Location,
		Stage:            w.Stage,
		Type:             w.Type,
		Budget:           w.Budget,
		Status:           w.Status,
		Progress:         w.Progress,
		SafetyScore:      w.SafetyScore,
		Resources:        resources,
		ArchitecturePlan: w.Plan(),
		SafetyReports:    reports,
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}
}

// ToWorkspaceListDTO converts workspaces to their list response shape
func ToWorkspaceListDTO(workspaces []models.Workspace) []WorkspaceListItemDTO {
	items := make([]WorkspaceListItemDTO, 0, len(workspaces))
	for _, w := range workspaces {
		items = append(items, WorkspaceListItemDTO{
			ID:          w.ID,
			Name:        w.Name,
			Location:    w.Location,
			Stage:       w.Stage,
			Type:        w.Type,
			Budget:      w.Budget,
			Status:      w.Status,
			Progress:    w.Progress,
			SafetyScore: w.SafetyScore,
			UpdatedAt:   w.UpdatedAt,
		})
	}
	return items
}

// ResourceListDTO normalizes a resource slice for responses
func ResourceListDTO(items []models.ResourceItem) []models.ResourceItem {
	if items == nil {
		return []models.ResourceItem{}
	}
	return items
}

// SafetyReportListDTO normalizes a report slice for responses
func SafetyReportListDTO(items []models.SafetyReport) []models.SafetyReport {
	if items == nil {
		return []models.SafetyReport{}
	}
	return items
}
