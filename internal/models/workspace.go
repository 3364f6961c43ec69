package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WorkspaceStatus string

const (
	WorkspaceUnderConstruction WorkspaceStatus = "UnderConstruction"
	WorkspaceFinished          WorkspaceStatus = "Finished"
)

// Workspace is the aggregate root for one construction project. Resources,
// the architecture plan and the safety report history have no identity of
// their own: they are stored as jsonb sub-documents inside the workspace row
// and live and die with it.
type Workspace struct {
	ID          uint64          `gorm:"primarykey" json:"id"`
	OwnerID     uint64          `gorm:"not null;index" json:"owner_id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	Location    string          `gorm:"type:varchar(255);not null" json:"location"`
	Stage       string          `gorm:"type:varchar(100);not null" json:"stage"`
	Type        string          `gorm:"type:varchar(100);not null" json:"type"`
	Budget      string          `gorm:"type:varchar(100);not null" json:"budget"`
	Status      WorkspaceStatus `gorm:"type:varchar(32);not null;default:'UnderConstruction'" json:"status"`
	Progress    int             `gorm:"not null;default:0" json:"progress"`
	SafetyScore int             `gorm:"not null;default:100" json:"safety_score"`

	Resources        datatypes.JSONSlice[ResourceItem]     `gorm:"type:jsonb" json:"resources"`
	ArchitecturePlan datatypes.JSONType[*ArchitecturePlan] `gorm:"type:jsonb" json:"architecture_plan"`
	SafetyReports    datatypes.JSONSlice[SafetyReport]     `gorm:"type:jsonb" json:"safety_reports"`

	// Version guards read-modify-write cycles over the embedded sub-documents:
	// a write against a stale version affects zero rows instead of silently
	// overwriting a concurrent change.
	Version uint64 `gorm:"not null;default:0" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

// Plan returns the embedded architecture plan, or nil when none has been
// created. A nil plan is distinct from a plan with empty collections.
func (w *Workspace) Plan() *ArchitecturePlan {
	return w.ArchitecturePlan.Data()
}

// SetPlan replaces the embedded architecture plan. Passing nil removes it.
func (w *Workspace) SetPlan(plan *ArchitecturePlan) {
	w.ArchitecturePlan = datatypes.NewJSONType(plan)
}

// FindResource returns the index of the resource with the given id, or -1.
func (w *Workspace) FindResource(resourceID string) int {
	for i := range w.Resources {
		if w.Resources[i].ID == resourceID {
			return i
		}
	}
	return -1
}

// FindSafetyReport returns the report with the given id, or nil.
func (w *Workspace) FindSafetyReport(reportID string) *SafetyReport {
	for i := range w.SafetyReports {
		if w.SafetyReports[i].ID == reportID {
			return &w.SafetyReports[i]
		}
	}
	return nil
}
