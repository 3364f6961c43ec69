package models

import "time"

// ArchitecturePlan is the single structured construction plan a workspace
// may carry. It has no identity outside its workspace.
type ArchitecturePlan struct {
	Sections  []PlanSection  `json:"sections"`
	Materials []PlanMaterial `json:"materials"`
	Stages    []PlanStage    `json:"stages"`
	Summary   string         `json:"summary"`
	CreatedAt time.Time      `json:"created_at"`
}

type PlanSection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PlanMaterial struct {
	Name          string  `json:"name"`
	Quantity      float64 `json:"quantity"`
	Specification string  `json:"specification"`
}

type PlanStage struct {
	Phase    string   `json:"phase"`
	Duration string   `json:"duration"`
	Tasks    []string `json:"tasks"`
}
