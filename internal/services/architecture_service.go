package services

import (
	"errors"
	"strings"
	"time"

	"github.com/siteguard/siteguard-api/internal/models"
	"github.com/siteguard/siteguard-api/internal/repository"
)

var (
	ErrPlanNotFound           = errors.New("architecture plan not found, create the plan first")
	ErrPlanSectionsRequired   = errors.New("plan requires at least one section")
	ErrPlanMaterialsRequired  = errors.New("plan requires at least one material")
	ErrPlanStagesRequired     = errors.New("plan requires at least one stage")
	ErrPlanSummaryRequired    = errors.New("plan requires a non-empty summary")
	ErrPlanStageTasksRequired = errors.New("every stage requires a non-empty task list")
)

// ArchitectureService manages the single plan embedded in a workspace.
// Reads on a missing plan yield empty results; mutations on a missing plan
// are not-found.
type ArchitectureService struct {
	workspaceRepo repository.WorkspaceRepository
}

// NewArchitectureService creates a new ArchitectureService.
func NewArchitectureService(workspaceRepo repository.WorkspaceRepository) *ArchitectureService {
	return &ArchitectureService{
		workspaceRepo: workspaceRepo,
	}
}

// PlanInput carries a full or partial architecture plan. Nil slices mean
// "field not provided" on update; Save requires all of them.
type PlanInput struct {
	Sections  []models.PlanSection
	Materials []models.PlanMaterial
	Stages    []models.PlanStage
	Summary   *string
}

// Get returns the workspace's plan, or nil when none exists. A missing plan
// is not an error on read.
func (s *ArchitectureService) Get(workspaceID, ownerID uint64) (*models.ArchitecturePlan, error) {
	workspace, err := resolveWorkspace(s.workspaceRepo, workspaceID, ownerID)
	if err != nil {
		return nil, err
	}
	return workspace.Plan(), nil
}

// ListSections returns the plan's sections; a missing plan reads as empty.
func (s *ArchitectureService) ListSections(workspaceID, ownerID uint64) ([]models.PlanSection, error) {
	plan, err := s.Get(workspaceID, ownerID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return []models.PlanSection{}, nil
	}
	return plan.Sections, nil
}

// ListMaterials returns the plan's materials; a missing plan reads as empty.
func (s *ArchitectureService) ListMaterials(workspaceID, ownerID uint64) ([]models.PlanMaterial, error) {
	plan, err := s.Get(workspaceID, ownerID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return []models.PlanMaterial{}, nil
	}
	return plan.Materials, nil
}

// ListStages returns the plan's stages; a missing plan reads as empty.
func (s *ArchitectureService) ListStages(workspaceID, ownerID uint64) ([]models.PlanStage, error) {
	plan, err := s.Get(workspaceID, ownerID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return []models.PlanStage{}, nil
	}
	return plan.Stages, nil
}

// Save creates or fully replaces the plan. Every field is mandatory and
// every collection must be non-empty.
func (s *ArchitectureService) Save(workspaceID, ownerID uint64, input PlanInput) (*models.ArchitecturePlan, error) {
	if len(input.Sections) == 0 {
		return nil, ErrPlanSectionsRequired
	}
	if len(input.Materials) == 0 {
		return nil, ErrPlanMaterialsRequired
	}
	if len(input.Stages) == 0 {
		return nil, ErrPlanStagesRequired
	}
	if input.Summary == nil || strings.TrimSpace(*input.Summary) == "" {
		return nil, ErrPlanSummaryRequired
	}
	if err := validateStages(input.Stages); err != nil {
		return nil, err
	}

	workspace, err := resolveWorkspace(s.workspaceRepo, workspaceID, ownerID)
	if err != nil {
		return nil, err
	}

	plan := &models.ArchitecturePlan{
		Sections:  input.Sections,
		Materials: input.Materials,
		Stages:    input.Stages,
		Summary:   *input.Summary,
		CreatedAt: time.Now(),
	}
	workspace.SetPlan(plan)

	if err := saveWorkspace(s.workspaceRepo, workspace); err != nil {
		return nil, err
	}
	return plan, nil
}

// Update replaces only the provided fields of an existing plan. Provided
// collections must be non-empty and a provided summary must not be blank.
func (s *ArchitectureService) Update(workspaceID, ownerID uint64, input PlanInput) (*models.ArchitecturePlan, error) {
	if input.Sections != nil && len(input.Sections) == 0 {
		return nil, ErrPlanSectionsRequired
	}
	if input.Materials != nil && len(input.Materials) == 0 {
		return nil, ErrPlanMaterialsRequired
	}
	if input.Stages != nil && len(input.Stages) == 0 {
		return nil, ErrPlanStagesRequired
	}
	if input.Summary != nil && strings.TrimSpace(*input.Summary) == "" {
		return nil, ErrPlanSummaryRequired
	}
	if input.Stages != nil {
		if err := validateStages(input.Stages); err != nil {
			return nil, err
		}
	}

	workspace, err := resolveWorkspace(s.workspaceRepo, workspaceID, ownerID)
	if err != nil {
		return nil, err
	}

	plan := workspace.Plan()
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	if input.Sections != nil {
		plan.Sections = input.Sections
	}
	if input.Materials != nil {
		plan.Materials = input.Materials
	}
	if input.Stages != nil {
		plan.Stages = input.Stages
	}
	if input.Summary != nil {
		plan.Summary = *input.Summary
	}
	workspace.SetPlan(plan)

	if err := saveWorkspace(s.workspaceRepo, workspace); err != nil {
		return nil, err
	}
	return plan, nil
}

// Delete removes an existing plan; deleting a missing plan is not-found.
func (s *ArchitectureService) Delete(workspaceID, ownerID uint64) error {
	workspace, err := resolveWorkspace(s.workspaceRepo, workspaceID, ownerID)
	if err != nil {
		return err
	}

	if workspace.Plan() == nil {
		return ErrPlanNotFound
	}

	workspace.SetPlan(nil)
	return saveWorkspace(s.workspaceRepo, workspace)
}

// AddSection appends a section to an existing plan.
func (s *ArchitectureService) AddSection(workspaceID, ownerID uint64, section models.PlanSection) (*models.ArchitecturePlan, error) {
	return s.appendToPlan(workspaceID, ownerID, func(plan *models.ArchitecturePlan) {
		plan.Sections = append(plan.Sections, section)
	})
}

// AddMaterial appends a material to an existing plan.
func (s *ArchitectureService) AddMaterial(workspaceID, ownerID uint64, material models.PlanMaterial) (*models.ArchitecturePlan, error) {
	return s.appendToPlan(workspaceID, ownerID, func(plan *models.ArchitecturePlan) {
		plan.Materials = append(plan.Materials, material)
	})
}

// AddStage appends a stage to an existing plan.
func (s *ArchitectureService) AddStage(workspaceID, ownerID uint64, stage models.PlanStage) (*models.ArchitecturePlan, error) {
	if len(stage.Tasks) == 0 {
		return nil, ErrPlanStageTasksRequired
	}
	return s.appendToPlan(workspaceID, ownerID, func(plan *models.ArchitecturePlan) {
		plan.Stages = append(plan.Stages, stage)
	})
}

func (s *ArchitectureService) appendToPlan(workspaceID, ownerID uint64, mutate func(*models.ArchitecturePlan)) (*models.ArchitecturePlan, error) {
	workspace, err := resolveWorkspace(s.workspaceRepo, workspaceID, ownerID)
	if err != nil {
		return nil, err
	}

	plan := workspace.Plan()
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	mutate(plan)
	workspace.SetPlan(plan)

	if err := saveWorkspace(s.workspaceRepo, workspace); err != nil {
		return nil, err
	}
	return plan, nil
}

func validateStages(stages []models.PlanStage) error {
	for _, stage := range stages {
		if len(stage.Tasks) == 0 {
			return ErrPlanStageTasksRequired
		}
	}
	return nil
}
