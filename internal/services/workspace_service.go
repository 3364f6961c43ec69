package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/siteguard/siteguard-api/internal/models"
	"github.com/siteguard/siteguard-api/internal/repository"
	"github.com/siteguard/siteguard-api/internal/utils"
)

var (
	ErrWorkspaceNotFound    = errors.New("workspace not found")
	ErrInvalidWorkspaceName = errors.New("workspace name must be between 3 and 100 characters")
	ErrMissingFields        = errors.New("name, location, stage, type and budget are required")
	ErrInvalidProgress      = errors.New("progress must be between 0 and 100")
	ErrWorkspaceConflict    = errors.New("workspace was modified concurrently, retry the request")
)

// defaultResourceSet seeds every new workspace. Each item starts at
// quantity zero with status Low, matching the behaviour clients rely on.
var defaultResourceSet = []struct {
	name      string
	unit      string
	threshold float64
}{
	{"Cement", "bags", 50},
	{"Steel Rebar", "tons", 10},
	{"Bricks", "pieces", 5000},
	{"Sand", "cubic meters", 30},
	{"Gravel", "cubic meters", 25},
}

// WorkspaceService owns the workspace aggregate. Every operation except
// Create routes through the repository's owner-scoped lookup, so a caller
// can never observe a workspace they do not own.
type WorkspaceService struct {
	workspaceRepo repository.WorkspaceRepository
}

// NewWorkspaceService creates a new WorkspaceService.
func NewWorkspaceService(workspaceRepo repository.WorkspaceRepository) *WorkspaceService {
	return &WorkspaceService{
		workspaceRepo: workspaceRepo,
	}
}

// CreateWorkspaceInput represents parameters to create a new workspace.
type CreateWorkspaceInput struct {
	Name     string
	Location string
	Stage    string
	Type     string
	Budget   string
}

// Create creates a workspace with the default inventory set.
func (s *WorkspaceService) Create(ownerID uint64, input CreateWorkspaceInput) (*models.Workspace, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Location) == "" ||
		strings.TrimSpace(input.Stage) == "" ||
		strings.TrimSpace(input.Type) == "" ||
		strings.TrimSpace(input.Budget) == "" {
		return nil, ErrMissingFields
	}
	if !validWorkspaceName(input.Name) {
		return nil, ErrInvalidWorkspaceName
	}

	resources := make([]models.ResourceItem, 0, len(defaultResourceSet))
	for _, d := range defaultResourceSet {
		resources = append(resources, models.ResourceItem{
			ID:        utils.GenerateID(),
			Name:      d.name,
			Quantity:  0,
			Unit:      d.unit,
			Threshold: d.threshold,
			Status:    models.ResourceStatusLow,
		})
	}

	workspace := &models.Workspace{
		OwnerID:     ownerID,
		Name:        input.Name,
		Location:    input.Location,
		Stage:       input.Stage,
		Type:        input.Type,
		Budget:      input.Budget,
		Status:      models.WorkspaceUnderConstruction,
		Progress:    0,
		SafetyScore: 100,
		Resources:   resources,
	}
	workspace.SetPlan(nil)

	if err := s.workspaceRepo.Create(workspace); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	return workspace, nil
}

// List returns all workspaces owned by the user.
func (s *WorkspaceService) List(ownerID uint64) ([]models.Workspace, error) {
	workspaces, err := s.workspaceRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return workspaces, nil
}

// Get returns a single owned workspace.
func (s *WorkspaceService) Get(id, ownerID uint64) (*models.Workspace, error) {
	return s.resolve(id, ownerID)
}

// UpdateWorkspaceInput holds the optional fields of a shallow update. Nil
// pointers mean "leave unchanged".
type UpdateWorkspaceInput struct {
	Name     *string
	Location *string
	Stage    *string
	Type     *string
	Budget   *string
}

// Update shallow-merges the provided fields into the workspace.
func (s *WorkspaceService) Update(id, ownerID uint64, input UpdateWorkspaceInput) (*models.Workspace, error) {
	workspace, err := s.resolve(id, ownerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if !validWorkspaceName(*input.Name) {
			return nil, ErrInvalidWorkspaceName
		}
		workspace.Name = *input.Name
	}
	if input.Location != nil {
		workspace.Location = *input.Location
	}
	if input.Stage != nil {
		workspace.Stage = *input.Stage
	}
	if input.Type != nil {
		workspace.Type = *input.Type
	}
	if input.Budget != nil {
		workspace.Budget = *input.Budget
	}

	if err := s.save(workspace); err != nil {
		return nil, err
	}
	return workspace, nil
}

// Delete removes the workspace and everything embedded in it.
func (s *WorkspaceService) Delete(id, ownerID uint64) error {
	if err := s.workspaceRepo.Delete(id, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkspaceNotFound
		}
		return fmt.Errorf("failed to delete workspace: %w", err)
	}
	return nil
}

// SetProgress updates the completion percentage.
func (s *WorkspaceService) SetProgress(id, ownerID uint64, progress int) (*models.Workspace, error) {
	if progress < 0 || progress > 100 {
		return nil, ErrInvalidProgress
	}

	workspace, err := s.resolve(id, ownerID)
	if err != nil {
		return nil, err
	}

	workspace.Progress = progress
	if err := s.save(workspace); err != nil {
		return nil, err
	}
	return workspace, nil
}

// ToggleStatus flips the lifecycle status. Finishing a workspace forces
// progress to 100; reopening it leaves progress untouched.
func (s *WorkspaceService) ToggleStatus(id, ownerID uint64) (*models.Workspace, error) {
	workspace, err := s.resolve(id, ownerID)
	if err != nil {
		return nil, err
	}

	if workspace.Status == models.WorkspaceUnderConstruction {
		workspace.Status = models.WorkspaceFinished
		workspace.Progress = 100
	} else {
		workspace.Status = models.WorkspaceUnderConstruction
	}

	if err := s.save(workspace); err != nil {
		return nil, err
	}
	return workspace, nil
}

// validWorkspaceName bounds the name length in runes, not bytes, so
// multibyte names are measured the way users count them.
func validWorkspaceName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= 3 && n <= 100
}

func (s *WorkspaceService) resolve(id, ownerID uint64) (*models.Workspace, error) {
	return resolveWorkspace(s.workspaceRepo, id, ownerID)
}

func (s *WorkspaceService) save(workspace *models.Workspace) error {
	return saveWorkspace(s.workspaceRepo, workspace)
}

// resolveWorkspace is the ownership guard shared by every workspace-scoped
// service: one query filtered by (id, owner_id), not-found for both absent
// and not-owned.
func resolveWorkspace(repo repository.WorkspaceRepository, id, ownerID uint64) (*models.Workspace, error) {
	workspace, err := repo.FindByIDAndOwner(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to find workspace: %w", err)
	}
	return workspace, nil
}

// saveWorkspace persists a mutated aggregate, translating stale-version
// failures.
func saveWorkspace(repo repository.WorkspaceRepository, workspace *models.Workspace) error {
	if err := repo.Update(workspace); err != nil {
		if errors.Is(err, repository.ErrStaleWorkspace) {
			return ErrWorkspaceConflict
		}
		return fmt.Errorf("failed to update workspace: %w", err)
	}
	return nil
}
