package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/siteguard/siteguard-api/internal/models"
	"github.com/siteguard/siteguard-api/internal/repository"
	"github.com/siteguard/siteguard-api/internal/utils"
)

var (
	ErrResourceNotFound   = errors.New("resource not found")
	ErrInvalidResource    = errors.New("resource requires a name, a unit, a non-negative quantity and a non-negative threshold")
	ErrInvalidBulkReplace = errors.New("bulk replace rejected: every item must be valid")
)

// ResourceService manages the inventory embedded in a workspace. The status
// of every item is re-derived after each mutation of quantity or threshold.
type ResourceService struct {
	workspaceRepo repository.WorkspaceRepository
}

// NewResourceService creates a new ResourceService.
func NewResourceService(workspaceRepo repository.WorkspaceRepository) *ResourceService {
	return &ResourceService{
		workspaceRepo: workspaceRepo,
	}
}

// ResourceInput represents an inventory item as accepted from clients.
// Status is intentionally absent: it is always derived.
type ResourceInput struct {
	Name      string
	Quantity  float64
	Unit      string
	Threshold float64
}

func (in ResourceInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Unit) == "" ||
		in.Quantity < 0 || in.Threshold < 0 {
		return ErrInvalidResource
	}
	return nil
}

// Add appends a new resource with a generated id and derived status.
func (s *ResourceService) Add(workspaceID, ownerID uint64, input ResourceInput) (*models.ResourceItem, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	workspace, err := resolveWorkspace(s.workspaceRepo, workspaceID, ownerID)
	if err != nil {
		return nil, err
	}

	item := models.ResourceItem{
		ID:        utils.GenerateID(),
		Name:      input.Name,
		Quantity:  input.Quantity,
		Unit:      input.Unit,
		Threshold: input.Threshold,
	}
	item.Reclassify()

	workspace.Resources = append(workspace.Resources, item)
	if err := saveWorkspace(s.workspaceRepo, workspace); err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns all resources of an owned workspace.
func (s *ResourceService) List(workspaceID, ownerID uint64) ([]models.ResourceItem, error) {
	workspace, err := resolveWorkspace(s.workspaceRepo, workspaceID, ownerID)
	if err != nil {
		return nil, err
	}
	return workspace.Resources, nil
}

// GetByID returns a single resource.
func (s *ResourceService) GetByID(workspaceID, ownerID uint64, resourceID string) (*models.ResourceItem, error) {
	workspace, err := resolveWorkspace(s.workspaceRepo, workspaceID, ownerID)
	if err != nil {
		return nil, err
	}

	idx := workspace.FindResource(resourceID)
	if idx < 0 {
		return nil, ErrResourceNotFound
	}
	item := workspace.Resources[idx]
	return &item, nil
}

// Update replaces the mutable fields of a resource and re-derives status.
func (s *ResourceService) Update(workspaceID, ownerID uint64, resourceID string, input ResourceInput) (*models.ResourceItem, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	workspace, err := resolveWorkspace(s.workspaceRepo, workspaceID, ownerID)
	if err != nil {
		return nil, err
	}

	idx := workspace.FindResource(resourceID)
	if idx < 0 {
		return nil, ErrResourceNotFound
	}

	item := &workspace.Resources[idx]
	item.Name = input.Name
	item.Quantity = input.Quantity
	item.Unit = input.Unit
	item.Threshold = input.Threshold
	item.Reclassify()

	if err := saveWorkspace(s.workspaceRepo, workspace); err != nil {
		return nil, err
	}
	updated := *item
	return &updated, nil
}

// UpdateQuantity changes only the quantity and re-derives status.
func (s *ResourceService) UpdateQuantity(workspaceID, ownerID uint64, resourceID string, quantity float64) (*models.ResourceItem, error) {
	if quantity < 0 {
		return nil, ErrInvalidResource
	}

	workspace, err := resolveWorkspace(s.workspaceRepo, workspaceID, ownerID)
	if err != nil {
		return nil, err
	}

	idx := workspace.FindResource(resourceID)
	if idx < 0 {
		return nil, ErrResourceNotFound
	}

	item := &workspace.Resources[idx]
	item.Quantity = quantity
	item.Reclassify()

	if err := saveWorkspace(s.workspaceRepo, workspace); err != nil {
		return nil, err
	}
	updated := *item
	return &updated, nil
}

// Delete removes a resource from the workspace.
func (s *ResourceService) Delete(workspaceID, ownerID uint64, resourceID string) error {
	workspace, err := resolveWorkspace(s.workspaceRepo, workspaceID, ownerID)
	if err != nil {
		return err
	}

	idx := workspace.FindResource(resourceID)
	if idx < 0 {
		return ErrResourceNotFound
	}

	workspace.Resources = append(workspace.Resources[:idx], workspace.Resources[idx+1:]...)
	return saveWorkspace(s.workspaceRepo, workspace)
}

// BulkReplace swaps the entire inventory. Every incoming item is validated
// before anything is written; one invalid item aborts the whole replace.
func (s *ResourceService) BulkReplace(workspaceID, ownerID uint64, inputs []ResourceInput) ([]models.ResourceItem, error) {
	for _, in := range inputs {
		if err := in.validate(); err != nil {
			return nil, fmt.Errorf("%w: invalid item %q", ErrInvalidBulkReplace, in.Name)
		}
	}

	workspace, err := resolveWorkspace(s.workspaceRepo, workspaceID, ownerID)
	if err != nil {
		return nil, err
	}

	items := make([]models.ResourceItem, 0, len(inputs))
	for _, in := range inputs {
		item := models.ResourceItem{
			ID:        utils.GenerateID(),
			Name:      in.Name,
			Quantity:  in.Quantity,
			Unit:      in.Unit,
			Threshold: in.Threshold,
		}
		item.Reclassify()
		items = append(items, item)
	}

	workspace.Resources = items
	if err := saveWorkspace(s.workspaceRepo, workspace); err != nil {
		return nil, err
	}
	return items, nil
}

// ResourceStatistics summarizes the current inventory.
type ResourceStatistics struct {
	Total         int     `json:"total"`
	Good          int     `json:"good"`
	Low           int     `json:"low"`
	Critical      int     `json:"critical"`
	TotalQuantity float64 `json:"total_quantity"`
}

// Statistics reduces the inventory to counts by status and a quantity sum.
func (s *ResourceService) Statistics(workspaceID, ownerID uint64) (*ResourceStatistics, error) {
	workspace, err := resolveWorkspace(s.workspaceRepo, workspaceID, ownerID)
	if err != nil {
		return nil, err
	}

	stats := &ResourceStatistics{Total: len(workspace.Resources)}
	for _, item := range workspace.Resources {
		switch item.Status {
		case models.ResourceStatusGood:
			stats.Good++
		case models.ResourceStatusLow:
			stats.Low++
		case models.ResourceStatusCritical:
			stats.Critical++
		}
		stats.TotalQuantity += item.Quantity
	}
	return stats, nil
}
