package repository

import (
	"errors"

	"github.com/siteguard/siteguard-api/internal/models"
	"gorm.io/gorm"
)

// ErrStaleWorkspace is returned when a version-checked write matched zero
// rows because the workspace changed since it was loaded.
var ErrStaleWorkspace = errors.New("workspace repository: workspace was modified concurrently")

// GormWorkspaceRepository is a GORM implementation of WorkspaceRepository
type GormWorkspaceRepository struct {
	db *gorm.DB
}

// NewWorkspaceRepository creates a new WorkspaceRepository
func NewWorkspaceRepository(db *gorm.DB) WorkspaceRepository {
	return &GormWorkspaceRepository{db: db}
}

// Create creates a new workspace
func (r *GormWorkspaceRepository) Create(workspace *models.Workspace) error {
	return r.db.Create(workspace).Error
}

// ListByOwner lists all workspaces owned by the user, most recently updated
// first.
func (r *GormWorkspaceRepository) ListByOwner(ownerID uint64) ([]models.Workspace, error) {
	var workspaces []models.Workspace
	if err := r.db.Where("owner_id = ?", ownerID).
		Order("updated_at DESC").
		Find(&workspaces).Error; err != nil {
		return nil, err
	}
	return workspaces, nil
}

// FindByIDAndOwner fetches a workspace by id and owner in a single query.
// Never fetch-then-compare: filtering in the query keeps "exists but not
// yours" indistinguishable from "does not exist".
func (r *GormWorkspaceRepository) FindByIDAndOwner(id, ownerID uint64) (*models.Workspace, error) {
	var workspace models.Workspace
	if err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).
		First(&workspace).Error; err != nil {
		return nil, err
	}
	return &workspace, nil
}

// Update rewrites the workspace document, guarded by the version column.
func (r *GormWorkspaceRepository) Update(workspace *models.Workspace) error {
	loaded := workspace.Version
	workspace.Version = loaded + 1

	result := r.db.Model(&models.Workspace{}).
		Where("id = ? AND owner_id = ? AND version = ?", workspace.ID, workspace.OwnerID, loaded).
		Select("*").
		Omit("id", "owner_id", "created_at", "deleted_at").
		Updates(workspace)
	if result.Error != nil {
		workspace.Version = loaded
		return result.Error
	}
	if result.RowsAffected == 0 {
		workspace.Version = loaded
		return ErrStaleWorkspace
	}
	return nil
}

// Delete soft deletes the workspace; the embedded resources, plan and
// reports live in the same row and are removed with it.
func (r *GormWorkspaceRepository) Delete(id, ownerID uint64) error {
	result := r.db.Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Workspace{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
