package repository

import (
	"github.com/siteguard/siteguard-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by their lowercased email
	FindByEmail(email string) (*models.User, error)
}

// WorkspaceRepository defines the interface for workspace data access. Every
// lookup and write is scoped by owner: a workspace that exists but belongs
// to someone else behaves exactly like one that does not exist.
type WorkspaceRepository interface {
	// Create creates a new workspace
	Create(workspace *models.Workspace) error

	// ListByOwner lists all workspaces owned by the user
	ListByOwner(ownerID uint64) ([]models.Workspace, error)

	// FindByIDAndOwner fetches a workspace filtered by (id, owner_id) in a
	// single query. Returns gorm.ErrRecordNotFound for both "absent" and
	// "not owned".
	FindByIDAndOwner(id, ownerID uint64) (*models.Workspace, error)

	// Update writes the full workspace document with an optimistic version
	// check. Returns ErrStaleWorkspace when the row changed underneath.
	Update(workspace *models.Workspace) error

	// Delete removes the workspace and, with it, all embedded sub-documents.
	// Returns gorm.ErrRecordNotFound when absent or not owned.
	Delete(id, ownerID uint64) error
}
