package repositories

import "catalog/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	ExistsByUsername(username string) (bool, error)
}

// RoleRepository defines the interface for role data access.
type RoleRepository interface {
	GetByName(name string) (*models.Role, error)
	EnsureExists(names ...string) error
}
