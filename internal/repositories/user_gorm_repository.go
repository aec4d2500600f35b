package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"catalog/internal/errs"
	"catalog/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create persists a new user together with its role associations.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByUsername retrieves a user with roles preloaded.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Roles").First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("User", "username", username)
		}
		return nil, fmt.Errorf("failed to get user by username %s: %w", username, err)
	}
	return &user, nil
}

// ExistsByUsername reports whether a user with the given username exists.
func (r *GORMUserRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check username %s: %w", username, err)
	}
	return count > 0, nil
}

// GORMRoleRepository is a GORM implementation of RoleRepository.
type GORMRoleRepository struct {
	db *gorm.DB
}

// NewGORMRoleRepository creates a new instance of GORMRoleRepository.
func NewGORMRoleRepository(db *gorm.DB) *GORMRoleRepository {
	return &GORMRoleRepository{
		db: db,
	}
}

// GetByName retrieves a role by its name.
func (r *GORMRoleRepository) GetByName(name string) (*models.Role, error) {
	var role models.Role
	if err := r.db.First(&role, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Role", "name", name)
		}
		return nil, fmt.Errorf("failed to get role by name %s: %w", name, err)
	}
	return &role, nil
}

// EnsureExists inserts the named roles if missing, used at startup.
func (r *GORMRoleRepository) EnsureExists(names ...string) error {
	for _, name := range names {
		role := models.Role{Name: name}
		err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&role).Error
		if err != nil {
			return fmt.Errorf("failed to ensure role %s: %w", name, err)
		}
	}
	return nil
}
