package repositories

import (
	"errors"
	"fmt"
	"time"

	"ecsite/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{db: db}
}

// GetByEmail retrieves a user by exact email match. Returns ErrNotFound when
// no row matches.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// GetByID retrieves a user by id. Returns ErrNotFound when no row matches.
func (r *GORMUserRepository) GetByID(id int64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id %d: %w", id, err)
	}
	return &user, nil
}

// UpdateLastLogin stamps the user's last successful login time.
func (r *GORMUserRepository) UpdateLastLogin(id int64, at time.Time) error {
	if err := r.db.Model(&models.User{}).Where("id = ?", id).
		Update("last_login", at).Error; err != nil {
		return fmt.Errorf("failed to update last_login for user %d: %w", id, err)
	}
	return nil
}

// DeleteWithIDAbove removes every user whose id exceeds the threshold.
func (r *GORMUserRepository) DeleteWithIDAbove(id int64) error {
	if err := r.db.Where("id > ?", id).Delete(&models.User{}).Error; err != nil {
		return fmt.Errorf("failed to delete users above id %d: %w", id, err)
	}
	return nil
}
