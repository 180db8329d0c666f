package repositories

import (
	"time"

	"ecsite/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetByEmail(email string) (*models.User, error)
	GetByID(id int64) (*models.User, error)
	UpdateLastLogin(id int64, at time.Time) error
	DeleteWithIDAbove(id int64) error
}
