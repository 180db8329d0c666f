package models

import "time"

// User represents a registered customer of the store.
// Rows are seeded externally; the application only ever updates LastLogin.
type User struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100)"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Password  string    `gorm:"type:varchar(255)"` // stored as-is; no json tag
	LastLogin time.Time `json:"last_login"`
}
