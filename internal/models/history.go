package models

import "time"

// History is a purchase record linking a user to a product. Created once per
// buy action, never mutated.
type History struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	ProductID int64     `json:"product_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"` // stored in UTC

	// Product may be nil when the referenced row is gone (left-join read).
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
