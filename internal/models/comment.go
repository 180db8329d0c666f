package models

import "time"

// Comment is a user-submitted note on a product. Content is stored verbatim.
type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	ProductID int64     `json:"product_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"` // stored in UTC

	// User carries the commenter identity for display.
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
