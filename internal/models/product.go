package models

import "time"

// Product represents an item in the catalog. Immutable after seeding.
type Product struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100)"`
	Description string    `json:"description"`
	ImagePath   string    `json:"image_path" gorm:"type:varchar(255)"`
	Price       int       `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

// descriptionLimit is the number of characters shown in listing views.
const descriptionLimit = 70

// ShortDescription returns the description cut down for listing views.
func (p Product) ShortDescription() string {
	r := []rune(p.Description)
	if len(r) <= descriptionLimit {
		return p.Description
	}
	return string(r[:descriptionLimit])
}
