package domain

import "time"

// Listing is a user's offer to sell a catalog set at a price. There is no
// composite uniqueness on (User, Key): the same user may list the same set
// several times, at the same or a different price.
type Listing struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	User      string    `json:"user" gorm:"column:owner;index;not null"` // "user" is reserved in postgres
	Key       string    `json:"key" gorm:"index;not null"`
	Price     int       `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
