package domain

import "time"

const (
	DefaultNickname = "User"
	DefaultLogo     = "face_2.png"
)

type User struct {
	Email     string    `json:"email" gorm:"primaryKey"`
	Password  string    `json:"-"` // bcrypt hash, never returned in JSON
	Nickname  string    `json:"nickname"`
	Logo      string    `json:"logo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthToken is an opaque bearer credential. Expires is absolute epoch
// seconds; a user may hold any number of concurrently valid tokens.
type AuthToken struct {
	Code      string    `json:"code" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"index;not null"`
	Expires   int64     `json:"expires"`
	CreatedAt time.Time `json:"created_at"`
}
