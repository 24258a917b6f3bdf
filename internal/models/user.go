package models

import (
	"time"
)

// User represents a registered user
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"` // bcrypt hash, never the plaintext
	Nickname  string    `gorm:"size:50;not null" json:"nickname"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Scenes []Scene `gorm:"foreignKey:UserID" json:"scenes,omitempty"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// AuthResponse is the identity descriptor returned by signup and login.
// Token stays null while the JWT provider is disabled.
type AuthResponse struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Nickname string  `json:"nickname"`
	Token    *string `json:"token"`
	Message  string  `json:"message"`
}
