package models

import (
	"time"
)

// Scene represents a user-owned 3D scene. Assets is an opaque JSON string;
// its internal structure is never inspected by the backend.
type Scene struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Description  *string   `gorm:"size:500" json:"description"`
	ThumbnailURL *string   `gorm:"size:255" json:"thumbnail_url"`
	Assets       string    `gorm:"type:text;not null" json:"assets"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for Scene model
func (Scene) TableName() string {
	return "scenes"
}

// SceneResponse is the wire representation of a scene. The owner's username
// is resolved through the relation, not stored on the scene row.
type SceneResponse struct {
	ID           uint          `json:"id"`
	Name         string        `json:"name"`
	Description  *string       `json:"description"`
	ThumbnailURL *string       `json:"thumbnailUrl"`
	Assets       string        `json:"assets"`
	Username     string        `json:"username"`
	CreatedAt    LocalDateTime `json:"createdAt"`
	UpdatedAt    LocalDateTime `json:"updatedAt"`
}

// ToResponse converts a scene (with its User relation loaded) to the wire shape.
func (s *Scene) ToResponse() *SceneResponse {
	return &SceneResponse{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		ThumbnailURL: s.ThumbnailURL,
		Assets:       s.Assets,
		Username:     s.User.Username,
		CreatedAt:    LocalDateTime(s.CreatedAt),
		UpdatedAt:    LocalDateTime(s.UpdatedAt),
	}
}
