package repository

import (
	"errors"

	"github.com/scene-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSceneNotFound = errors.New("scene not found")
)

// SceneRepository handles scene data access
type SceneRepository struct {
	db *gorm.DB
}

// NewSceneRepository creates a new SceneRepository
func NewSceneRepository(db *gorm.DB) *SceneRepository {
	return &SceneRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *SceneRepository) WithTx(tx *gorm.DB) *SceneRepository {
	return &SceneRepository{db: tx}
}

// Create inserts a new scene and assigns its ID. The User association is
// never written through the scene; ownership is carried by UserID alone.
func (r *SceneRepository) Create(scene *models.Scene) error {
	return r.db.Omit("User").Create(scene).Error
}

// GetByID retrieves a scene by ID with its owner loaded
func (r *SceneRepository) GetByID(id uint) (*models.Scene, error) {
	var scene models.Scene
	result := r.db.Preload("User").First(&scene, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSceneNotFound
		}
		return nil, result.Error
	}
	return &scene, nil
}

// GetAll retrieves every scene, id ascending
func (r *SceneRepository) GetAll() ([]models.Scene, error) {
	var scenes []models.Scene
	result := r.db.Preload("User").Order("scenes.id ASC").Find(&scenes)
	if result.Error != nil {
		return nil, result.Error
	}
	return scenes, nil
}

// GetByOwnerUsername retrieves all scenes owned by the given username.
// Returns an empty slice when the user has no scenes or does not exist.
func (r *SceneRepository) GetByOwnerUsername(username string) ([]models.Scene, error) {
	var scenes []models.Scene
	result := r.db.
		Joins("JOIN users ON users.id = scenes.user_id").
		Where("users.username = ?", username).
		Preload("User").
		Order("scenes.id ASC").
		Find(&scenes)
	if result.Error != nil {
		return nil, result.Error
	}
	return scenes, nil
}

// GetByUserID retrieves all scenes owned by the given user ID
func (r *SceneRepository) GetByUserID(userID uint) ([]models.Scene, error) {
	var scenes []models.Scene
	result := r.db.Where("user_id = ?", userID).Preload("User").Order("scenes.id ASC").Find(&scenes)
	if result.Error != nil {
		return nil, result.Error
	}
	return scenes, nil
}

// Save persists changes to an existing scene; gorm advances UpdatedAt.
func (r *SceneRepository) Save(scene *models.Scene) error {
	return r.db.Omit("User").Save(scene).Error
}

// Delete removes a scene row permanently
func (r *SceneRepository) Delete(scene *models.Scene) error {
	return r.db.Delete(scene).Error
}
