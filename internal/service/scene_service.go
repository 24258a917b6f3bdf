package service

import (
	"context"
	"errors"

	"github.com/scene-backend/internal/cache"
	"github.com/scene-backend/internal/models"
	"github.com/scene-backend/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrSceneNotFound   = errors.New("scene not found")
	ErrUpdateForbidden = errors.New("update forbidden")
	ErrDeleteForbidden = errors.New("delete forbidden")
)

// SceneService handles scene CRUD with per-scene ownership enforcement.
// Ownership is decided by comparing the persisted owner's username to the
// username claimed in the request; there is no session to derive it from
// while the JWT collaborator is disabled.
type SceneService struct {
	db        *gorm.DB
	sceneRepo *repository.SceneRepository
	userRepo  *repository.UserRepository
	cache     *cache.SceneCache // optional, nil disables caching
}

// NewSceneService creates a new SceneService
func NewSceneService(db *gorm.DB, sceneRepo *repository.SceneRepository, userRepo *repository.UserRepository, sceneCache *cache.SceneCache) *SceneService {
	return &SceneService{
		db:        db,
		sceneRepo: sceneRepo,
		userRepo:  userRepo,
		cache:     sceneCache,
	}
}

// SceneRequest represents the create/update scene request
type SceneRequest struct {
	Name         string  `json:"name" binding:"required,max=100"`
	Description  *string `json:"description" binding:"omitempty,max=500"`
	ThumbnailURL *string `json:"thumbnailUrl" binding:"omitempty,max=255"`
	Assets       string  `json:"assets" binding:"required"`
	Username     string  `json:"username" binding:"required"`
}

// CreateScene persists a new scene bound to the owner named in the request.
func (s *SceneService) CreateScene(ctx context.Context, req *SceneRequest) (*models.SceneResponse, error) {
	var scene *models.Scene

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.WithTx(tx).GetByUsername(req.Username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		scene = &models.Scene{
			Name:         req.Name,
			Description:  req.Description,
			ThumbnailURL: req.ThumbnailURL,
			Assets:       req.Assets,
			UserID:       user.ID,
			User:         *user,
		}
		return s.sceneRepo.WithTx(tx).Create(scene)
	})
	if err != nil {
		return nil, err
	}

	resp := scene.ToResponse()
	s.cache.Set(ctx, resp)
	return resp, nil
}

// GetSceneByID returns a scene by id, consulting the cache first.
func (s *SceneService) GetSceneByID(ctx context.Context, id uint) (*models.SceneResponse, error) {
	if resp, ok := s.cache.Get(ctx, id); ok {
		return resp, nil
	}

	scene, err := s.sceneRepo.WithTx(s.db.WithContext(ctx)).GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrSceneNotFound) {
			return nil, ErrSceneNotFound
		}
		return nil, err
	}

	resp := scene.ToResponse()
	s.cache.Set(ctx, resp)
	return resp, nil
}

// GetAllScenes returns every scene.
func (s *SceneService) GetAllScenes(ctx context.Context) ([]*models.SceneResponse, error) {
	scenes, err := s.sceneRepo.WithTx(s.db.WithContext(ctx)).GetAll()
	if err != nil {
		return nil, err
	}
	return toResponses(scenes), nil
}

// GetScenesByUsername returns all scenes owned by the given username.
// An unknown user yields an empty list, not an error.
func (s *SceneService) GetScenesByUsername(ctx context.Context, username string) ([]*models.SceneResponse, error) {
	scenes, err := s.sceneRepo.WithTx(s.db.WithContext(ctx)).GetByOwnerUsername(username)
	if err != nil {
		return nil, err
	}
	return toResponses(scenes), nil
}

// UpdateScene overwrites name, description, thumbnail URL, and assets of an
// owned scene. Owner and CreatedAt never change; UpdatedAt advances.
func (s *SceneService) UpdateScene(ctx context.Context, id uint, req *SceneRequest) (*models.SceneResponse, error) {
	var scene *models.Scene

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.sceneRepo.WithTx(tx)

		var err error
		scene, err = repo.GetByID(id)
		if err != nil {
			if errors.Is(err, repository.ErrSceneNotFound) {
				return ErrSceneNotFound
			}
			return err
		}

		if scene.User.Username != req.Username {
			return ErrUpdateForbidden
		}

		scene.Name = req.Name
		scene.Description = req.Description
		scene.ThumbnailURL = req.ThumbnailURL
		scene.Assets = req.Assets

		return repo.Save(scene)
	})
	if err != nil {
		return nil, err
	}

	resp := scene.ToResponse()
	s.cache.Set(ctx, resp)
	return resp, nil
}

// DeleteScene removes an owned scene permanently.
func (s *SceneService) DeleteScene(ctx context.Context, id uint, username string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.sceneRepo.WithTx(tx)

		scene, err := repo.GetByID(id)
		if err != nil {
			if errors.Is(err, repository.ErrSceneNotFound) {
				return ErrSceneNotFound
			}
			return err
		}

		if scene.User.Username != username {
			return ErrDeleteForbidden
		}

		return repo.Delete(scene)
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx, id)
	return nil
}

func toResponses(scenes []models.Scene) []*models.SceneResponse {
	responses := make([]*models.SceneResponse, 0, len(scenes))
	for i := range scenes {
		responses = append(responses, scenes[i].ToResponse())
	}
	return responses
}
