package service

import (
	"context"
	"errors"
	"strings"

	"github.com/scene-backend/internal/models"
	"github.com/scene-backend/internal/repository"
	"github.com/scene-backend/pkg/crypto"
	"github.com/scene-backend/pkg/token"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
)

// AuthService handles signup and login.
type AuthService struct {
	db       *gorm.DB
	userRepo *repository.UserRepository
	tokens   *token.Provider // nil while JWT is disabled; auth responses then carry a null token
}

// NewAuthService creates a new AuthService
func NewAuthService(db *gorm.DB, userRepo *repository.UserRepository, tokens *token.Provider) *AuthService {
	return &AuthService{
		db:       db,
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// SignupRequest represents the registration request
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=100"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Nickname string `json:"nickname" binding:"required,min=2,max=50"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup registers a new user. The duplicate checks and the insert run in one
// transaction; a concurrent signup that slips past the checks trips the unique
// index and is reported as the matching duplicate error.
func (s *AuthService) Signup(ctx context.Context, req *SignupRequest) (*models.AuthResponse, error) {
	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Password: hash,
		Email:    req.Email,
		Nickname: req.Nickname,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.userRepo.WithTx(tx)

		exists, err := repo.ExistsByUsername(req.Username)
		if err != nil {
			return err
		}
		if exists {
			return ErrUsernameTaken
		}

		exists, err = repo.ExistsByEmail(req.Email)
		if err != nil {
			return err
		}
		if exists {
			return ErrEmailTaken
		}

		if err := repo.Create(user); err != nil {
			if repository.IsUniqueViolation(err) {
				if strings.Contains(err.Error(), "email") {
					return ErrEmailTaken
				}
				return ErrUsernameTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.buildResponse(user, "User registered successfully")
}

// Login authenticates a user by username and password. Unknown users and
// wrong passwords both fail with ErrInvalidCredentials to prevent user
// enumeration.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.WithTx(s.db.WithContext(ctx)).GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.buildResponse(user, "Login successful")
}

func (s *AuthService) buildResponse(user *models.User, message string) (*models.AuthResponse, error) {
	resp := &models.AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Nickname: user.Nickname,
		Message:  message,
	}

	if s.tokens != nil {
		signed, err := s.tokens.Generate(user.ID, user.Username)
		if err != nil {
			return nil, err
		}
		resp.Token = &signed
	}

	return resp, nil
}
