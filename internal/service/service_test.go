package service_test

import (
	"context"
	"testing"

	"github.com/scene-backend/internal/models"
	"github.com/scene-backend/internal/repository"
	"github.com/scene-backend/internal/service"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Scene{}))
	return db
}

// newServices wires auth and scene services over a fresh in-memory database.
// The scene cache is disabled (nil client) so lookups always hit the database.
func newServices(t *testing.T) (*service.AuthService, *service.SceneService) {
	t.Helper()

	db := testDB(t)
	userRepo := repository.NewUserRepository(db)
	sceneRepo := repository.NewSceneRepository(db)

	authService := service.NewAuthService(db, userRepo, nil)
	sceneService := service.NewSceneService(db, sceneRepo, userRepo, nil)
	return authService, sceneService
}

func signupUser(t *testing.T, auth *service.AuthService, username, email string) *models.AuthResponse {
	t.Helper()
	resp, err := auth.Signup(context.Background(), &service.SignupRequest{
		Username: username,
		Password: "secret1",
		Email:    email,
		Nickname: "Nick",
	})
	require.NoError(t, err)
	return resp
}
