package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/scene-backend/internal/handler"
	"github.com/scene-backend/internal/models"
	"github.com/scene-backend/internal/repository"
	"github.com/scene-backend/internal/service"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newRouter builds the full /api route table over a fresh in-memory database,
// mirroring the wiring in cmd/server.
func newRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Scene{}))

	userRepo := repository.NewUserRepository(db)
	sceneRepo := repository.NewSceneRepository(db)

	authService := service.NewAuthService(db, userRepo, nil)
	sceneService := service.NewSceneService(db, sceneRepo, userRepo, nil)

	router := gin.New()
	api := router.Group("/api")
	handler.NewAuthHandler(authService).RegisterRoutes(api)
	handler.NewSceneHandler(sceneService).RegisterRoutes(api)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func signup(t *testing.T, router *gin.Engine, username, email string) models.AuthResponse {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/auth/signup", gin.H{
		"username": username,
		"password": "secret1",
		"email":    email,
		"nickname": "Nick",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp models.AuthResponse
	decode(t, w, &resp)
	return resp
}

func createScene(t *testing.T, router *gin.Engine, username, name string) models.SceneResponse {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/scenes", gin.H{
		"name":     name,
		"assets":   "[]",
		"username": username,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp models.SceneResponse
	decode(t, w, &resp)
	return resp
}
