package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/scene-backend/internal/service"
	"github.com/scene-backend/pkg/response"
)

// SceneHandler handles scene CRUD API requests. The acting username comes
// from the request body (mutations) or query string (delete); with JWT
// disabled the server trusts the caller's claimed identity.
type SceneHandler struct {
	sceneService *service.SceneService
}

// NewSceneHandler creates a new SceneHandler
func NewSceneHandler(sceneService *service.SceneService) *SceneHandler {
	return &SceneHandler{
		sceneService: sceneService,
	}
}

// CreateScene handles scene creation
// @Summary      Create a scene
// @Description  Persists a new scene owned by the user named in the body.
// @Success      201  {object}  models.SceneResponse
// @Failure      400  {object}  response.Message
// @Router       /scenes [post]
func (h *SceneHandler) CreateScene(c *gin.Context) {
	var req service.SceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.sceneService.CreateScene(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.BadRequest(c, "User not found")
			return
		}
		response.InternalError(c, "Failed to create scene")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetSceneByID handles single-scene lookup
// @Summary      Get a scene by id
// @Success      200  {object}  models.SceneResponse
// @Failure      404  {object}  response.Message
// @Router       /scenes/{id} [get]
func (h *SceneHandler) GetSceneByID(c *gin.Context) {
	id, ok := parseSceneID(c)
	if !ok {
		return
	}

	resp, err := h.sceneService.GetSceneByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSceneNotFound) {
			response.NotFound(c, "Scene not found")
			return
		}
		response.InternalError(c, "Failed to get scene")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAllScenes handles listing every scene
// @Summary      List all scenes
// @Success      200  {array}  models.SceneResponse
// @Router       /scenes [get]
func (h *SceneHandler) GetAllScenes(c *gin.Context) {
	scenes, err := h.sceneService.GetAllScenes(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to list scenes")
		return
	}

	c.JSON(http.StatusOK, scenes)
}

// GetScenesByUsername handles listing a user's scenes
// @Summary      List scenes by owner
// @Description  Returns every scene owned by the given username; an unknown
//
//	username yields an empty list.
//
// @Success      200  {array}  models.SceneResponse
// @Router       /scenes/user/{username} [get]
func (h *SceneHandler) GetScenesByUsername(c *gin.Context) {
	scenes, err := h.sceneService.GetScenesByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.InternalError(c, "Failed to list scenes")
		return
	}

	c.JSON(http.StatusOK, scenes)
}

// UpdateScene handles scene updates, owner only
// @Summary      Update a scene
// @Success      200  {object}  models.SceneResponse
// @Failure      400  {object}  response.Message
// @Router       /scenes/{id} [put]
func (h *SceneHandler) UpdateScene(c *gin.Context) {
	id, ok := parseSceneID(c)
	if !ok {
		return
	}

	var req service.SceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.sceneService.UpdateScene(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSceneNotFound):
			response.BadRequest(c, "Scene not found")
		case errors.Is(err, service.ErrUpdateForbidden):
			response.BadRequest(c, "You don't have permission to update this scene")
		default:
			response.InternalError(c, "Failed to update scene")
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteScene handles scene deletion, owner only
// @Summary      Delete a scene
// @Success      200  {object}  response.Message
// @Failure      400  {object}  response.Message
// @Router       /scenes/{id} [delete]
func (h *SceneHandler) DeleteScene(c *gin.Context) {
	id, ok := parseSceneID(c)
	if !ok {
		return
	}

	username := c.Query("username")
	if username == "" {
		response.BadRequest(c, "Username is required")
		return
	}

	err := h.sceneService.DeleteScene(c.Request.Context(), id, username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSceneNotFound):
			response.BadRequest(c, "Scene not found")
		case errors.Is(err, service.ErrDeleteForbidden):
			response.BadRequest(c, "You don't have permission to delete this scene")
		default:
			response.InternalError(c, "Failed to delete scene")
		}
		return
	}

	response.OK(c, "Scene deleted successfully")
}

// RegisterRoutes registers scene routes
func (h *SceneHandler) RegisterRoutes(rg *gin.RouterGroup) {
	scenes := rg.Group("/scenes")
	{
		scenes.POST("", h.CreateScene)
		scenes.GET("", h.GetAllScenes)
		scenes.GET("/:id", h.GetSceneByID)
		scenes.GET("/user/:username", h.GetScenesByUsername)
		scenes.PUT("/:id", h.UpdateScene)
		scenes.DELETE("/:id", h.DeleteScene)
	}
}

func parseSceneID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid scene id")
		return 0, false
	}
	return uint(id), true
}
