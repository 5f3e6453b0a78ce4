package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"linkr/internal/middleware"
	"linkr/internal/services"
)

type UserHandler struct {
	users   services.UserStore
	follows services.FollowStore
}

func NewUserHandler(users services.UserStore, follows services.FollowStore) *UserHandler {
	return &UserHandler{users: users, follows: follows}
}

// GetUser возвращает публичный профиль по ID
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          user.ID,
		"username":    user.Username,
		"picture_url": user.PictureURL,
	})
}

func (h *UserHandler) GetUserByUsername(c *gin.Context) {
	username := c.Param("username")

	user, err := h.users.GetUserByUsername(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          user.ID,
		"username":    user.Username,
		"picture_url": user.PictureURL,
	})
}

// SearchUsers ищет пользователей по части username
func (h *UserHandler) SearchUsers(c *gin.Context) {
	piece := c.Param("username")

	users, err := h.users.SearchUsersByUsername(c.Request.Context(), piece)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search users"})
		return
	}
	if len(users) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no users found"})
		return
	}

	result := make([]gin.H, len(users))
	for i, user := range users {
		result[i] = gin.H{
			"id":          user.ID,
			"username":    user.Username,
			"picture_url": user.PictureURL,
		}
	}

	c.JSON(http.StatusOK, result)
}

// ToggleFollow переключает подписку и отвечает итоговым состоянием:
// true — теперь подписан, false — подписка снята
func (h *UserHandler) ToggleFollow(c *gin.Context) {
	followerID := c.MustGet(middleware.UserIDKey).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	targetID := uint(id)

	if _, err := h.users.GetUser(c.Request.Context(), targetID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	nowFollowing, err := h.follows.ToggleFollow(c.Request.Context(), followerID, targetID)
	if err != nil {
		logrus.WithError(err).Error("failed to toggle follow")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, nowFollowing)
}
