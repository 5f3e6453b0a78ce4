package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"linkr/internal/handlers/dto"
	"linkr/internal/middleware"
	"linkr/internal/services"
)

type LikeHandler struct {
	likes services.LikeStore
}

func NewLikeHandler(likes services.LikeStore) *LikeHandler {
	return &LikeHandler{likes: likes}
}

func (h *LikeHandler) GetLikes(c *gin.Context) {
	likes, err := h.likes.GetLikes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, likes)
}

func (h *LikeHandler) AddLike(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uint)

	var req dto.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.likes.AddLike(c.Request.Context(), req.PostID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusCreated)
}

// RemoveLike отвечает 204 и для несуществующего лайка
func (h *LikeHandler) RemoveLike(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uint)

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	if err := h.likes.RemoveLike(c.Request.Context(), uint(postID), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
