package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"linkr/internal/handlers/dto"
	"linkr/internal/metadata"
	"linkr/internal/middleware"
	"linkr/internal/models"
	"linkr/internal/services"
)

const timelineLimit = 20

type TimelineHandler struct {
	store   services.TimelineStore
	fetcher *metadata.Fetcher
}

func NewTimelineHandler(store services.TimelineStore, fetcher *metadata.Fetcher) *TimelineHandler {
	return &TimelineHandler{store: store, fetcher: fetcher}
}

// extractHashtags выбирает из описания токены с '#': точный регистр,
// пунктуация сохраняется, дубликаты в рамках поста отбрасываются
func extractHashtags(description string) []string {
	if !strings.Contains(description, "#") {
		return nil
	}

	seen := make(map[string]bool)
	var tags []string
	for _, word := range strings.Fields(description) {
		if !strings.Contains(word, "#") || seen[word] {
			continue
		}
		seen[word] = true
		tags = append(tags, word)
	}
	return tags
}

// Publish сохраняет пост и связки с хэштегами до ответа, в одной транзакции
func (h *TimelineHandler) Publish(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uint)

	var req dto.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := &models.Post{
		UserID:      userID,
		URL:         req.Link,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	tags := extractHashtags(req.Description)
	if err := h.store.CreatePostWithHashtags(c.Request.Context(), post, tags); err != nil {
		logrus.WithError(err).Error("failed to publish post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusCreated)
}

// GetTimeline отдает последние посты; превью ссылок подтягивается
// best-effort — сбой метаданных никогда не валит выдачу
func (h *TimelineHandler) GetTimeline(c *gin.Context) {
	posts, err := h.store.GetRecentPosts(c.Request.Context(), timelineLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result := make([]dto.PostResponse, len(posts))
	for i, post := range posts {
		item := dto.PostResponse{
			ID:          post.ID,
			UserID:      post.UserID,
			Username:    post.User.Username,
			PictureURL:  post.User.PictureURL,
			Link:        post.URL,
			Description: post.Description,
			CreatedAt:   post.CreatedAt,
			Hashtags:    []string{},
		}

		hashtags, err := h.store.GetPostHashtags(c.Request.Context(), post.ID)
		if err == nil {
			for _, hashtag := range hashtags {
				item.Hashtags = append(item.Hashtags, hashtag.Name)
			}
		}

		if preview, err := h.fetcher.Fetch(c.Request.Context(), post.URL); err == nil {
			item.LinkTitle = preview.Title
			item.LinkImage = preview.Image
			item.LinkDescription = preview.Description
		} else {
			logrus.WithError(err).WithField("url", post.URL).Debug("link preview unavailable")
		}

		result[i] = item
	}

	c.JSON(http.StatusOK, result)
}

func (h *TimelineHandler) GetAvatar(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uint)

	pictureURL, err := h.store.GetAvatar(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"picture_url": pictureURL})
}
