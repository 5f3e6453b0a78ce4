package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"linkr/internal/metadata"
	"linkr/internal/middleware"
	"linkr/internal/models"
)

// fakeStore реализует все store-интерфейсы поверх map с теми же
// инвариантами, что и база: уникальный email, одна сессия на
// пользователя, уникальные ребра подписок/лайков/хэштегов.
type fakeStore struct {
	nextUserID    uint
	users         map[uint]*models.User
	sessions      map[string]uint
	sessionByUser map[uint]string
	follows       map[[2]uint]bool
	nextPostID    uint
	posts         []*models.Post
	nextHashtagID uint
	hashtagIDs    map[string]uint
	hashtagNames  map[uint]string
	links         map[[2]uint]bool
	likes         map[[2]uint]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:         make(map[uint]*models.User),
		sessions:      make(map[string]uint),
		sessionByUser: make(map[uint]string),
		follows:       make(map[[2]uint]bool),
		hashtagIDs:    make(map[string]uint),
		hashtagNames:  make(map[uint]string),
		links:         make(map[[2]uint]bool),
		likes:         make(map[[2]uint]bool),
	}
}

func (f *fakeStore) SaveUser(_ context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextUserID++
	user.ID = f.nextUserID
	f.users[user.ID] = user
	return nil
}

func (f *fakeStore) GetUser(_ context.Context, id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) SearchUsersByUsername(_ context.Context, piece string) ([]models.User, error) {
	var result []models.User
	for _, user := range f.users {
		if strings.Contains(strings.ToLower(user.Username), strings.ToLower(piece)) {
			result = append(result, *user)
		}
	}
	return result, nil
}

func (f *fakeStore) ReplaceSession(_ context.Context, userID uint, token string) error {
	if old, ok := f.sessionByUser[userID]; ok {
		delete(f.sessions, old)
	}
	f.sessions[token] = userID
	f.sessionByUser[userID] = token
	return nil
}

func (f *fakeStore) GetSessionByToken(_ context.Context, token string) (*models.Session, error) {
	userID, ok := f.sessions[token]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.Session{UserID: userID, Token: token}, nil
}

func (f *fakeStore) DeleteSessionByToken(_ context.Context, token string) (int64, error) {
	userID, ok := f.sessions[token]
	if !ok {
		return 0, nil
	}
	delete(f.sessions, token)
	delete(f.sessionByUser, userID)
	return 1, nil
}

func (f *fakeStore) ToggleFollow(_ context.Context, followerID, followedID uint) (bool, error) {
	key := [2]uint{followerID, followedID}
	if f.follows[key] {
		delete(f.follows, key)
		return false, nil
	}
	f.follows[key] = true
	return true, nil
}

func (f *fakeStore) CreatePostWithHashtags(_ context.Context, post *models.Post, tags []string) error {
	f.nextPostID++
	post.ID = f.nextPostID
	f.posts = append(f.posts, post)

	for _, name := range tags {
		id, ok := f.hashtagIDs[name]
		if !ok {
			f.nextHashtagID++
			id = f.nextHashtagID
			f.hashtagIDs[name] = id
			f.hashtagNames[id] = name
		}
		f.links[[2]uint{post.ID, id}] = true
	}
	return nil
}

func (f *fakeStore) GetRecentPosts(_ context.Context, limit int) ([]models.Post, error) {
	var result []models.Post
	for i := len(f.posts) - 1; i >= 0 && len(result) < limit; i-- {
		post := *f.posts[i]
		if user, ok := f.users[post.UserID]; ok {
			post.User = *user
		}
		result = append(result, post)
	}
	return result, nil
}

func (f *fakeStore) GetPostHashtags(_ context.Context, postID uint) ([]models.Hashtag, error) {
	var result []models.Hashtag
	for key := range f.links {
		if key[0] == postID {
			result = append(result, models.Hashtag{ID: key[1], Name: f.hashtagNames[key[1]]})
		}
	}
	return result, nil
}

func (f *fakeStore) GetAvatar(_ context.Context, userID uint) (string, error) {
	user, ok := f.users[userID]
	if !ok {
		return "", gorm.ErrRecordNotFound
	}
	return user.PictureURL, nil
}

func (f *fakeStore) AddLike(_ context.Context, postID, userID uint) error {
	f.likes[[2]uint{postID, userID}] = true
	return nil
}

func (f *fakeStore) RemoveLike(_ context.Context, postID, userID uint) error {
	delete(f.likes, [2]uint{postID, userID})
	return nil
}

func (f *fakeStore) GetLikes(_ context.Context) ([]models.Like, error) {
	var result []models.Like
	for key := range f.likes {
		result = append(result, models.Like{PostID: key[0], UserID: key[1]})
	}
	return result, nil
}

// newTestRouter повторяет маршруты из cmd/server поверх fakeStore
func newTestRouter(store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	fetcher := metadata.NewFetcher(nil)
	fetcher.Timeout = 100 * time.Millisecond

	authH := NewAuthHandler(store, store)
	userH := NewUserHandler(store, store)
	timelineH := NewTimelineHandler(store, fetcher)
	likeH := NewLikeHandler(store)

	r := gin.New()
	r.POST("/sign-up", authH.SignUp)
	r.POST("/login", authH.Login)
	r.DELETE("/logout", authH.Logout)

	authMW := middleware.AuthMiddleware(store)

	users := r.Group("/users", authMW)
	users.GET("/:id", userH.GetUser)
	users.GET("/username/:username", userH.GetUserByUsername)
	users.GET("/search/:username", userH.SearchUsers)
	users.PUT("/:id/follow", userH.ToggleFollow)

	timeline := r.Group("/timeline", authMW)
	timeline.GET("", timelineH.GetTimeline)
	timeline.POST("", timelineH.Publish)
	timeline.GET("/avatar", timelineH.GetAvatar)

	likes := r.Group("/likes", authMW)
	likes.GET("", likeH.GetLikes)
	likes.POST("", likeH.AddLike)
	likes.DELETE("/:post_id", likeH.RemoveLike)

	return r
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signUp(t *testing.T, r *gin.Engine, email, username string) {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/sign-up", "", gin.H{
		"email":       email,
		"password":    "secret123",
		"username":    username,
		"picture_url": "https://example.com/avatar.png",
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func login(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/login", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
