package services

import (
	"context"

	"linkr/internal/models"
)

type UserStore interface {
	SaveUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id uint) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	SearchUsersByUsername(ctx context.Context, piece string) ([]models.User, error)
}

type SessionStore interface {
	ReplaceSession(ctx context.Context, userID uint, token string) error
	GetSessionByToken(ctx context.Context, token string) (*models.Session, error)
	DeleteSessionByToken(ctx context.Context, token string) (int64, error)
}

type FollowStore interface {
	ToggleFollow(ctx context.Context, followerID, followedID uint) (bool, error)
}

type TimelineStore interface {
	CreatePostWithHashtags(ctx context.Context, post *models.Post, tags []string) error
	GetRecentPosts(ctx context.Context, limit int) ([]models.Post, error)
	GetPostHashtags(ctx context.Context, postID uint) ([]models.Hashtag, error)
	GetAvatar(ctx context.Context, userID uint) (string, error)
}

type LikeStore interface {
	AddLike(ctx context.Context, postID, userID uint) error
	RemoveLike(ctx context.Context, postID, userID uint) error
	GetLikes(ctx context.Context) ([]models.Like, error)
}
