package server

import (
	"github.com/gin-gonic/gin"

	"linkr/internal/handlers"
	"linkr/internal/middleware"
	"linkr/internal/services"
)

func APIEndpoints(
	r *gin.Engine,
	sessions services.SessionStore,
	authH *handlers.AuthHandler,
	userH *handlers.UserHandler,
	timelineH *handlers.TimelineHandler,
	likeH *handlers.LikeHandler,
) {
	// Auth endpoints: logout сам проверяет токен, middleware ему не нужен
	r.POST("/sign-up", authH.SignUp)
	r.POST("/login", authH.Login)
	r.DELETE("/logout", authH.Logout)

	authMW := middleware.AuthMiddleware(sessions)

	users := r.Group("/users", authMW)
	{
		users.GET("/:id", userH.GetUser)
		users.GET("/username/:username", userH.GetUserByUsername)
		users.GET("/search/:username", userH.SearchUsers)
		users.PUT("/:id/follow", userH.ToggleFollow)
	}

	timeline := r.Group("/timeline", authMW)
	{
		timeline.GET("", timelineH.GetTimeline)
		timeline.POST("", timelineH.Publish)
		timeline.GET("/avatar", timelineH.GetAvatar)
	}

	likes := r.Group("/likes", authMW)
	{
		likes.GET("", likeH.GetLikes)
		likes.POST("", likeH.AddLike)
		likes.DELETE("/:post_id", likeH.RemoveLike)
	}
}
