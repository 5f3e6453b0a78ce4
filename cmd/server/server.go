package server

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"linkr/internal/database"
	"linkr/internal/handlers"
	"linkr/internal/metadata"
)

type Server struct {
	Router *gin.Engine
	DB     *database.Database
	Redis  *redis.Client
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			logrus.Info(".env not found, using environment variables")
		}
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(); err != nil {
		logrus.Fatalf("Postgres connect failed: %v", err)
	}

	// Redis опционален: без него превью ссылок просто не кэшируются
	var rdb *redis.Client
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisOpts, err := redis.ParseURL(redisURL)
		if err != nil {
			logrus.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(redisOpts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logrus.Fatalf("Redis connect failed: %v", err)
		}
	}

	fetcher := metadata.NewFetcher(rdb)

	authH := handlers.NewAuthHandler(dbConn, dbConn)
	userH := handlers.NewUserHandler(dbConn, dbConn)
	timelineH := handlers.NewTimelineHandler(dbConn, fetcher)
	likeH := handlers.NewLikeHandler(dbConn)

	router := gin.Default()
	APIEndpoints(router, dbConn, authH, userH, timelineH, likeH)

	return &Server{
		Router: router,
		DB:     dbConn,
		Redis:  rdb,
	}
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.Infof("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		logrus.Fatalf("Server run error: %v", err)
	}
}
