package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linkloom/linkloom/internal/config"
	"github.com/linkloom/linkloom/internal/handlers"
	"github.com/linkloom/linkloom/internal/middleware"
	"github.com/linkloom/linkloom/internal/services"
	"github.com/linkloom/linkloom/internal/types"
	"github.com/sirupsen/logrus"
)

func NewRouter(cfg config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.BuildAllowedOrigins(cfg.ClientURL, cfg.AllowedOrigins),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handlers.Configure(cfg.Domain)

	logger := logrus.StandardLogger()

	images := handlers.NewImageHandler(services.NewCloudinaryClient(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		logger,
	))
	suggest := handlers.NewSuggestHandler(services.NewGeminiClient(cfg.GeminiAPIKey, logger))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/sign-up", handlers.SignUp)
		api.POST("/sign-out", handlers.SignOut)
		api.GET("/session", middleware.AuthMiddleware(), handlers.Session)

		// The share view is the only read path open to unauthenticated callers.
		api.POST("/public/by-id", handlers.GetPublicCollectionByID)

		collections := api.Group("/collections", middleware.AuthMiddleware())
		{
			collections.POST("", handlers.CreateCollection)
			collections.POST("/list", handlers.ListCollections)
			collections.POST("/by-id", handlers.GetCollectionByID)
			collections.PATCH("/update", handlers.UpdateCollection)
			collections.DELETE("/delete", handlers.DeleteCollection)
		}

		links := api.Group("/links", middleware.AuthMiddleware())
		{
			links.POST("", handlers.CreateLink)
			links.PATCH("/update", handlers.UpdateLink)
			links.DELETE("/delete", handlers.DeleteLink)
		}

		editor := api.Group("", middleware.AuthMiddleware())
		{
			editor.POST("/upload-image", images.Upload)
			editor.DELETE("/delete-image", images.Delete)
			editor.POST("/suggest-link-title", suggest.SuggestLinkTitle)
			editor.POST("/generate-description", suggest.GenerateCollectionDescription)
		}
	}

	return r
}
