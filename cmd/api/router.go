package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"animelog-backend/internal/shared/middleware"
	"animelog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupAnimeRoutes(v1, c)
		setupCommentRoutes(v1, c)
		setupTypeRoutes(v1, c)
		setupUploadRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
	}
}

func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		users.GET("/me", c.UserHandler.GetProfile)
		users.PUT("/me/avatar", c.UserHandler.UploadAvatar)
	}
}

func setupAnimeRoutes(v1 *gin.RouterGroup, c *container.Container) {
	anime := v1.Group("/anime")
	anime.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		anime.GET("", c.AnimeHandler.List)
		anime.POST("", c.AnimeHandler.Create)
		anime.GET("/:id", c.AnimeHandler.GetByID)
		anime.PUT("/:id", c.AnimeHandler.UpdateInfo)
		anime.POST("/:id/status", c.AnimeHandler.UpdateStatus)
	}

	history := v1.Group("/history")
	history.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		history.PUT("/:id", c.AnimeHandler.UpdateHistory)
	}
}

func setupCommentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	comments := v1.Group("/comments")
	comments.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		comments.POST("", c.CommentHandler.Create)
		comments.PUT("/:id", c.CommentHandler.Update)
	}
}

func setupTypeRoutes(v1 *gin.RouterGroup, c *container.Container) {
	types := v1.Group("/types")
	types.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		types.GET("", c.TypeHandler.List)
		types.POST("", c.TypeHandler.Create)
		types.DELETE("/:id", c.TypeHandler.Delete)
	}
}

func setupUploadRoutes(v1 *gin.RouterGroup, c *container.Container) {
	uploads := v1.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		uploads.POST("/cover", c.UploadHandler.UploadCover)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
