package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"animelog-backend/internal/config"
	infraCache "animelog-backend/internal/infrastructure/cache"
	"animelog-backend/internal/infrastructure/database"
	"animelog-backend/internal/infrastructure/storage"
	"animelog-backend/pkg/cache"
	"animelog-backend/pkg/jwt"

	animeHandler "animelog-backend/internal/domains/anime/handler"
	animeRepo "animelog-backend/internal/domains/anime/repository"
	animeService "animelog-backend/internal/domains/anime/service"
	typeHandler "animelog-backend/internal/domains/animetype/handler"
	typeRepo "animelog-backend/internal/domains/animetype/repository"
	typeService "animelog-backend/internal/domains/animetype/service"
	commentHandler "animelog-backend/internal/domains/comment/handler"
	commentRepo "animelog-backend/internal/domains/comment/repository"
	commentService "animelog-backend/internal/domains/comment/service"
	userHandler "animelog-backend/internal/domains/user/handler"
	userRepo "animelog-backend/internal/domains/user/repository"
	userService "animelog-backend/internal/domains/user/service"

	"animelog-backend/internal/domains/anime"
	"animelog-backend/internal/domains/animetype"
	"animelog-backend/internal/domains/comment"
	"animelog-backend/internal/domains/user"
)

// Container holds every dependency the application needs, wired in
// order: config, infrastructure, repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	JWTManager *jwt.Manager

	AnimeRepo   anime.Repository
	CommentRepo comment.Repository
	TypeRepo    animetype.Repository
	UserRepo    user.Repository

	AnimeService   anime.Service
	CommentService comment.Service
	TypeService    animetype.Service
	UserService    user.Service

	AnimeHandler   *animeHandler.AnimeHandler
	UploadHandler  *animeHandler.UploadHandler
	CommentHandler *commentHandler.CommentHandler
	TypeHandler    *typeHandler.TypeHandler
	UserHandler    *userHandler.UserHandler
}

// NewContainer builds the full dependency graph.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("config loaded")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(context.Background()); err != nil {
		// Cache is an optimization only, start without it.
		log.Warn().Err(err).Msg("redis connection failed, continuing without cache warmup")
	}
	c.Cache = redisCache

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AnimeRepo = animeRepo.NewPostgresRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresRepository(pool)
	c.TypeRepo = typeRepo.NewPostgresRepository(pool, c.Cache)
	c.UserRepo = userRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AnimeService = animeService.NewAnimeService(c.AnimeRepo, c.CommentRepo, c.Storage)
	c.CommentService = commentService.NewCommentService(c.CommentRepo)
	c.TypeService = typeService.NewTypeService(c.TypeRepo)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, c.Storage)
}

func (c *Container) initHandlers() {
	c.AnimeHandler = animeHandler.NewAnimeHandler(c.AnimeService)
	c.UploadHandler = animeHandler.NewUploadHandler(c.Storage)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.TypeHandler = typeHandler.NewTypeHandler(c.TypeService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
}

// Cleanup releases infrastructure resources during shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}

	log.Info().Msg("container cleanup completed")
}
