package app

import (
	"context"
	"fmt"
	"net/http"
	"quizgame/internal/cache"
	"quizgame/internal/config"
	"quizgame/internal/repository"
	"quizgame/internal/repository/memory"
	"quizgame/internal/service"
	"quizgame/internal/transport/rest"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Store backends
const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// App wires repositories, the search cache and services together
type App struct {
	QuizRepo    repository.QuizRepo
	GameRepo    repository.GameRepo
	SearchCache cache.SearchCache

	QuizService     *service.QuizService
	GameService     *service.GameService
	ResponseService *service.ResponseService

	cfg     *config.Config
	logger  *zap.Logger
	closers []func(context.Context) error
}

// New connects the configured backends. store selects MongoDB or the
// in-memory repositories; Redis is used for the search cache only when an
// address is configured.
func New(ctx context.Context, cfg *config.Config, store string, logger *zap.Logger) (*App, error) {
	a := &App{cfg: cfg, logger: logger}

	switch store {
	case StoreMongo, "":
		if err := a.connectMongo(ctx); err != nil {
			return nil, err
		}
	case StoreMemory:
		a.QuizRepo = memory.NewQuizRepo()
		a.GameRepo = memory.NewGameRepo()
		logger.Info("using in-memory store")
	default:
		return nil, fmt.Errorf("unknown store %q", store)
	}

	a.SearchCache = cache.NewNopSearchCache()
	if cfg.Redis.Addr != "" {
		if err := a.connectRedis(ctx); err != nil {
			a.Close(ctx)
			return nil, err
		}
	}

	a.QuizService = service.NewQuizService(a.QuizRepo, a.SearchCache, logger)
	a.GameService = service.NewGameService(a.GameRepo, a.QuizRepo, logger)
	a.GameService.RequireReadyForLive(cfg.Game.RequireReadyForLive)
	a.ResponseService = service.NewResponseService(a.GameRepo, logger)
	return a, nil
}

func (a *App) connectMongo(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(a.cfg.Mongo.URI))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, a.cfg.Mongo.PingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(ctx)
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	a.logger.Info("connected to MongoDB", zap.String("database", a.cfg.Mongo.Database))

	db := client.Database(a.cfg.Mongo.Database)
	a.QuizRepo = repository.NewQuizRepo(db)
	a.GameRepo = repository.NewGameRepo(db)
	a.closers = append(a.closers, client.Disconnect)
	return nil
}

func (a *App) connectRedis(ctx context.Context) error {
	rdb := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	a.logger.Info("connected to Redis", zap.String("addr", a.cfg.Redis.Addr))

	a.SearchCache = cache.NewSearchCache(rdb, a.cfg.Search.CacheTTL)
	a.closers = append(a.closers, func(context.Context) error { return rdb.Close() })
	return nil
}

// Handler builds the HTTP handler for the API
func (a *App) Handler() http.Handler {
	return rest.NewRouter(&rest.Container{
		QuizService:     a.QuizService,
		GameService:     a.GameService,
		ResponseService: a.ResponseService,
		CORS:            a.cfg.CORS,
		Logger:          a.logger,
	})
}

// Close releases backend connections
func (a *App) Close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			a.logger.Warn("failed to close backend", zap.Error(err))
		}
	}
	a.closers = nil
}
