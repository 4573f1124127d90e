package app

import (
	"context"
	"fmt"
	"time"

	"karir-nusantara/internal/config"
	"karir-nusantara/internal/database"
	"karir-nusantara/internal/database/migration"
	dbpostgres "karir-nusantara/internal/database/postgres"
	"karir-nusantara/internal/infrastructure/cache"
	"karir-nusantara/internal/logger"
	"karir-nusantara/internal/repository"
	"karir-nusantara/internal/usecase"
	"karir-nusantara/internal/ws"
	"karir-nusantara/migrations"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger

	DB    database.DB
	Redis *redis.Client
	Cache *cache.Redis
	Hub   *ws.Hub

	Jobs     repository.JobRepository
	Profiles repository.ProfileRepository
	Drafts   repository.DraftStore

	CVQuality       usecase.CVQualityUsecase
	CVDraft         usecase.CVDraftUsecase
	Recommendations usecase.JobRecommendationUsecase
	JobsUC          usecase.JobUsecase
	ProfileUC       usecase.ProfileUsecase
}

func NewContainer(ctx context.Context, cfg config.Config, log *zap.Logger) (*Container, error) {
	log = logger.OrNop(log)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.App.AutoMigrate {
		n, err := migration.Runner{FS: migrations.FS, Logger: log}.Run(ctx, db.SQLDB())
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		log.Info("migrations complete", zap.Int("applied", n))
	}

	rc, client := cache.Dial(cfg.Redis, log.Named("cache"))

	c := &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Redis:  client,
		Cache:  rc,
		Hub:    ws.NewHub(log.Named("ws")),
	}

	c.Jobs = repository.NewPostgresJobRepository(db)
	c.Profiles = repository.NewPostgresProfileRepository(db)
	c.Drafts = repository.NewRedisDraftStore(client, cfg.CVDraft.TTL)

	c.CVQuality = usecase.NewCVQualityUsecase(c.Drafts)
	c.CVDraft = usecase.NewCVDraftUsecase(c.Drafts)
	c.ProfileUC = usecase.NewProfileUsecase(c.Profiles)
	c.JobsUC = usecase.NewJobUsecase(c.Jobs, rc, ws.NewNotifier(c.Hub), log.Named("jobs"))
	c.Recommendations = usecase.NewJobRecommendationUsecase(
		c.Profiles,
		c.Drafts,
		c.Jobs,
		rc,
		usecase.RecommendationSettings{
			DefaultLimit:  cfg.Recommendation.DefaultLimit,
			MaxLimit:      cfg.Recommendation.MaxLimit,
			CandidatePool: cfg.Recommendation.CandidatePool,
			CacheTTL:      cfg.Recommendation.CacheTTL,
		},
		log.Named("recommendation"),
	)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
