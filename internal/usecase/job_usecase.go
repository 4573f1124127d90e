package usecase

import (
	"context"
	"strings"
	"time"

	"karir-nusantara/internal/domain/recommendation"
	"karir-nusantara/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JobsNotifier is told about every job that changed.
type JobsNotifier interface {
	NotifyJobsUpdated(jobIDs []string)
}

// RecommendationCache stores ranked results keyed per user and profile.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateRecommendations(ctx context.Context) error
}

type JobListParams struct {
	Category string
	Province string
	Remote   *bool
	Keyword  string
	Limit    int
	Offset   int
}

type JobUsecase interface {
	List(ctx context.Context, params JobListParams) ([]recommendation.Job, error)
	Upsert(ctx context.Context, job recommendation.Job) (recommendation.Job, error)
}

type Jobs struct {
	jobs     repository.JobRepository
	cache    RecommendationCache
	notifier JobsNotifier
	logger   *zap.Logger
}

func NewJobUsecase(jobs repository.JobRepository, cache RecommendationCache, notifier JobsNotifier, logger *zap.Logger) *Jobs {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Jobs{jobs: jobs, cache: cache, notifier: notifier, logger: logger}
}

func (u *Jobs) List(ctx context.Context, params JobListParams) ([]recommendation.Job, error) {
	if params.Limit < 0 || params.Limit > 100 {
		return nil, invalid("limit must be between 0 and 100")
	}
	if params.Offset < 0 {
		return nil, invalid("offset must not be negative")
	}

	items, err := u.jobs.ListJobs(ctx, repository.JobFilter{
		Category: params.Category,
		Province: params.Province,
		Remote:   params.Remote,
		Keyword:  params.Keyword,
		Limit:    params.Limit,
		Offset:   params.Offset,
	})
	if err != nil {
		return nil, internal(err)
	}
	return items, nil
}

// Upsert saves job, drops cached recommendations and notifies listeners.
func (u *Jobs) Upsert(ctx context.Context, job recommendation.Job) (recommendation.Job, error) {
	if strings.TrimSpace(job.Title) == "" {
		return recommendation.Job{}, invalid("title is required")
	}
	if id := strings.TrimSpace(job.ID); id != "" {
		if _, err := uuid.Parse(id); err != nil {
			return recommendation.Job{}, invalid("id must be a uuid")
		}
	}
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMin > *job.SalaryMax {
		return recommendation.Job{}, invalid("salaryMin must not exceed salaryMax")
	}

	saved, err := u.jobs.Upsert(ctx, job)
	if err != nil {
		return recommendation.Job{}, internal(err)
	}

	if u.cache != nil {
		if err := u.cache.InvalidateRecommendations(ctx); err != nil {
			u.logger.Warn("invalidate recommendation cache failed", zap.Error(err))
		}
	}
	if u.notifier != nil {
		u.notifier.NotifyJobsUpdated([]string{saved.ID})
	}

	u.logger.Info("job upserted", zap.String("job_id", saved.ID), zap.String("title", saved.Title))
	return saved, nil
}
