package usecase

import (
	"context"
	"errors"
	"time"

	"karir-nusantara/internal/domain/cvquality"
	"karir-nusantara/internal/domain/recommendation"
	"karir-nusantara/internal/infrastructure/cache"
	"karir-nusantara/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type RecommendationSettings struct {
	DefaultLimit  int
	MaxLimit      int
	CandidatePool int
	CacheTTL      time.Duration
}

type JobRecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID, limit int) ([]recommendation.Score, error)
	ScoreJob(ctx context.Context, userID, jobID uuid.UUID) (recommendation.Score, error)
	RecommendForProfile(ctx context.Context, profile recommendation.UserProfile, jobs []recommendation.Job, limit int) ([]recommendation.Score, error)
}

type JobRecommendation struct {
	profiles repository.ProfileRepository
	drafts   repository.DraftStore
	jobs     repository.JobRepository
	cache    RecommendationCache
	settings RecommendationSettings
	logger   *zap.Logger
}

func NewJobRecommendationUsecase(
	profiles repository.ProfileRepository,
	drafts repository.DraftStore,
	jobs repository.JobRepository,
	cache RecommendationCache,
	settings RecommendationSettings,
	logger *zap.Logger,
) *JobRecommendation {
	if settings.DefaultLimit <= 0 {
		settings.DefaultLimit = recommendation.DefaultLimit
	}
	if settings.MaxLimit < settings.DefaultLimit {
		settings.MaxLimit = settings.DefaultLimit
	}
	if settings.CandidatePool <= 0 {
		settings.CandidatePool = 200
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobRecommendation{
		profiles: profiles,
		drafts:   drafts,
		jobs:     jobs,
		cache:    cache,
		settings: settings,
		logger:   logger,
	}
}

func (u *JobRecommendation) GetRecommendations(ctx context.Context, userID uuid.UUID, limit int) ([]recommendation.Score, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	limit, err := u.normalizeLimit(limit)
	if err != nil {
		return nil, err
	}

	profile, err := u.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := cache.RecommendationKey(userID.String(), profile, limit)
	if u.cache != nil {
		var cached []recommendation.Score
		found, err := u.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			u.logger.Warn("recommendation cache read failed", zap.Error(err))
		}
		if found {
			return cached, nil
		}
	}

	candidates, err := u.candidates(ctx)
	if err != nil {
		return nil, err
	}

	out := recommendation.GetJobRecommendations(profile, candidates, limit)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, u.settings.CacheTTL); err != nil {
			u.logger.Warn("recommendation cache write failed", zap.Error(err))
		}
	}
	return out, nil
}

func (u *JobRecommendation) ScoreJob(ctx context.Context, userID, jobID uuid.UUID) (recommendation.Score, error) {
	if userID == uuid.Nil {
		return recommendation.Score{}, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return recommendation.Score{}, invalid("job id is required")
	}

	profile, err := u.loadProfile(ctx, userID)
	if err != nil {
		return recommendation.Score{}, err
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return recommendation.Score{}, ErrJobNotFound
		}
		return recommendation.Score{}, internal(err)
	}

	return recommendation.CalculateJobScore(profile, job), nil
}

// RecommendForProfile ranks jobs for an explicit profile. Without jobs it
// ranks the active candidate pool.
func (u *JobRecommendation) RecommendForProfile(ctx context.Context, profile recommendation.UserProfile, jobs []recommendation.Job, limit int) ([]recommendation.Score, error) {
	limit, err := u.normalizeLimit(limit)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		jobs, err = u.candidates(ctx)
		if err != nil {
			return nil, err
		}
	}
	return recommendation.GetJobRecommendations(profile, jobs, limit), nil
}

func (u *JobRecommendation) normalizeLimit(limit int) (int, error) {
	switch {
	case limit < 0:
		return 0, invalid("limit must not be negative")
	case limit == 0:
		return u.settings.DefaultLimit, nil
	case limit > u.settings.MaxLimit:
		return u.settings.MaxLimit, nil
	}
	return limit, nil
}

func (u *JobRecommendation) candidates(ctx context.Context) ([]recommendation.Job, error) {
	if u.jobs == nil {
		return nil, ErrNoJobsFound
	}
	jobs, err := u.jobs.ListActiveJobs(ctx, u.settings.CandidatePool, 0)
	if err != nil {
		return nil, internal(err)
	}
	if len(jobs) == 0 {
		return nil, ErrNoJobsFound
	}
	return jobs, nil
}

// loadProfile merges the stored profile with the user's CV draft. Either may
// be missing, but not both.
func (u *JobRecommendation) loadProfile(ctx context.Context, userID uuid.UUID) (recommendation.UserProfile, error) {
	var (
		stored    recommendation.UserProfile
		hasStored bool
		draft     cvquality.CV
		hasDraft  bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := u.profiles.GetByUserID(gctx, userID)
		switch {
		case err == nil:
			stored, hasStored = p, true
		case errors.Is(err, repository.ErrProfileNotFound):
		default:
			return internal(err)
		}
		return nil
	})
	g.Go(func() error {
		if u.drafts == nil {
			return nil
		}
		cv, err := u.drafts.Get(gctx, userID)
		switch {
		case err == nil:
			draft, hasDraft = cv, true
		case errors.Is(err, repository.ErrDraftNotFound):
		default:
			// The draft only enriches the profile.
			u.logger.Warn("cv draft unavailable for recommendations", zap.String("user_id", userID.String()), zap.Error(err))
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return recommendation.UserProfile{}, err
	}

	if !hasStored && !hasDraft {
		return recommendation.UserProfile{}, ErrProfileNotFound
	}

	var userMap, cvMap map[string]any
	if hasStored {
		userMap = profileMap(userID, stored)
	} else {
		userMap = map[string]any{"id": userID.String()}
	}
	if hasDraft {
		cvMap = draftMap(draft)
	}
	return recommendation.BuildUserProfile(userMap, cvMap), nil
}

func profileMap(userID uuid.UUID, p recommendation.UserProfile) map[string]any {
	m := map[string]any{
		"id":       userID.String(),
		"name":     p.Name,
		"email":    p.Email,
		"phone":    p.Phone,
		"skills":   p.Skills,
		"category": p.Category,
		"location": p.Location,
	}
	if p.Experience != nil {
		m["experience"] = *p.Experience
	}
	return m
}

func draftMap(cv cvquality.CV) map[string]any {
	return map[string]any{
		"personalInfo": map[string]any{
			"fullName": cv.PersonalInfo.FullName,
			"email":    cv.PersonalInfo.Email,
			"phone":    cv.PersonalInfo.Phone,
			"address":  cv.PersonalInfo.Address,
		},
		"skills": cv.Skills,
	}
}
