package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"karir-nusantara/internal/domain/cvquality"
	"karir-nusantara/internal/domain/recommendation"
	"karir-nusantara/internal/repository"

	"github.com/google/uuid"
)

var errBoom = errors.New("boom")

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]recommendation.UserProfile
	err      error
}

func (f *fakeProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (recommendation.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return recommendation.UserProfile{}, f.err
	}
	p, ok := f.profiles[userID]
	if !ok {
		return recommendation.UserProfile{}, repository.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) Upsert(_ context.Context, userID uuid.UUID, p recommendation.UserProfile) (recommendation.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return recommendation.UserProfile{}, f.err
	}
	if f.profiles == nil {
		f.profiles = map[uuid.UUID]recommendation.UserProfile{}
	}
	p.ID = userID.String()
	f.profiles[userID] = p
	return p, nil
}

type fakeJobRepo struct {
	jobs       []recommendation.Job
	err        error
	listCalls  int
	lastFilter repository.JobFilter
	upserted   []recommendation.Job
}

func (f *fakeJobRepo) ListActiveJobs(_ context.Context, limit, _ int) ([]recommendation.Job, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.jobs) {
		return f.jobs[:limit], nil
	}
	return f.jobs, nil
}

func (f *fakeJobRepo) ListJobs(_ context.Context, filter repository.JobFilter) ([]recommendation.Job, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.jobs, nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (recommendation.Job, error) {
	if f.err != nil {
		return recommendation.Job{}, f.err
	}
	for _, j := range f.jobs {
		if j.ID == id.String() {
			return j, nil
		}
	}
	return recommendation.Job{}, repository.ErrJobNotFound
}

func (f *fakeJobRepo) Upsert(_ context.Context, job recommendation.Job) (recommendation.Job, error) {
	if f.err != nil {
		return recommendation.Job{}, f.err
	}
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	f.upserted = append(f.upserted, job)
	return job, nil
}

type fakeCache struct {
	items       map[string]any
	sets        int
	invalidated int
	ttl         time.Duration
}

func newFakeCache() *fakeCache { return &fakeCache{items: map[string]any{}} }

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	v, ok := f.items[key]
	if !ok {
		return false, nil
	}
	if dst, ok := out.(*[]recommendation.Score); ok {
		*dst = v.([]recommendation.Score)
	}
	return true, nil
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	f.sets++
	f.ttl = ttl
	f.items[key] = value
	return nil
}

func (f *fakeCache) InvalidateRecommendations(context.Context) error {
	f.invalidated++
	f.items = map[string]any{}
	return nil
}

type fakeNotifier struct {
	ids []string
}

func (f *fakeNotifier) NotifyJobsUpdated(ids []string) { f.ids = append(f.ids, ids...) }

type failingDrafts struct{}

func (failingDrafts) Get(context.Context, uuid.UUID) (cvquality.CV, error) {
	return cvquality.CV{}, errBoom
}
func (failingDrafts) Put(context.Context, uuid.UUID, cvquality.CV) error { return errBoom }
func (failingDrafts) Delete(context.Context, uuid.UUID) error            { return errBoom }
