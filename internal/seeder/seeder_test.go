package seeder

import (
	"context"
	"errors"
	"testing"

	"karir-nusantara/internal/domain/recommendation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	jobs []recommendation.Job
	err  error
}

func (w *recordingWriter) Upsert(_ context.Context, job recommendation.Job) (recommendation.Job, error) {
	if w.err != nil {
		return recommendation.Job{}, w.err
	}
	w.jobs = append(w.jobs, job)
	return job, nil
}

func TestDemoJobs_StableIDs(t *testing.T) {
	first := DemoJobs()
	second := DemoJobs()
	require.NotEmpty(t, first)

	seen := map[string]bool{}
	for i, job := range first {
		assert.NotEmpty(t, job.ID)
		assert.Equal(t, job.ID, second[i].ID)
		assert.False(t, seen[job.ID], "duplicate id %s", job.ID)
		seen[job.ID] = true
		if job.SalaryMin != nil && job.SalaryMax != nil {
			assert.LessOrEqual(t, *job.SalaryMin, *job.SalaryMax)
		}
	}
}

func TestRunAll(t *testing.T) {
	w := &recordingWriter{}
	require.NoError(t, RunAll(context.Background(), w, nil, JobSeeder{}))
	assert.Len(t, w.jobs, len(DemoJobs()))

	w = &recordingWriter{err: errors.New("db down")}
	err := RunAll(context.Background(), w, nil, JobSeeder{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seeder jobs")
}
