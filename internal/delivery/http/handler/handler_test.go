package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"karir-nusantara/internal/delivery/http/middleware"
	"karir-nusantara/internal/domain/cvquality"
	"karir-nusantara/internal/domain/recommendation"
	"karir-nusantara/internal/pkg/jwt"
	"karir-nusantara/internal/repository"
	"karir-nusantara/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
}

type fakeProfiles struct {
	profile recommendation.UserProfile
	err     error
	updated recommendation.UserProfile
}

func (f *fakeProfiles) Get(context.Context, uuid.UUID) (recommendation.UserProfile, error) {
	return f.profile, f.err
}

func (f *fakeProfiles) Update(_ context.Context, _ uuid.UUID, p recommendation.UserProfile) (recommendation.UserProfile, error) {
	f.updated = p
	return p, f.err
}

type fakeRecommendations struct {
	items     []recommendation.Score
	err       error
	lastLimit int
	lastUser  uuid.UUID
	lastJobs  []recommendation.Job
	lastJobID uuid.UUID
}

func (f *fakeRecommendations) GetRecommendations(_ context.Context, userID uuid.UUID, limit int) ([]recommendation.Score, error) {
	f.lastUser, f.lastLimit = userID, limit
	return f.items, f.err
}

func (f *fakeRecommendations) ScoreJob(_ context.Context, userID, jobID uuid.UUID) (recommendation.Score, error) {
	f.lastUser, f.lastJobID = userID, jobID
	if f.err != nil {
		return recommendation.Score{}, f.err
	}
	return recommendation.Score{Job: recommendation.Job{ID: jobID.String()}, Score: 64}, nil
}

func (f *fakeRecommendations) RecommendForProfile(_ context.Context, p recommendation.UserProfile, jobs []recommendation.Job, limit int) ([]recommendation.Score, error) {
	f.lastJobs, f.lastLimit = jobs, limit
	if f.err != nil {
		return nil, f.err
	}
	return recommendation.GetJobRecommendations(p, jobs, limit), nil
}

type fakeJobs struct {
	items      []recommendation.Job
	err        error
	lastParams usecase.JobListParams
	saved      recommendation.Job
}

func (f *fakeJobs) List(_ context.Context, params usecase.JobListParams) ([]recommendation.Job, error) {
	f.lastParams = params
	return f.items, f.err
}

func (f *fakeJobs) Upsert(_ context.Context, job recommendation.Job) (recommendation.Job, error) {
	if f.err != nil {
		return recommendation.Job{}, f.err
	}
	job.ID = "11111111-1111-1111-1111-111111111111"
	f.saved = job
	return job, nil
}

type fixture struct {
	app     *fiber.App
	jwt     *jwt.HMACService
	profile *fakeProfiles
	recs    *fakeRecommendations
	jobs    *fakeJobs
	drafts  *repository.MemoryDraftStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		jwt:     jwt.NewHMACService("test-secret", time.Minute),
		profile: &fakeProfiles{},
		recs:    &fakeRecommendations{},
		jobs:    &fakeJobs{},
		drafts:  repository.NewMemoryDraftStore(),
	}

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	auth := middleware.NewAuthMiddleware(f.jwt).Middleware()

	NewHealthHandler(nil, nil).RegisterRoutes(app)
	v1 := app.Group("/api/v1")
	NewCVHandler(usecase.NewCVQualityUsecase(f.drafts), usecase.NewCVDraftUsecase(f.drafts)).RegisterRoutes(v1, auth)
	NewProfileHandler(f.profile).RegisterRoutes(v1, auth)
	NewJobRecommendationHandler(f.recs).RegisterRoutes(v1, auth)
	NewJobsHandler(f.jobs).RegisterRoutes(v1, auth)

	f.app = app
	return f
}

func (f *fixture) token(t *testing.T, uid uuid.UUID) string {
	t.Helper()
	tok, err := f.jwt.GenerateAccessToken(uid, "user@example.id")
	require.NoError(t, err)
	return tok
}

func (f *fixture) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := f.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	status, env := f.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", env.Message)
}

type downPinger struct{}

func (downPinger) Ping(context.Context) error { return errors.New("down") }

func TestHealth_RequiredDependencyDown(t *testing.T) {
	app := fiber.New()
	NewHealthHandler(map[string]Pinger{"postgres": downPinger{}}, map[string]Pinger{"redis": downPinger{}}).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.JSONEq(t, `{"status":"unhealthy","checks":{"postgres":"down","redis":"degraded"}}`, string(env.Data))
}

func TestAnalyzeCV(t *testing.T) {
	f := newFixture(t)

	status, env := f.do(t, http.MethodPost, "/api/v1/cv/analyze", "", map[string]any{})
	require.Equal(t, http.StatusOK, status)

	var fb cvquality.Feedback
	require.NoError(t, json.Unmarshal(env.Data, &fb))
	assert.Equal(t, 18, fb.Score)
	assert.Equal(t, cvquality.GradeF, fb.Grade)
	assert.Len(t, fb.Sections, 5)
}

func TestAnalyzeCV_ValidationFailure(t *testing.T) {
	f := newFixture(t)
	skills := make([]string, 101)
	for i := range skills {
		skills[i] = "Go"
	}

	status, env := f.do(t, http.MethodPost, "/api/v1/cv/analyze", "", map[string]any{"skills": skills})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "Validation failed", env.Message)

	var fields []FieldError
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	require.Len(t, fields, 1)
	assert.Equal(t, "skills", fields[0].Field)
	assert.Equal(t, "max", fields[0].Rule)
}

func TestScoreMeta(t *testing.T) {
	f := newFixture(t)

	status, env := f.do(t, http.MethodGet, "/api/v1/cv/score-meta?score=72", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{
		"score": 72, "grade": "B", "label": "Baik", "color": "#3B82F6",
		"message": "CV Anda sudah baik. Beberapa perbaikan kecil akan membuatnya lebih menonjol."
	}`, string(env.Data))

	for _, q := range []string{"", "abc", "-1", "101"} {
		status, _ = f.do(t, http.MethodGet, "/api/v1/cv/score-meta?score="+q, "", nil)
		assert.Equal(t, http.StatusBadRequest, status, q)
	}
}

func TestCVDraftEndpoints(t *testing.T) {
	f := newFixture(t)
	tok := f.token(t, uuid.New())

	status, _ := f.do(t, http.MethodGet, "/api/v1/me/cv-draft", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, env := f.do(t, http.MethodGet, "/api/v1/me/cv-draft", tok, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "CV draft not found", env.Message)

	body := map[string]any{
		"personalInfo": map[string]any{"fullName": "Dewi Lestari", "email": "dewi@example.id"},
		"skills":       []string{"Go", "Leadership"},
	}
	status, env = f.do(t, http.MethodPut, "/api/v1/me/cv-draft", tok, body)
	require.Equal(t, http.StatusOK, status)
	var fb cvquality.Feedback
	require.NoError(t, json.Unmarshal(env.Data, &fb))
	assert.Greater(t, fb.Score, 0)

	status, env = f.do(t, http.MethodGet, "/api/v1/me/cv-draft", tok, nil)
	require.Equal(t, http.StatusOK, status)
	var cv cvquality.CV
	require.NoError(t, json.Unmarshal(env.Data, &cv))
	assert.Equal(t, "Dewi Lestari", cv.PersonalInfo.FullName)

	status, env = f.do(t, http.MethodGet, "/api/v1/me/cv-draft/analysis", tok, nil)
	require.Equal(t, http.StatusOK, status)
	var again cvquality.Feedback
	require.NoError(t, json.Unmarshal(env.Data, &again))
	assert.Equal(t, fb, again)

	status, _ = f.do(t, http.MethodDelete, "/api/v1/me/cv-draft", tok, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = f.do(t, http.MethodGet, "/api/v1/me/cv-draft/analysis", tok, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestProfileEndpoints(t *testing.T) {
	f := newFixture(t)
	tok := f.token(t, uuid.New())

	f.profile.err = usecase.ErrProfileNotFound
	status, env := f.do(t, http.MethodGet, "/api/v1/me/profile", tok, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Profile not found", env.Message)

	f.profile.err = nil
	status, _ = f.do(t, http.MethodPut, "/api/v1/me/profile", tok, map[string]any{"experience": -2})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = f.do(t, http.MethodPut, "/api/v1/me/profile", tok, map[string]any{"email": "not-an-email"})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = f.do(t, http.MethodPut, "/api/v1/me/profile", tok, map[string]any{
		"name": "Rizky", "category": "Teknologi", "location": "Bali", "experience": 2.5, "skills": []string{"Go"},
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Rizky", f.profile.updated.Name)
	require.NotNil(t, f.profile.updated.Experience)
	assert.Equal(t, 2.5, *f.profile.updated.Experience)
}

func TestGetRecommendations(t *testing.T) {
	f := newFixture(t)
	uid := uuid.New()
	tok := f.token(t, uid)
	f.recs.items = []recommendation.Score{{Job: recommendation.Job{ID: "a"}, Score: 80, MatchReasons: []string{"x"}, MismatchReasons: []string{}}}

	status, env := f.do(t, http.MethodGet, "/api/v1/jobs/recommendations?limit=5", tok, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, uid, f.recs.lastUser)
	assert.Equal(t, 5, f.recs.lastLimit)

	var items []recommendation.Score
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, 80, items[0].Score)

	status, _ = f.do(t, http.MethodGet, "/api/v1/jobs/recommendations?limit=abc", tok, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	f.recs.err = usecase.ErrNoJobsFound
	status, env = f.do(t, http.MethodGet, "/api/v1/jobs/recommendations", tok, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No jobs found", env.Message)

	f.recs.err = fmtInternal()
	status, env = f.do(t, http.MethodGet, "/api/v1/jobs/recommendations", tok, nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", env.Message)
}

func fmtInternal() error {
	return errors.Join(usecase.ErrInternal, errors.New("connection refused"))
}

func TestScoreJob(t *testing.T) {
	f := newFixture(t)
	tok := f.token(t, uuid.New())
	jobID := uuid.New()

	status, env := f.do(t, http.MethodGet, "/api/v1/jobs/"+jobID.String()+"/score", tok, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, jobID, f.recs.lastJobID)

	var s recommendation.Score
	require.NoError(t, json.Unmarshal(env.Data, &s))
	assert.Equal(t, 64, s.Score)

	status, _ = f.do(t, http.MethodGet, "/api/v1/jobs/not-a-uuid/score", tok, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRankAnonymous(t *testing.T) {
	f := newFixture(t)
	body := map[string]any{
		"profile": map[string]any{"category": "Teknologi", "location": "DKI Jakarta"},
		"jobs": []map[string]any{
			{"id": "a", "title": "Data Analyst", "category": "Teknologi", "province": "Bali"},
			{"id": "b", "title": "Backend Engineer", "category": "Teknologi", "province": "DKI Jakarta"},
			{"id": "c", "title": "Akuntan", "category": "Keuangan", "province": "Aceh"},
		},
		"limit": 2,
	}

	status, env := f.do(t, http.MethodPost, "/api/v1/recommendations", "", body)
	require.Equal(t, http.StatusOK, status)

	var items []recommendation.Score
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].Job.ID)
	assert.Equal(t, 55, items[0].Score)
	assert.Len(t, f.recs.lastJobs, 3)

	status, _ = f.do(t, http.MethodPost, "/api/v1/recommendations", "", map[string]any{"limit": 1000})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestListJobs(t *testing.T) {
	f := newFixture(t)
	f.jobs.items = []recommendation.Job{{ID: "a", Title: "Kasir", Requirements: []string{}}}

	status, env := f.do(t, http.MethodGet, "/api/v1/jobs?category=Ritel&province=Bali&remote=true&q=kasir&limit=5&offset=5", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"limit":5,"offset":5,"count":1}`, string(env.Meta))
	assert.Equal(t, "Ritel", f.jobs.lastParams.Category)
	assert.Equal(t, "Bali", f.jobs.lastParams.Province)
	require.NotNil(t, f.jobs.lastParams.Remote)
	assert.True(t, *f.jobs.lastParams.Remote)
	assert.Equal(t, "kasir", f.jobs.lastParams.Keyword)

	status, _ = f.do(t, http.MethodGet, "/api/v1/jobs?remote=maybe", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	f.jobs.err = errors.Join(usecase.ErrInvalidInput, errors.New("limit must be between 0 and 100"))
	status, _ = f.do(t, http.MethodGet, "/api/v1/jobs?limit=500", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUpsertJob(t *testing.T) {
	f := newFixture(t)
	tok := f.token(t, uuid.New())
	body := map[string]any{"title": "Barista", "category": "F&B", "requirements": []string{"Minimal 1 tahun"}}

	status, _ := f.do(t, http.MethodPost, "/api/v1/jobs", "", body)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, env := f.do(t, http.MethodPost, "/api/v1/jobs", tok, body)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "job saved", env.Message)
	assert.Equal(t, "Barista", f.jobs.saved.Title)

	status, _ = f.do(t, http.MethodPost, "/api/v1/jobs", tok, map[string]any{"title": "x", "salaryMin": -1})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestInvalidMessage(t *testing.T) {
	err := fmt.Errorf("%w: title is required", usecase.ErrInvalidInput)
	assert.Equal(t, "title is required", invalidMessage(err))
	assert.Equal(t, "Bad request", invalidMessage(usecase.ErrInvalidInput))
}
