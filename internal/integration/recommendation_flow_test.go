package integration

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"karir-nusantara/internal/config"
	"karir-nusantara/internal/database"
	"karir-nusantara/internal/database/migration"
	dbpostgres "karir-nusantara/internal/database/postgres"
	"karir-nusantara/internal/delivery/http/handler"
	"karir-nusantara/internal/delivery/http/middleware"
	"karir-nusantara/internal/delivery/http/routes"
	"karir-nusantara/internal/domain/recommendation"
	"karir-nusantara/internal/infrastructure/cache"
	"karir-nusantara/internal/pkg/jwt"
	"karir-nusantara/internal/repository"
	"karir-nusantara/internal/seeder"
	"karir-nusantara/internal/usecase"
	"karir-nusantara/migrations"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestIntegration_SeededJobsAreRecommended(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	_, err := migration.Runner{FS: migrations.FS}.Run(ctx, db.SQLDB())
	require.NoError(t, err)

	jobs := repository.NewPostgresJobRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)
	require.NoError(t, seeder.RunAll(ctx, jobs, nil, seeder.JobSeeder{}))

	userID := uuid.New()
	exp := 4.0
	_, err = profiles.Upsert(ctx, userID, recommendation.UserProfile{
		Name:       "Rina Wijaya",
		Email:      "rina@example.id",
		Skills:     []string{"Golang", "PostgreSQL", "Redis"},
		Category:   "Teknologi",
		Location:   "DKI Jakarta",
		Experience: &exp,
	})
	require.NoError(t, err)
	defer func() {
		_, _ = db.Exec(context.Background(), `DELETE FROM user_profiles WHERE user_id = $1`, userID)
	}()

	jwtSvc := jwt.NewHMACService("integration-secret", time.Hour)
	app := newTestApp(db, jwtSvc)

	tok, err := jwtSvc.GenerateAccessToken(userID, "rina@example.id")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/v1/jobs/recommendations?limit=5", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, 200, resp.StatusCode)

	var env semanticResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))

	var recs []recommendation.Score
	require.NoError(t, json.Unmarshal(env.Data, &recs))
	require.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), 5)

	seen := map[string]bool{}
	for i, r := range recs {
		assert.False(t, seen[r.Job.ID], "duplicate job %s", r.Job.ID)
		seen[r.Job.ID] = true
		assert.Greater(t, r.Score, recommendation.MinScore)
		if i > 0 {
			assert.GreaterOrEqual(t, recs[i-1].Score, r.Score)
		}
	}

	backend := seeder.DemoJobs()[0]
	assert.True(t, seen[backend.ID], "expected seeded backend job in recommendations")
}

func newTestApp(db database.DB, jwtSvc jwt.Service) *fiber.App {
	drafts := repository.NewMemoryDraftStore()
	bypass := cache.NewRedis(nil, time.Minute, nil)

	jobs := repository.NewPostgresJobRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	reg := &routes.Registry{
		Health:  handler.NewHealthHandler(map[string]handler.Pinger{"postgres": db}, nil),
		CV:      handler.NewCVHandler(usecase.NewCVQualityUsecase(drafts), usecase.NewCVDraftUsecase(drafts)),
		Profile: handler.NewProfileHandler(usecase.NewProfileUsecase(profiles)),
		Recommendations: handler.NewJobRecommendationHandler(usecase.NewJobRecommendationUsecase(
			profiles, drafts, jobs, bypass,
			usecase.RecommendationSettings{DefaultLimit: 10, MaxLimit: 50, CandidatePool: 200},
			nil,
		)),
		Jobs: handler.NewJobsHandler(usecase.NewJobUsecase(jobs, bypass, nil, nil)),
		Auth: middleware.NewAuthMiddleware(jwtSvc).Middleware(),
	}
	reg.Register(app)
	return app
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := stringsOrDefault(os.Getenv("KARIR_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("KARIR_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("KARIR_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("KARIR_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("KARIR_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("KARIR_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set KARIR_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: pass,
		DBSSLMode:  ssl,
	})
	require.NoError(t, err)
	return db
}

func stringsOrDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
