package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"karir-nusantara/internal/database"
	"karir-nusantara/internal/domain/recommendation"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrJobNotFound     = errors.New("job not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrDraftNotFound   = errors.New("cv draft not found")
)

// JobFilter narrows ListJobs. Zero values do not filter.
type JobFilter struct {
	Category string
	Province string
	Remote   *bool
	Keyword  string
	Limit    int
	Offset   int
}

type JobRepository interface {
	ListActiveJobs(ctx context.Context, limit, offset int) ([]recommendation.Job, error)
	ListJobs(ctx context.Context, f JobFilter) ([]recommendation.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (recommendation.Job, error)
	Upsert(ctx context.Context, job recommendation.Job) (recommendation.Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, title, company, category, province, city, is_remote, is_urgent,
	requirements, salary_min, salary_max, description`

func (r *PostgresJobRepository) ListActiveJobs(ctx context.Context, limit, offset int) ([]recommendation.Job, error) {
	limit, offset = clampPage(limit, offset, 200, 1000)

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE is_active = true
		 ORDER BY created_at DESC, id ASC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *PostgresJobRepository) ListJobs(ctx context.Context, f JobFilter) ([]recommendation.Job, error) {
	limit, offset := clampPage(f.Limit, f.Offset, 20, 100)

	where := []string{"is_active = true"}
	args := make([]any, 0, 6)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if c := strings.TrimSpace(f.Category); c != "" {
		where = append(where, "lower(category) = lower("+arg(c)+")")
	}
	if p := strings.TrimSpace(f.Province); p != "" {
		where = append(where, "lower(province) = lower("+arg(p)+")")
	}
	if f.Remote != nil {
		where = append(where, "is_remote = "+arg(*f.Remote))
	}
	if q := strings.TrimSpace(f.Keyword); q != "" {
		ph := arg("%" + escapeLike(q) + "%")
		where = append(where, "(title ILIKE "+ph+" OR company ILIKE "+ph+" OR description ILIKE "+ph+")")
	}

	query := `SELECT ` + jobColumns + `
		 FROM jobs
		 WHERE ` + strings.Join(where, " AND ") + `
		 ORDER BY is_urgent DESC, created_at DESC, id ASC
		 LIMIT ` + arg(limit) + ` OFFSET ` + arg(offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (recommendation.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1 AND is_active = true`, id)
	j, err := scanJob(row)
	if err != nil {
		if isNoRows(err) {
			return recommendation.Job{}, ErrJobNotFound
		}
		return recommendation.Job{}, err
	}
	return j, nil
}

// Upsert inserts job or replaces the row with the same id. A job without an
// id gets a fresh one.
func (r *PostgresJobRepository) Upsert(ctx context.Context, job recommendation.Job) (recommendation.Job, error) {
	id := uuid.New()
	if raw := strings.TrimSpace(job.ID); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return recommendation.Job{}, err
		}
		id = parsed
	}

	reqs := job.Requirements
	if reqs == nil {
		reqs = []string{}
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (id, title, company, category, province, city, is_remote, is_urgent,
			requirements, salary_min, salary_max, description, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, true, now(), now())
		 ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			company = EXCLUDED.company,
			category = EXCLUDED.category,
			province = EXCLUDED.province,
			city = EXCLUDED.city,
			is_remote = EXCLUDED.is_remote,
			is_urgent = EXCLUDED.is_urgent,
			requirements = EXCLUDED.requirements,
			salary_min = EXCLUDED.salary_min,
			salary_max = EXCLUDED.salary_max,
			description = EXCLUDED.description,
			is_active = true,
			updated_at = now()
		 RETURNING `+jobColumns,
		id, strings.TrimSpace(job.Title), job.Company, job.Category, job.Province, job.City,
		job.IsRemote, job.IsUrgent, reqs, job.SalaryMin, job.SalaryMax, job.Description,
	)
	return scanJob(row)
}

func scanJob(row database.Row) (recommendation.Job, error) {
	var (
		j  recommendation.Job
		id uuid.UUID
	)
	if err := row.Scan(&id, &j.Title, &j.Company, &j.Category, &j.Province, &j.City,
		&j.IsRemote, &j.IsUrgent, &j.Requirements, &j.SalaryMin, &j.SalaryMax, &j.Description); err != nil {
		return recommendation.Job{}, err
	}
	j.ID = id.String()
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
	return j, nil
}

func collectJobs(rows database.Rows) ([]recommendation.Job, error) {
	defer rows.Close()

	out := make([]recommendation.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func clampPage(limit, offset, def, maxLimit int) (int, int) {
	if limit <= 0 {
		limit = def
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func isNoRows(err error) bool {
	return errors.Is(err, database.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
