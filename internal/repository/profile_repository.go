package repository

import (
	"context"
	"strings"

	"karir-nusantara/internal/database"
	"karir-nusantara/internal/domain/recommendation"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (recommendation.UserProfile, error)
	Upsert(ctx context.Context, userID uuid.UUID, p recommendation.UserProfile) (recommendation.UserProfile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const profileColumns = `user_id, name, email, phone, skills, category, location, experience_years::float8`

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (recommendation.UserProfile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM user_profiles WHERE user_id = $1`, userID)
	p, err := scanProfile(row)
	if err != nil {
		if isNoRows(err) {
			return recommendation.UserProfile{}, ErrProfileNotFound
		}
		return recommendation.UserProfile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, userID uuid.UUID, p recommendation.UserProfile) (recommendation.UserProfile, error) {
	skills := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO user_profiles (user_id, name, email, phone, skills, category, location, experience_years, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		 ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			skills = EXCLUDED.skills,
			category = EXCLUDED.category,
			location = EXCLUDED.location,
			experience_years = EXCLUDED.experience_years,
			updated_at = now()
		 RETURNING `+profileColumns,
		userID, p.Name, p.Email, p.Phone, skills, p.Category, p.Location, p.Experience,
	)
	return scanProfile(row)
}

func scanProfile(row database.Row) (recommendation.UserProfile, error) {
	var (
		p  recommendation.UserProfile
		id uuid.UUID
	)
	if err := row.Scan(&id, &p.Name, &p.Email, &p.Phone, &p.Skills, &p.Category, &p.Location, &p.Experience); err != nil {
		return recommendation.UserProfile{}, err
	}
	p.ID = id.String()
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return p, nil
}
