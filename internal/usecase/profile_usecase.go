package usecase

import (
	"context"
	"errors"
	"strings"

	"karir-nusantara/internal/domain/recommendation"
	"karir-nusantara/internal/repository"

	"github.com/google/uuid"
)

type ProfileUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (recommendation.UserProfile, error)
	Update(ctx context.Context, userID uuid.UUID, p recommendation.UserProfile) (recommendation.UserProfile, error)
}

type Profile struct {
	profiles repository.ProfileRepository
}

func NewProfileUsecase(profiles repository.ProfileRepository) *Profile {
	return &Profile{profiles: profiles}
}

func (u *Profile) Get(ctx context.Context, userID uuid.UUID) (recommendation.UserProfile, error) {
	if userID == uuid.Nil {
		return recommendation.UserProfile{}, ErrUnauthorized
	}
	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return recommendation.UserProfile{}, ErrProfileNotFound
		}
		return recommendation.UserProfile{}, internal(err)
	}
	return p, nil
}

func (u *Profile) Update(ctx context.Context, userID uuid.UUID, p recommendation.UserProfile) (recommendation.UserProfile, error) {
	if userID == uuid.Nil {
		return recommendation.UserProfile{}, ErrUnauthorized
	}
	if p.Experience != nil && *p.Experience < 0 {
		return recommendation.UserProfile{}, invalid("experience must not be negative")
	}

	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Category = strings.TrimSpace(p.Category)
	p.Location = strings.TrimSpace(p.Location)

	saved, err := u.profiles.Upsert(ctx, userID, p)
	if err != nil {
		return recommendation.UserProfile{}, internal(err)
	}
	return saved, nil
}
