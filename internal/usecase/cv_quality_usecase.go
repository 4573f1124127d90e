package usecase

import (
	"context"
	"errors"

	"karir-nusantara/internal/domain/cvquality"
	"karir-nusantara/internal/repository"

	"github.com/google/uuid"
)

type CVQualityUsecase interface {
	Analyze(ctx context.Context, cv cvquality.CV) (cvquality.Feedback, error)
	AnalyzeDraft(ctx context.Context, userID uuid.UUID) (cvquality.Feedback, error)
}

type CVQuality struct {
	drafts repository.DraftStore
}

func NewCVQualityUsecase(drafts repository.DraftStore) *CVQuality {
	return &CVQuality{drafts: drafts}
}

func (u *CVQuality) Analyze(_ context.Context, cv cvquality.CV) (cvquality.Feedback, error) {
	return cvquality.Analyze(cv), nil
}

func (u *CVQuality) AnalyzeDraft(ctx context.Context, userID uuid.UUID) (cvquality.Feedback, error) {
	if userID == uuid.Nil {
		return cvquality.Feedback{}, ErrUnauthorized
	}
	cv, err := u.drafts.Get(ctx, userID)
	if err != nil {
		return cvquality.Feedback{}, draftError(err)
	}
	return cvquality.Analyze(cv), nil
}

func draftError(err error) error {
	if errors.Is(err, repository.ErrDraftNotFound) {
		return ErrDraftNotFound
	}
	return internal(err)
}
