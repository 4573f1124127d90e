package usecase

import (
	"context"

	"karir-nusantara/internal/domain/cvquality"
	"karir-nusantara/internal/repository"

	"github.com/google/uuid"
)

type CVDraftUsecase interface {
	Save(ctx context.Context, userID uuid.UUID, cv cvquality.CV) (cvquality.Feedback, error)
	Get(ctx context.Context, userID uuid.UUID) (cvquality.CV, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type CVDraft struct {
	drafts repository.DraftStore
}

func NewCVDraftUsecase(drafts repository.DraftStore) *CVDraft {
	return &CVDraft{drafts: drafts}
}

// Save stores cv as the user's draft and returns its feedback.
func (u *CVDraft) Save(ctx context.Context, userID uuid.UUID, cv cvquality.CV) (cvquality.Feedback, error) {
	if userID == uuid.Nil {
		return cvquality.Feedback{}, ErrUnauthorized
	}
	if err := u.drafts.Put(ctx, userID, cv); err != nil {
		return cvquality.Feedback{}, internal(err)
	}
	return cvquality.Analyze(cv), nil
}

func (u *CVDraft) Get(ctx context.Context, userID uuid.UUID) (cvquality.CV, error) {
	if userID == uuid.Nil {
		return cvquality.CV{}, ErrUnauthorized
	}
	cv, err := u.drafts.Get(ctx, userID)
	if err != nil {
		return cvquality.CV{}, draftError(err)
	}
	return cv, nil
}

func (u *CVDraft) Delete(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := u.drafts.Delete(ctx, userID); err != nil {
		return internal(err)
	}
	return nil
}
