package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrProfileNotFound = errors.New("profile not found")
	ErrJobNotFound     = errors.New("job not found")
	ErrNoJobsFound     = errors.New("no jobs found")
	ErrDraftNotFound   = errors.New("cv draft not found")
	ErrInternal        = errors.New("internal error")
)

func internal(err error) error {
	return fmt.Errorf("%w: %w", ErrInternal, err)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
