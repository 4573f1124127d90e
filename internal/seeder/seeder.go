package seeder

import (
	"context"
	"fmt"

	"karir-nusantara/internal/domain/recommendation"

	"go.uber.org/zap"
)

// JobWriter is the slice of the job repository seeders need.
type JobWriter interface {
	Upsert(ctx context.Context, job recommendation.Job) (recommendation.Job, error)
}

type Seeder interface {
	Name() string
	Run(ctx context.Context, jobs JobWriter) (int, error)
}

// RunAll runs seeders in order and stops at the first failure.
func RunAll(ctx context.Context, jobs JobWriter, logger *zap.Logger, seeders ...Seeder) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	for _, s := range seeders {
		n, err := s.Run(ctx, jobs)
		if err != nil {
			return fmt.Errorf("seeder %s: %w", s.Name(), err)
		}
		logger.Info("seeder complete", zap.String("seeder", s.Name()), zap.Int("rows", n))
	}
	return nil
}
