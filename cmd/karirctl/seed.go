package main

import (
	"karir-nusantara/internal/repository"
	"karir-nusantara/internal/seeder"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo job catalogue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := commandLogger(cmd)
			defer func() { _ = log.Sync() }()

			db, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			return seeder.RunAll(cmd.Context(), repository.NewPostgresJobRepository(db), log, seeder.JobSeeder{})
		},
	}
}
