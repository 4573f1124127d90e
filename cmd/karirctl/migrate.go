package main

import (
	"context"
	"fmt"
	"time"

	"karir-nusantara/internal/config"
	"karir-nusantara/internal/database"
	"karir-nusantara/internal/database/migration"
	dbpostgres "karir-nusantara/internal/database/postgres"
	"karir-nusantara/migrations"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := commandLogger(cmd)
			defer func() { _ = log.Sync() }()

			db, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			r := migration.Runner{FS: migrations.FS, Logger: log}
			if dir != "" {
				r = migration.Runner{Dir: dir, Logger: log}
			}

			n, err := r.Run(cmd.Context(), db.SQLDB())
			if err != nil {
				return err
			}
			log.Info("migrations complete", zap.Int("applied", n))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Read migrations from this directory instead of the embedded set")
	return cmd
}

func connect(parent context.Context) (database.DB, error) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, config.LoadDatabase())
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}
