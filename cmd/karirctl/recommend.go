package main

import (
	"fmt"

	"karir-nusantara/internal/domain/recommendation"

	"github.com/spf13/cobra"
)

func newRecommendCmd() *cobra.Command {
	var (
		profileFile string
		cvFile      string
		jobsFile    string
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank jobs for a profile",
		Long:  "Score every job in --jobs against the profile (and optional CV) and print the best matches.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return fmt.Errorf("limit must not be negative")
			}

			user := map[string]any{}
			if profileFile != "" {
				if err := loadDocument(cmd, profileFile, &user); err != nil {
					return err
				}
			}
			cv := map[string]any{}
			if cvFile != "" {
				if err := loadDocument(cmd, cvFile, &cv); err != nil {
					return err
				}
			}
			if profileFile == "" && cvFile == "" {
				return fmt.Errorf("provide --profile or --cv")
			}

			var jobs []recommendation.Job
			if err := loadDocument(cmd, jobsFile, &jobs); err != nil {
				return err
			}

			profile := recommendation.BuildUserProfile(user, cv)
			return writeJSON(cmd, recommendation.GetJobRecommendations(profile, jobs, limit))
		},
	}

	cmd.Flags().StringVarP(&profileFile, "profile", "p", "", "User profile file (JSON or YAML)")
	cmd.Flags().StringVar(&cvFile, "cv", "", "CV file used to fill missing profile fields")
	cmd.Flags().StringVarP(&jobsFile, "jobs", "j", "", "Job list file (JSON or YAML)")
	cmd.Flags().IntVarP(&limit, "limit", "n", recommendation.DefaultLimit, "Maximum number of recommendations")
	_ = cmd.MarkFlagRequired("jobs")
	return cmd
}
