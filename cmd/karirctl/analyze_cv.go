package main

import (
	"fmt"

	"karir-nusantara/internal/domain/cvquality"

	"github.com/spf13/cobra"
)

func newAnalyzeCVCmd() *cobra.Command {
	var (
		file    string
		summary bool
	)

	cmd := &cobra.Command{
		Use:   "analyze-cv",
		Short: "Score a CV document",
		Long:  "Analyze a CV stored as JSON or YAML and print the quality feedback.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cv cvquality.CV
			if err := loadDocument(cmd, file, &cv); err != nil {
				return err
			}

			fb := cvquality.Analyze(cv)
			if !summary {
				return writeJSON(cmd, fb)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Skor: %d (%s, %s)\n", fb.Score, fb.Grade, cvquality.ScoreLabel(fb.Score))
			for _, s := range fb.Sections {
				fmt.Fprintf(out, "  %-15s %3d  %s\n", s.Section, s.Score, s.Status)
			}
			for _, imp := range fb.Improvements {
				fmt.Fprintf(out, "- %s\n", imp)
			}
			fmt.Fprintln(out, fb.OverallMessage)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "CV file (JSON or YAML), - for stdin")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print a short text summary instead of JSON")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
