package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"karir-nusantara/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("input path is required")
	}
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return b, nil
}

// decodeDocument accepts YAML or JSON.
func decodeDocument(raw []byte, out any) error {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return fmt.Errorf("input is empty")
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode input: %w", err)
	}
	return nil
}

func loadDocument(cmd *cobra.Command, path string, out any) error {
	raw, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	return decodeDocument(raw, out)
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func commandLogger(cmd *cobra.Command) *zap.Logger {
	jsonLogs, _ := cmd.Flags().GetBool("log-json")
	debug, _ := cmd.Flags().GetBool("debug")
	l, err := logger.New(jsonLogs, debug)
	if err != nil {
		return logger.OrNop(nil)
	}
	return l
}
