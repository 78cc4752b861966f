package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/reszplay/internal/config"
	"github.com/alexisbeaulieu97/reszplay/internal/playground"
	"github.com/alexisbeaulieu97/reszplay/internal/ports"
)

// envNoPreview disables the live preview when set to a truthy value.
const envNoPreview = "RESZPLAY_NO_PREVIEW"

func validateConfigPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}

// loadPlaygroundConfig returns the defaults when path is empty.
func loadPlaygroundConfig(ctx context.Context, log ports.Logger, path string) (playground.Config, error) {
	if path == "" {
		return playground.Default(), nil
	}
	if err := validateConfigPath(path); err != nil {
		return playground.Config{}, err
	}
	return config.NewYAMLLoader(log).Load(ctx, path)
}

func previewDisabledByEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(envNoPreview))) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
