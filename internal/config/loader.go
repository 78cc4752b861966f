package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/alexisbeaulieu97/reszplay/internal/logger"
	"github.com/alexisbeaulieu97/reszplay/internal/playground"
	"github.com/alexisbeaulieu97/reszplay/internal/ports"
	reszerrors "github.com/alexisbeaulieu97/reszplay/pkg/errors"
)

// YAMLLoader implements the ConfigLoader port by reading YAML files from disk.
type YAMLLoader struct {
	logger ports.Logger
}

// NewYAMLLoader creates a loader. A nil logger discards log output.
func NewYAMLLoader(log ports.Logger) *YAMLLoader {
	if log == nil {
		log = logger.NewNoOp()
	}
	return &YAMLLoader{logger: log}
}

// Load parses path and builds the configuration it describes.
func (l *YAMLLoader) Load(ctx context.Context, path string) (playground.Config, error) {
	doc, err := l.parse(ctx, path)
	if err != nil {
		return playground.Config{}, err
	}
	cfg := doc.Config()
	l.logger.Info(ctx, "playground document loaded", "path", path, "panel_kind", string(cfg.PanelKind))
	return cfg, nil
}

// Validate parses and validates path without building a configuration.
func (l *YAMLLoader) Validate(ctx context.Context, path string) error {
	_, err := l.parse(ctx, path)
	return err
}

func (l *YAMLLoader) parse(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load cancelled: %w", err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
	default:
		return nil, reszerrors.NewValidationError("path", fmt.Sprintf("unsupported document extension %q", ext), nil)
	}

	l.logger.Debug(ctx, "loading playground document", "path", path)
	doc, err := ParseFile(path)
	if err != nil {
		l.logger.Error(ctx, "failed to load playground document", "path", path, "error", err)
		return nil, fmt.Errorf("load playground document: %w", err)
	}
	return doc, nil
}

var _ ports.ConfigLoader = (*YAMLLoader)(nil)
