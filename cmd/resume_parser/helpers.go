package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/talentsift/resume-parser/internal/config"
	"github.com/talentsift/resume-parser/internal/pipeline"
	"github.com/talentsift/resume-parser/internal/taxonomy"
)

// runtime bundles everything a command needs after configuration is resolved.
type runtime struct {
	cfg    *config.Config
	parser *pipeline.Parser
	logger *logrus.Entry
}

// newRuntime loads config and taxonomy and wires up the parser. Flag values
// override the config file.
func newRuntime(configPath, taxonomyPath string) (*runtime, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if taxonomyPath != "" {
		cfg.TaxonomyPath = taxonomyPath
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	entry := logrus.NewEntry(logger)

	tax := taxonomy.Default()
	if cfg.TaxonomyPath != "" {
		tax, err = taxonomy.LoadFile(cfg.TaxonomyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load taxonomy: %w", err)
		}
	}

	return &runtime{
		cfg:    cfg,
		parser: pipeline.New(tax, pipeline.WithLogger(entry)),
		logger: entry,
	}, nil
}

// readTextFile reads the whole file as UTF-8 text.
func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// writeJSON pretty-prints v to w.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
