package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/abdidvp/stockroom/internal/domain"
)

// FileName is the per-directory configuration file.
const FileName = ".stockroom.yaml"

// EnvPrefix prefixes every environment override, e.g. STOCKROOM_LOG_LEVEL.
const EnvPrefix = "STOCKROOM"

// YAMLLoader reads .stockroom.yaml and applies STOCKROOM_* environment
// overrides on top.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .stockroom.yaml from dir. A missing file yields DefaultConfig
// with environment overrides applied.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	return l.LoadFile(filepath.Join(dir, FileName))
}

// LoadFile is Load for an explicit config path.
func (l *YAMLLoader) LoadFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return domain.Config{}, err
	default:
		var fromFile domain.Config
		if err := yaml.Unmarshal(data, &fromFile); err != nil {
			return domain.Config{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
		}
		cfg = cfg.Merge(fromFile)
	}

	var fromEnv domain.Config
	if err := envconfig.Process(EnvPrefix, &fromEnv); err != nil {
		return domain.Config{}, fmt.Errorf("reading environment: %w", err)
	}
	cfg = cfg.Merge(fromEnv)

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}
