package portal

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const DEFAULT_WORKERS = 1

var validate = validator.New()

// Config tunes how portals are built and processed.
type Config struct {
	// Workers is the number of goroutines used by BuildFrustumSets
	Workers int `yaml:"workers" default:"1" validate:"min=1"`
	// StrictWinding rejects portals whose vertices could not be fully sorted,
	// instead of keeping them partially sorted with a warning
	StrictWinding bool `yaml:"strict_winding"`
	// MinArea rejects portals smaller than this, 0 disables the check
	MinArea float64 `yaml:"min_area" default:"0" validate:"gte=0"`
}

// DefaultConfig returns the configuration used by NewPortal.
func DefaultConfig() Config {
	return Config{
		Workers: DEFAULT_WORKERS,
	}
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes a YAML configuration. Missing keys take their default value.
func ParseConfig(data []byte) (Config, error) {
	var config Config
	if err := defaults.Set(&config); err != nil {
		return Config{}, fmt.Errorf("applying config defaults: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
