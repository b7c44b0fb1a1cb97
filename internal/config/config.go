package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/securebyte/securebyte/internal/chunker"
)

// Settings is the validated runtime configuration for one analysis run
type Settings struct {
	Provider      string
	Model         string
	Persona       string
	LinesPerChunk int
	Workers       int
	Debug         bool
}

// Init initializes the configuration subsystem. It searches for a config
// file in priority order:
//  1. Directory specified by SECUREBYTE_CONFIG_DIR
//  2. ~/.config/securebyte/
//  3. Current working directory
//
// A missing config file is fine — defaults and environment variables
// apply. An unreadable or malformed file is an error.
func Init() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("SECUREBYTE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if envPath := os.Getenv("SECUREBYTE_CONFIG_DIR"); envPath != "" {
		viper.AddConfigPath(envPath)
	}
	if home := os.Getenv("HOME"); home != "" {
		viper.AddConfigPath(filepath.Join(home, ".config", "securebyte"))
	}
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	return nil
}

// Load resolves the effective settings after Init and flag binding
func Load() (*Settings, error) {
	s := &Settings{
		Provider:      viper.GetString("provider"),
		Model:         viper.GetString("model"),
		Persona:       viper.GetString("persona"),
		LinesPerChunk: viper.GetInt("lines_per_chunk"),
		Workers:       viper.GetInt("workers"),
		Debug:         viper.GetBool("debug"),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks settings before the pipeline runs
func (s *Settings) Validate() error {
	if s.LinesPerChunk <= 0 {
		return fmt.Errorf("lines_per_chunk must be positive, got %d", s.LinesPerChunk)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", s.Workers)
	}
	return nil
}

// Reset clears the configuration state for testing purposes
func Reset() {
	viper.Reset()
	setDefaults()
}

// setDefaults registers default values for every known key
func setDefaults() {
	viper.SetDefault("provider", "")
	viper.SetDefault("model", "")
	viper.SetDefault("persona", "")
	viper.SetDefault("lines_per_chunk", chunker.DefaultLinesPerChunk)
	viper.SetDefault("workers", 0)
	viper.SetDefault("debug", false)
}
