package config

import (
	"fmt"

	"github.com/kbukum/faultkit/logger"
	"github.com/kbukum/faultkit/validation"
)

// Settings is the top-level faultkit configuration. Services embed it in
// their own config structs.
type Settings struct {
	Name          string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment   string        `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Debug         bool          `yaml:"debug" mapstructure:"debug"`
	DefaultLocale string        `yaml:"default_locale" mapstructure:"default_locale" validate:"required"`
	Locales       []string      `yaml:"locales" mapstructure:"locales"`
	CatalogDir    string        `yaml:"catalog_dir" mapstructure:"catalog_dir" validate:"required"`
	Logging       logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values to the settings.
func (s *Settings) ApplyDefaults() {
	if s.Environment == "" {
		s.Environment = "development"
	}
	if s.Environment == "development" {
		s.Debug = true
	}
	if s.DefaultLocale == "" {
		s.DefaultLocale = "en"
	}
	s.Logging.ApplyDefaults()
}

// Validate checks the settings, struct tags first, then the logging config.
func (s *Settings) Validate() error {
	if err := validation.Struct(s); err != nil {
		return err
	}
	if err := s.Logging.Validate(); err != nil {
		return fmt.Errorf("settings.logging: %w", err)
	}
	return nil
}
