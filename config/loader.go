package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides: FAULTKIT_DEFAULT_LOCALE
// overrides default_locale, FAULTKIT_LOGGING_LEVEL overrides
// logging.level.
const envPrefix = "FAULTKIT"

// LoaderOption configures LoadSettings.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	envFile string
}

// WithEnvFile loads the given .env file before reading environment
// overrides. A missing file is ignored.
func WithEnvFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.envFile = path }
}

// LoadSettings reads settings from the YAML file at path, applies
// environment overrides, defaults, and validation.
func LoadSettings(path string, opts ...LoaderOption) (*Settings, error) {
	var o loaderOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.envFile != "" {
		if _, err := os.Stat(o.envFile); err == nil {
			if err := godotenv.Load(o.envFile); err != nil {
				return nil, fmt.Errorf("config: loading env file %s: %w", o.envFile, err)
			}
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	// AutomaticEnv only affects known keys during Unmarshal; bind every key
	// seen in the file so overrides apply.
	for _, k := range v.AllKeys() {
		_ = v.BindEnv(k)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("config: unmarshaling %s: %w", path, err)
	}

	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid settings: %w", err)
	}
	return &s, nil
}
