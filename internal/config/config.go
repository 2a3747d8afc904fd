package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides. Nested keys are joined
// with a double underscore: STUDIO_STORE__BACKEND -> store.backend.
const EnvPrefix = "STUDIO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (STUDIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps STUDIO_MAIL__FROM_EMAIL to mail.from_email.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// LoadDotEnv loads KEY=value pairs from a .env file into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validBackends is the set of recognized store backends.
var validBackends = map[StoreBackend]bool{
	BackendSQLite:   true,
	BackendDynamoDB: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.SiteName == "" {
		return fmt.Errorf("site_name is required")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.CatalogFile == "" {
		return fmt.Errorf("catalog_file is required")
	}

	if !validBackends[c.Store.Backend] {
		return fmt.Errorf("invalid store.backend %q: must be one of sqlite, dynamodb", c.Store.Backend)
	}
	if c.Store.Backend == BackendSQLite && c.DataDir == "" {
		return fmt.Errorf("data_dir is required for the sqlite backend")
	}
	if c.Store.Backend == BackendDynamoDB && c.Store.DynamoTable == "" {
		return fmt.Errorf("store.dynamo_table is required for the dynamodb backend")
	}

	if c.Mail.Host != "" {
		if c.Mail.FromEmail == "" {
			return fmt.Errorf("mail.from_email is required when mail.host is set")
		}
		if c.Mail.NotifyTo == "" {
			return fmt.Errorf("mail.notify_to is required when mail.host is set")
		}
	}

	if c.Carousel.HeroIntervalMS <= 0 || c.Carousel.TestimonialIntervalMS <= 0 {
		return fmt.Errorf("carousel intervals must be positive")
	}
	if c.Carousel.TransitionLockMS < 0 {
		return fmt.Errorf("carousel.transition_lock_ms must be non-negative")
	}
	if c.Carousel.TransitionLockMS >= c.Carousel.HeroIntervalMS {
		return fmt.Errorf("carousel.transition_lock_ms must be shorter than hero_interval_ms")
	}

	if c.Viewport.MobileBreakpoint <= 0 {
		return fmt.Errorf("viewport.mobile_breakpoint must be positive")
	}
	if c.Session.IdleTimeoutMinutes <= 0 {
		return fmt.Errorf("session.idle_timeout_minutes must be positive")
	}

	return nil
}
