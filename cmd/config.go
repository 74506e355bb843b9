package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/errs"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/robfig/cron/v3"
)

// EnvPrefix marks environment variables that override the configuration.
// Nested keys are separated by a double underscore: DISPATCH_DATABASE__HOST.
const EnvPrefix = "DISPATCH_"

type Config struct {
	HTTP      HTTPConfig      `json:"http"`
	Database  DatabaseConfig  `json:"database"`
	Geocoding GeocodingConfig `json:"geocoding"`
	Routing   RoutingConfig   `json:"routing"`
	Solver    SolverConfig    `json:"solver"`
	Dispatch  DispatchConfig  `json:"dispatch"`
	Logging   LoggingConfig   `json:"logging"`
}

type HTTPConfig struct {
	Port int `json:"port"`
}

type DatabaseConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Name     string `json:"name"`
	SSLMode  string `json:"ssl_mode"`
}

// DSN renders the libpq connection string used by the gorm postgres driver.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type GeocodingConfig struct {
	BaseURL   string        `json:"base_url"`
	UserAgent string        `json:"user_agent"`
	Timeout   time.Duration `json:"timeout"`
}

type RoutingConfig struct {
	BaseURL string        `json:"base_url"`
	Timeout time.Duration `json:"timeout"`
}

type SolverConfig struct {
	BaseURL  string        `json:"base_url"`
	Timeout  time.Duration `json:"timeout"`
	Attempts int           `json:"attempts"`
}

// DispatchConfig enables scheduled reconciliation when both fields are set.
type DispatchConfig struct {
	// Schedule is a cron expression with a leading seconds field.
	Schedule      string   `json:"schedule"`
	Organizations []string `json:"organizations"`
}

type LoggingConfig struct {
	Level string `json:"level"`
}

// Load reads the optional configuration file at path, applies DISPATCH_
// environment overrides, fills defaults and validates the result.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		var parser koanf.Parser
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return Config{}, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func (c *Config) SetDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8080
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Geocoding.BaseURL == "" {
		c.Geocoding.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if c.Geocoding.UserAgent == "" {
		c.Geocoding.UserAgent = "fleetdispatch/1.0"
	}
	if c.Geocoding.Timeout == 0 {
		c.Geocoding.Timeout = 5 * time.Second
	}
	if c.Routing.BaseURL == "" {
		c.Routing.BaseURL = "http://localhost:5000"
	}
	if c.Routing.Timeout == 0 {
		c.Routing.Timeout = 5 * time.Second
	}
	if c.Solver.BaseURL == "" {
		c.Solver.BaseURL = "http://127.0.0.1:8000"
	}
	if c.Solver.Timeout == 0 {
		c.Solver.Timeout = 60 * time.Second
	}
	if c.Solver.Attempts == 0 {
		c.Solver.Attempts = 1
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

func (c Config) Validate() error {
	var problems []error

	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("http.port", c.HTTP.Port, 1, 65535))
	}
	if strings.TrimSpace(c.Database.Host) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("database.host"))
	}
	if strings.TrimSpace(c.Database.User) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("database.user"))
	}
	if strings.TrimSpace(c.Database.Name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("database.name"))
	}

	problems = append(problems,
		checkBaseURL("geocoding.base_url", c.Geocoding.BaseURL),
		checkBaseURL("routing.base_url", c.Routing.BaseURL),
		checkBaseURL("solver.base_url", c.Solver.BaseURL),
		checkTimeout("geocoding.timeout", c.Geocoding.Timeout),
		checkTimeout("routing.timeout", c.Routing.Timeout),
		checkTimeout("solver.timeout", c.Solver.Timeout),
	)
	if c.Solver.Attempts < 1 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("solver.attempts", c.Solver.Attempts, 1, "any"))
	}

	if c.Dispatch.Schedule != "" {
		if _, err := cronParser.Parse(c.Dispatch.Schedule); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("dispatch.schedule", err))
		}
	}
	if _, err := c.Dispatch.Scopes(); err != nil {
		problems = append(problems, err)
	}

	if _, err := c.Logging.SlogLevel(); err != nil {
		problems = append(problems, err)
	}

	return errors.Join(problems...)
}

// cronParser accepts the same six-field expressions as the scheduler.
var cronParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Scopes parses the configured organization ids.
func (c DispatchConfig) Scopes() ([]tenant.Scope, error) {
	scopes := make([]tenant.Scope, 0, len(c.Organizations))
	for _, raw := range c.Organizations {
		id, err := kernel.UUIDFromString(strings.TrimSpace(raw))
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("dispatch.organizations", err)
		}
		scope, err := tenant.NewScope(id)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("dispatch.organizations", err)
		}
		scopes = append(scopes, scope)
	}
	return scopes, nil
}

func (c LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("logging.level", err)
	}
	return level, nil
}

func checkBaseURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%q is not an absolute http(s) url", raw))
	}
	return nil
}

func checkTimeout(name string, d time.Duration) error {
	if d <= 0 {
		return errs.NewValueIsOutOfRangeError(name, d, "1ns", "any")
	}
	return nil
}
