package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jiraclone/jiraclient/internal/common"
	"github.com/sethvargo/go-envconfig"
)

// Config holds runtime settings for the jiraclone CLI.
//
// RequestTimeout of zero means requests are bounded only by their context.
type Config struct {
	BaseURL        string        `env:"API_URL" validate:"required,http_url"`
	DBPath         string        `env:"CLIENT_DB" validate:"required"`
	LogLevel       string        `env:"LOG_LEVEL" validate:"oneof=trace debug info warn warning error"`
	LogFormat      string        `env:"LOG_FORMAT" validate:"oneof=text json"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT, default=0s" validate:"gte=0"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = common.DefaultBaseURL
	c.DBPath = "jiraclone.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.RequestTimeout = 0
}

// LoadConfig builds a Config from os.Args and the process environment.
func LoadConfig(ctx context.Context) (*Config, error) {
	return Load(ctx, os.Args[1:], envconfig.OsLookuper())
}

// Load applies defaults, the JSON file, the environment seen through lookup,
// and finally flags from args, then validates the result.
func Load(ctx context.Context, args []string, lookup envconfig.Lookuper) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(ctx, cfg, lookup); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseEnv(ctx context.Context, cfg *Config, lookup envconfig.Lookuper) error {
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:           cfg,
		Lookuper:         lookup,
		DefaultOverwrite: true,
	})
	if err != nil {
		return fmt.Errorf("config: environment: %w", err)
	}
	return nil
}

var validate = validator.New()

// Validate reports every invalid field in one error.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("config: %w", err)
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
}

func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "http_url":
		return fmt.Sprintf("%s must be an http(s) URL, got %q", field, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must not be negative", field)
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
