package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jiraclone/jiraclient/internal/flagx"
)

// jsonConfig is the on-disk shape. Empty fields leave the current value.
type jsonConfig struct {
	BaseURL        string `json:"api_url"`
	DBPath         string `json:"client_db"`
	LogLevel       string `json:"log_level"`
	LogFormat      string `json:"log_format"`
	RequestTimeout string `json:"request_timeout"`
}

// parseJSON overlays cfg with the file named by -c/-config, if any.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	overlay(&cfg.BaseURL, jc.BaseURL)
	overlay(&cfg.DBPath, jc.DBPath)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)

	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("config: request_timeout: %w", err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
