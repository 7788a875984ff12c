package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/jiraclone/jiraclient/internal/flagx"
)

// parseFlags overlays cfg with -a, -d and -l. Other arguments, including
// -c/-config, are left to their own loaders.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("jiraclone", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "backend base URL")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path to the local database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.Pick(args, "-a", "-d", "-l")); err != nil {
		return fmt.Errorf("config: flags: %w", err)
	}
	return nil
}
