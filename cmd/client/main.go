package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jiraclone/jiraclient/internal/buildinfo"
	"github.com/jiraclone/jiraclient/internal/client/api"
	"github.com/jiraclone/jiraclient/internal/client/cli"
	"github.com/jiraclone/jiraclient/internal/client/config"
	"github.com/jiraclone/jiraclient/internal/client/notify"
	"github.com/jiraclone/jiraclient/internal/client/repositories/metadata"
	"github.com/jiraclone/jiraclient/internal/client/services"
	"github.com/jiraclone/jiraclient/internal/client/session"
	"github.com/jiraclone/jiraclient/internal/client/storage"
	"github.com/jiraclone/jiraclient/internal/logging"
	"golang.org/x/term"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig(ctx)
	if err != nil {
		return err
	}

	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	db, err := storage.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", cfg.DBPath, "error", err)
		return err
	}
	defer db.Close()

	sm := session.NewManager(metadata.NewSQLiteRepository(db))
	gate := cli.NewLoginGate()

	// Without a terminal, notifications go to the log instead of stdout.
	var notifier notify.Notifier = notify.NewTerminal(os.Stdout)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		notifier = notify.NewLog(log)
	}

	c, err := api.NewClient(cfg.BaseURL, sm,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithNotifier(notifier),
		api.WithNavigator(gate),
		api.WithLogger(log),
	)
	if err != nil {
		return err
	}
	client := api.New(c)
	log.Debug(ctx, "client configured", "base_url", c.BaseURL(), "db", cfg.DBPath)

	app := cli.NewApp(cli.Deps{
		API:     client,
		Auth:    services.NewAuthState(client.Auth, sm, log),
		Session: sm,
		Gate:    gate,
		Logger:  log,
	})
	app.Run(ctx)
	return nil
}
