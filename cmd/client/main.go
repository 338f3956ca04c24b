package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/secureshare/internal/client/api"
	"github.com/iudanet/secureshare/internal/client/auth"
	"github.com/iudanet/secureshare/internal/client/cli"
	"github.com/iudanet/secureshare/internal/client/countdown"
	"github.com/iudanet/secureshare/internal/client/files"
	"github.com/iudanet/secureshare/internal/client/iocli"
	"github.com/iudanet/secureshare/internal/client/security"
	"github.com/iudanet/secureshare/internal/client/sharing"
	"github.com/iudanet/secureshare/internal/client/storage/boltdb"
	"github.com/iudanet/secureshare/internal/client/storage/sqlite"
	"github.com/iudanet/secureshare/internal/config"
	"github.com/iudanet/secureshare/internal/logging"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("secureshare", flag.ContinueOnError)
	showVersion := fs.Bool("version", false, "Show version information")
	fs.Usage = func() { cli.PrintUsage(os.Stderr) }

	cfg, err := config.Load(fs, os.Args[1:], os.Getenv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *showVersion {
		printVersion()
		return nil
	}

	args := fs.Args()
	if len(args) == 0 {
		cli.PrintUsage(os.Stdout)
		return errors.New("missing command")
	}
	command := args[0]

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage для токена сессии
	sessions, err := boltdb.New(ctx, cfg.SessionDB)
	if err != nil {
		return fmt.Errorf("failed to open session database: %w", err)
	}
	defer func() {
		if err := sessions.Close(); err != nil {
			logger.Error("failed to close session database", "error", err)
		}
	}()

	// SQLite хранит ссылки на файлы между запусками
	links, err := sqlite.New(ctx, cfg.LinksDB)
	if err != nil {
		return fmt.Errorf("failed to open links database: %w", err)
	}
	defer func() {
		if err := links.Close(); err != nil {
			logger.Error("failed to close links database", "error", err)
		}
	}()

	client, err := api.NewClient(api.Config{
		Origin:     cfg.Origin,
		APIBaseURL: cfg.APIBaseURL,
		Timeout:    cfg.RequestTimeout,
	}, sessions, logger)
	if err != nil {
		return err
	}
	logger.Debug("api endpoint resolved", "base_url", client.BaseURL(), "origin", client.Origin())

	machine := auth.NewMachine(client, sessions, countdown.New(countdown.DefaultInterval), logger)
	defer machine.Close()
	client.SetOnUnauthorized(machine.SessionExpired)

	if err := machine.Restore(ctx); err != nil {
		return err
	}

	resolver, err := sharing.NewResolver(client, client.BaseURL(), client.Origin())
	if err != nil {
		return err
	}

	routes, err := cfg.Routes()
	if err != nil {
		return err
	}

	var app *cli.Cli
	engine := files.NewEngine(client, resolver, files.Options{
		Logger:       logger,
		Links:        links,
		DeleteRoutes: routes,
		Debounce:     cfg.Debounce,
		OnChange:     func(s files.State) { app.OnFilesChange(s) },
	})
	defer engine.Close()

	app = cli.New(cli.Deps{
		IO:       iocli.NewStdio(),
		Auth:     machine,
		Files:    engine,
		Security: security.NewService(client, logger),
		Logger:   logger,
		Share:    cfg.Share.Settings(),
		Wait:     cfg.Debounce + cfg.RequestTimeout,
	})

	if err := engine.SetShareSettings(cfg.Share.Settings()); err != nil {
		return err
	}

	return app.Run(ctx, command, args[1:])
}

func printVersion() {
	fmt.Printf("SecureShare Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
