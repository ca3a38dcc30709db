package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/thomas-vilte/mateforge/internal/ai"
	"github.com/thomas-vilte/mateforge/internal/ai/gemini"
	"github.com/thomas-vilte/mateforge/internal/config"
	"github.com/thomas-vilte/mateforge/internal/i18n"
	"github.com/thomas-vilte/mateforge/internal/logger"
	"github.com/thomas-vilte/mateforge/internal/server"
	"github.com/thomas-vilte/mateforge/internal/services"
	"github.com/thomas-vilte/mateforge/internal/vcs/github"
	"github.com/thomas-vilte/mateforge/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app := newApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:        "mateforge",
		Usage:       "HTTP service that forges branches, commits, pull requests and issues on GitHub",
		Version:     version.Version,
		Description: "MateForge exposes GitHub's Git-data plumbing as a small JSON API: create a pull request adding a file in one call, manage issues, and post AI-generated fix suggestions.",
		Commands: []*cli.Command{
			newServeCommand(),
			newVersionCommand(),
		},
	}
}

func newServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP API",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging with source locations",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable info logging",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "env file to seed the process environment from",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "listen port, overrides PORT",
			},
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "response language (en or es), overrides LANGUAGE",
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			return runServe(ctx, serveOptions{
				debug:   command.Bool("debug"),
				verbose: command.Bool("verbose"),
				envFile: command.String("env-file"),
				port:    int(command.Int("port")),
				lang:    command.String("lang"),
			})
		},
	}
}

type serveOptions struct {
	debug   bool
	verbose bool
	envFile string
	port    int
	lang    string
}

func newVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the version and exit",
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Println(version.FullVersion())
			return nil
		},
	}
}

func runServe(ctx context.Context, opts serveOptions) error {
	// A missing env file is fine; the process environment wins anyway.
	if err := godotenv.Load(opts.envFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error loading env file %s: %w", opts.envFile, err)
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	if opts.port != 0 {
		if opts.port < 0 || opts.port > 65535 {
			return fmt.Errorf("invalid port %d", opts.port)
		}
		cfg.Port = opts.port
	}
	if opts.lang != "" {
		cfg.Language = config.NormalizeLanguage(opts.lang)
	}

	logger.Initialize(opts.debug, opts.verbose, cfg.LogFile)

	translations, err := i18n.NewTranslations(cfg.Language, "")
	if err != nil {
		return fmt.Errorf("error loading translations: %w", err)
	}

	factory, err := github.NewFactory(cfg.GitHubBaseURL, cfg.RemoteTimeout)
	if err != nil {
		return err
	}

	var generator ai.SuggestionGenerator
	if cfg.GeminiAPIKey == "" {
		logger.Warn(ctx, "GEMINI_API_KEY not set, /suggest-fix will report generation as unconfigured")
	} else if geminiGenerator, err := gemini.NewGenerator(ctx, cfg.GeminiAPIKey); err != nil {
		logger.Warn(ctx, "could not create the suggestion generator, /suggest-fix will be unavailable",
			"error", err)
	} else {
		generator = geminiGenerator
	}

	srv := server.New(
		server.WithConfig(cfg),
		server.WithTranslations(translations),
		server.WithPullRequestCreator(services.NewTransactionService(
			services.WithTransactionClientFactory(factory),
		)),
		server.WithIssueManager(services.NewIssueService(
			services.WithIssueClientFactory(factory),
		)),
		server.WithFixSuggester(services.NewSuggestionService(
			services.WithSuggestionClientFactory(factory),
			services.WithSuggestionGenerator(generator),
			services.WithSuggestionDefaultModel(cfg.GeminiModel),
		)),
		server.WithRepositoryManager(services.NewRepositoryService(
			services.WithRepositoryClientFactory(factory),
		)),
	)

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(runCtx, "starting mateforge",
		"version", version.FullVersion(),
		"port", cfg.Port,
		"language", cfg.Language)

	return srv.Run(runCtx)
}
