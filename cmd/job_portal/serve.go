package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-portal/internal/config"
	"github.com/jonathan/job-portal/internal/lifecycle"
	"github.com/jonathan/job-portal/internal/logging"
	"github.com/jonathan/job-portal/internal/mail"
	"github.com/jonathan/job-portal/internal/matching"
	"github.com/jonathan/job-portal/internal/notification"
	"github.com/jonathan/job-portal/internal/server"
	"github.com/jonathan/job-portal/internal/store"
)

var (
	serveConfigPath string
	servePort       int
	serveInMemory   bool
	serveJSONLog    bool
	serveDebug      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the matching and application lifecycle endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveInMemory, "in-memory", false, "Use the in-memory store instead of PostgreSQL")
	serveCmd.Flags().BoolVar(&serveJSONLog, "json-log", false, "Emit JSON logs")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadServeConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.JSONLog, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var st store.Store
	if cfg.InMemory {
		logger.Info("using in-memory store")
		st = store.NewMemoryStore()
	} else {
		pg, err := store.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pg.Close()
		st = pg
	}

	dispatcher := notification.NewDispatcher(mail.NewConsoleSender(logger), cfg.MailFrom)
	engine := lifecycle.NewEngine(st, dispatcher, logger)
	ranker := matching.NewRanker(matching.NewScorer())

	srv := server.New(server.Config{Port: cfg.Port}, st, engine, ranker, logger)
	return srv.Start()
}

// loadServeConfig merges config file, environment, flags, and defaults.
func loadServeConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.Load(serveConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveInMemory {
		cfg.InMemory = true
	}
	if serveJSONLog {
		cfg.JSONLog = true
	}
	if serveDebug {
		cfg.Debug = true
	}

	cfg.FromEnv()
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
