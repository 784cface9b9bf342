package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-cv/internal/canvas"
	"github.com/jonathan/portfolio-cv/internal/config"
	"github.com/jonathan/portfolio-cv/internal/document"
	"github.com/jonathan/portfolio-cv/internal/logger"
	"github.com/jonathan/portfolio-cv/internal/server"
	"github.com/jonathan/portfolio-cv/internal/server/ratelimit"
	"github.com/jonathan/portfolio-cv/internal/storage"
)

var (
	servePort     int
	serveData     string
	serveText     string
	serveOrigins  []string
	serveStoreDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that builds documents on request. Set DATABASE_URL to
archive built documents, and CV_MINIO_* (or --store-dir) to keep their bytes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVarP(&serveData, "data", "d", "", "Path to base model (JSON or YAML); defaults to the built-in sample")
	serveCmd.Flags().StringVarP(&serveText, "text", "t", "", "Path to a plain-text CV to import instead of --data")
	serveCmd.Flags().StringSliceVar(&serveOrigins, "origins", nil, "Allowed CORS origins (default any)")
	serveCmd.Flags().StringVar(&serveStoreDir, "store-dir", "", "Keep document bytes in this directory when no object storage is configured")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	flags := config.Config{
		Data:           serveData,
		Text:           serveText,
		Port:           servePort,
		AllowedOrigins: serveOrigins,
	}
	cfg := flags.MergeWithDefaults(fileConfig)
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	base, err := loadBase(cfg.Data, cfg.Text)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	deps := server.Deps{
		Base:    base,
		Builder: document.NewBuilder(canvas.NewFPDFProvider(), document.WithLogger(logger.Logger)),
		Logger:  logger.Logger,
	}

	switch {
	case cfg.MinioEnabled():
		store, err := storage.NewMinioStore(ctx, cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to object storage: %w", err)
		}
		deps.Store = store
	case serveStoreDir != "":
		deps.Store = storage.NewLocalStore(serveStoreDir)
	}

	if cfg.DatabaseURL != "" {
		database, err := openArchive(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		deps.Archive = database
	} else {
		logger.Info().Msgf("%s not set, document archive disabled", config.EnvDatabaseURL)
	}

	srv, err := server.New(server.Config{
		Port:           cfg.Port,
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimit:      ratelimit.LoadConfig(),
	}, deps)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
