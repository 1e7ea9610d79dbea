package main

import (
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wook89/movie-search/internal/catalog"
	"github.com/wook89/movie-search/internal/instance"
	"github.com/wook89/movie-search/internal/logging"
	"github.com/wook89/movie-search/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string
	var logLevel string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if value := strings.TrimSpace(bind); value != "" {
				cfg.Server.Bind = value
			}

			logger, err := logging.NewFromConfig(cfg, logLevel)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			lock, err := instance.Acquire(cfg.Server.StateDir)
			if err != nil {
				if errors.Is(err, instance.ErrAlreadyRunning) {
					return fmt.Errorf("%w (state dir %s)", err, cfg.Server.StateDir)
				}
				return err
			}
			defer func() {
				if err := lock.Release(); err != nil {
					logger.Warn("release instance lock failed", logging.Error(err))
				}
			}()

			cat, err := catalog.NewFromConfig(cfg, logger)
			if err != nil {
				return err
			}
			if !cat.Configured() {
				logger.Warn("tmdb api key not configured; catalog requests will fail",
					logging.String("hint", "set TMDB_API_KEY or tmdb.api_key"),
				)
			}

			srv, err := server.New(cfg, cat, logger)
			if err != nil {
				return err
			}

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			logger.Info("moviesearch starting",
				logging.String("bind", cfg.Server.Bind),
				logging.String("config", ctx.configPath),
				logging.String("lock", lock.Path()),
			)
			return srv.Run(signalCtx)
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (overrides server.bind)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	return cmd
}
