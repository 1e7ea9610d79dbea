package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wook89/movie-search/internal/instance"
)

type statusReport struct {
	Running      bool   `json:"running"`
	PID          int    `json:"pid,omitempty"`
	Bind         string `json:"bind"`
	LockPath     string `json:"lock_path"`
	ConfigPath   string `json:"config_path"`
	TMDBKeyReady bool   `json:"tmdb_key_configured"`
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether a moviesearch server is running",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			status, err := instance.Inspect(cfg.Server.StateDir)
			if err != nil {
				return fmt.Errorf("inspect instance lock: %w", err)
			}
			report := statusReport{
				Running:      status.Running,
				PID:          status.PID,
				Bind:         cfg.Server.Bind,
				LockPath:     status.LockPath,
				ConfigPath:   ctx.configPath,
				TMDBKeyReady: cfg.HasAPIKey(),
			}
			if asJSON {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderStatus(statusLines(report), shouldColorize(out)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func statusLines(report statusReport) []statusLine {
	server := statusLine{label: "server", health: healthAttention, value: "not running"}
	if report.Running {
		server.health, server.value = healthGood, "running"
		if report.PID > 0 {
			server.value += " (pid " + strconv.Itoa(report.PID) + ")"
		}
	}
	key := statusLine{label: "tmdb api key", health: healthAttention, value: "missing"}
	if report.TMDBKeyReady {
		key.health, key.value = healthGood, "configured"
	}
	return []statusLine{
		server,
		{label: "bind", value: report.Bind},
		key,
		{label: "lock", value: report.LockPath},
		{label: "config", value: report.ConfigPath},
	}
}
