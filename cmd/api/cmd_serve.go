package main

import (
	"os/signal"
	"syscall"

	"restaurant/internal/infra/db"
	"restaurant/internal/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, log, gdb, err := boot(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			log.WithError(err).Warn("close db")
		}
	}()

	// スキーマは起動時に揃える
	if err := db.Migrate(ctx, gdb); err != nil {
		return err
	}

	deps, err := buildServerDeps(ctx, cfg, log, gdb)
	if err != nil {
		return err
	}
	return server.Start(ctx, server.New(deps), cfg, log)
}
