package main

import (
	"github.com/spf13/cobra"

	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/config"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/internal/server"
)

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return server.Start(cfg)
}

// ecommerce serve — start the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}
