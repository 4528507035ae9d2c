package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/config"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/database/seeders"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/database"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/logger"
)

// ecommerce seed — populate the database with initial data.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger.Setup(cfg.Production())

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		client, err := database.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return err
		}
		defer client.Disconnect(context.Background()) //nolint:errcheck

		fmt.Println("Running seeders…")
		return seeders.Run(ctx, client.Database(cfg.MongoDB))
	},
}
