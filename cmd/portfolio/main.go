// Package main provides the portfolio backend CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jdoe/portfolio-backend/internal/config"
	"github.com/jdoe/portfolio-backend/internal/store"
)

// configFile is set by the --config flag.
var configFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Backend for the portfolio website",
	Long: `Portfolio serves the REST API behind the portfolio website: public
content endpoints, the admin mutation surface, and the contact inbox.
Content lives in one of three storage backends (sqlite, flat JSON files,
or MongoDB), selectable in configuration.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: config.yaml in the working directory)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadConfig() (*config.Config, error) {
	return config.Load(configFile)
}

func openStore(ctx context.Context, cfg *config.Config, backend string) (store.Store, error) {
	return store.Open(ctx, store.Options{
		Backend:       backend,
		SQLitePath:    cfg.SQLitePath,
		DataDir:       cfg.DataDir,
		MongoURI:      cfg.MongoURI,
		MongoDatabase: cfg.MongoDatabase,
	})
}
