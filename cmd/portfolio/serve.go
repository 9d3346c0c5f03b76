package main

import (
	"github.com/spf13/cobra"

	"github.com/jdoe/portfolio-backend/internal/notify"
	"github.com/jdoe/portfolio-backend/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, err := openStore(cmd.Context(), cfg, cfg.Backend)
		if err != nil {
			return err
		}
		defer st.Close()

		return server.New(cfg, st, notify.FromConfig(cfg)).ListenAndServe()
	},
}
