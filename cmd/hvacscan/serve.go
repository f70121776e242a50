package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"hvacscan/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if !verbose {
			gin.SetMode(gin.ReleaseMode)
		}
		db := openDB()
		defer db.Close()

		addr := cfg.HTTPAddr
		if serveAddr != "" {
			addr = serveAddr
		}
		must(server.New(db, cfg, logger).Run(addr))
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default $HTTP_ADDR)")
}
