package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/har-tools/har2openapi/internal/app/configuration"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the conversion API server",
	Long: `Starts an HTTP server exposing POST /convert (HAR in, OpenAPI out),
GET /ready and GET /metrics. Settings come from the environment:
SERVER_ADDRESS, DOC_TITLE, DOC_VERSION, DOC_SERVER_URL, DOC_BEARER_AUTH
and DOC_API_KEY_HEADER.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := configuration.NewFromEnv()
		if err != nil {
			return err
		}

		log.Infof("serving conversion API on %s", config.ServerAddress)
		server := configuration.ServeAPI(config)

		c := make(chan os.Signal, 2)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
