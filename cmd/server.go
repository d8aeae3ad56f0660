package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ctmerge/ctmerge/api"
	"github.com/ctmerge/ctmerge/database"
	"github.com/ctmerge/ctmerge/logger"
)

var serverCMD = &cobra.Command{
	Use:   "server",
	Short: "Start the API server",
	Long:  `Start the HTTP API server to serve merged trade statistics.`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.New()

		log.Info().Msg("initializing database")
		if err := database.InitDB(); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize database")
		}

		r := api.SetupRoutes()

		port := ":8080"
		log.Info().Str("port", port).Msg("starting server")
		if err := r.Run(port); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	},
}

func init() {
	rootCMD.AddCommand(serverCMD)
}
