package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ctmerge/ctmerge/database"
	"github.com/ctmerge/ctmerge/ingest"
	"github.com/ctmerge/ctmerge/logger"
)

var ingestCMD = &cobra.Command{
	Use:   "ingest [csv-in]",
	Short: "Merge a CSV export and store the result in the database",
	Long: `Read a trade list CSV export, fold consecutive records belonging to the
same trade group, and store the merged rows in postgres for the stats API.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.New()

		log.Info().Msg("initializing database")
		if err := database.InitDB(); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize database")
		}

		processor := ingest.NewProcessor(log)
		count, err := processor.ProcessToDB(args[0], database.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("ingest failed")
		}

		fmt.Printf("Stored %d records.\n", count)
	},
}

func init() {
	rootCMD.AddCommand(ingestCMD)
}
