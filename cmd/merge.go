package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ctmerge/ctmerge/ingest"
	"github.com/ctmerge/ctmerge/logger"
)

var mergeCMD = &cobra.Command{
	Use:   "merge [csv-in] [csv-out]",
	Short: "Merge same-day trades from a CSV export into a new CSV file",
	Long: `Read a trade list CSV export, fold consecutive records belonging to the
same trade group, and write the merged rows to the output file. The header
row is reproduced verbatim.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.New()

		processor := ingest.NewProcessor(log)
		count, err := processor.ProcessFile(args[0], args[1])
		if err != nil {
			log.Fatal().Err(err).Msg("merge failed")
		}

		fmt.Printf("Exported %d records.\n", count)
	},
}

func init() {
	rootCMD.AddCommand(mergeCMD)
}
