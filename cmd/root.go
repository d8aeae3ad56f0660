package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCMD = &cobra.Command{
	Use:   "ctmerge",
	Short: "Trade history day-merge tool",
	Long: `A CLI application for merging CoinTracking trade history exports.
Consecutive records with the same type, currency pair, fee currency,
exchange and calendar date are folded into one record with summed amounts,
which is useful for reporting margin trades per day instead of per fill.`,
}

func Execute() {
	err := rootCMD.Execute()
	if err != nil {
		os.Exit(1)
	}
}
