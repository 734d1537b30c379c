package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jsphweid/ragakey/interval"
	"github.com/jsphweid/ragakey/report"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Lists the accepted interval symbols and base pitch names",
	Run: func(cmd *cobra.Command, args []string) {
		report.New(cmd.OutOrStdout()).Catalog(interval.Default().Symbols())
	},
}
