package cmd

import (
	"github.com/spf13/cobra"

	"connect4/experiments"
)

var experimentOut string

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Run the search-budget strength experiment and write CSV results",
	RunE: func(cmd *cobra.Command, args []string) error {
		return experiments.RunBudgetExperiment(experimentOut)
	},
}

func init() {
	experimentCmd.Flags().StringVar(&experimentOut, "out", "results", "output directory for CSV records")
	rootCmd.AddCommand(experimentCmd)
}
