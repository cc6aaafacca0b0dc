package cmd

import "github.com/spf13/cobra"

var cachedCmd = &cobra.Command{
	Use:   "cached",
	Short: "Rebuild output.txt from cached cards only, without network access",
	Long: `Runs the same pass as the root command but never calls the catalog.
Cards missing from the cache are reported as failed and left out.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChains(cmd.Context(), cmd.OutOrStdout(), true)
	},
}

func init() {
	rootCmd.AddCommand(cachedCmd)
}
