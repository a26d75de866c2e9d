package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/dpd/field"
)

// typesCmd represents the types command
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the supported column types",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range field.Types {
			fmt.Fprintf(cmd.OutOrStdout(), "%-5s %-11s %2d bytes\n", t.Abbr, t.Name, t.Size)
		}
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
