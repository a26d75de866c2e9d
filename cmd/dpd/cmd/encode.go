package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <type> <text>",
	Short: "Show the stored bytes for text",
	Long: `Encode text as a column value and print the stored bytes as hex.

Example:
  dpd encode d128 3.14
  dpd encode i128 -170141183460469231731687303715884105728`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := adapter(cmd, args[0])
		if err != nil {
			return err
		}

		raw, err := a.Store(args[1])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(raw))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
