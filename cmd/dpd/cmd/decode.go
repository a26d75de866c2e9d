package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <type> <hex>",
	Short: "Show the text for stored bytes",
	Long: `Decode the stored bytes of a column value and print its text.

Example:
  dpd decode d64 2230000000000194
  dpd decode --byte-order little i128 ffffffffffffffffffffffffffffffff`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := adapter(cmd, args[0])
		if err != nil {
			return err
		}

		raw, err := hex.DecodeString(strings.TrimPrefix(args[1], "0x"))
		if err != nil {
			return err
		}

		text, err := a.Display(raw)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), text)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
