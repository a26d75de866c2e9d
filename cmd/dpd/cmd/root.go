package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/calebcase/dpd/config"
	"github.com/calebcase/dpd/field"
)

type configKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dpd",
	Short: "Convert decimal64, decimal128 and int128 column values",
	Long: `dpd converts between the stored bytes of decimal64, decimal128 and
int128 columns and their display text.

Stored bytes are written and read as hex.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c := config.Default()

		path, _ := cmd.Flags().GetString("config")
		if path != "" {
			var err error

			c, err = config.Load(path)
			if err != nil {
				return err
			}
		}

		if cmd.Flags().Changed("byte-order") {
			c.ByteOrder, _ = cmd.Flags().GetString("byte-order")
		}

		err := c.Validate()
		if err != nil {
			return err
		}

		cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, c))

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringP("byte-order", "b", "big", "Byte order of stored values (big or little)")
}

// adapter returns the column adapter for the type abbreviation using the
// loaded configuration.
func adapter(cmd *cobra.Command, abbr string) (*field.Adapter, error) {
	t, ok := field.Types.Match(abbr)
	if !ok {
		return nil, field.Error.New("unknown type: %q (see dpd types)", abbr)
	}

	c, ok := cmd.Context().Value(configKey{}).(*config.Config)
	if !ok {
		c = config.Default()
	}

	s, err := c.Schema(t)
	if err != nil {
		return nil, err
	}

	return field.New(s)
}
