package cmd

import (
	"github.com/spf13/cobra"

	"github.com/leocov-dev/pzpack/internal/shared"
	"github.com/leocov-dev/pzpack/modpack"
)

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Empty the content directory of a modpack. WARNING: removes every mod in the pack!",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := shared.GetSettings("clean")
		if err != nil {
			return err
		}
		if len(settings.Destination) == 0 {
			return shared.HelpAndReturn(cmd)
		}

		opts, err := settings.GetOptions(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		err = modpack.Clean(opts)
		if err != nil && isPrecondition(err) {
			return shared.Reported(err)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	addDestinationFlags(cleanCmd, "clean")
}
