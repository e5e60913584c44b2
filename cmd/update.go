package cmd

import (
	"github.com/spf13/cobra"

	"github.com/leocov-dev/pzpack/internal/shared"
	"github.com/leocov-dev/pzpack/modpack"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:     "update",
	Short:   "Clean an existing modpack and copy every configured mod into it again",
	Aliases: []string{"upgrade"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := shared.GetSettings("update")
		if err != nil {
			return err
		}
		if len(settings.Source) == 0 || len(settings.Destination) == 0 {
			return shared.HelpAndReturn(cmd)
		}

		opts, err := settings.GetOptions(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return copyResult(modpack.Update(opts))
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)

	addSourceFlag(updateCmd, "update")
	addDestinationFlags(updateCmd, "update")
}
