package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leocov-dev/pzpack/internal/shared"
	"github.com/leocov-dev/pzpack/modpack"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new modpack",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := shared.GetSettings("create")
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
		return copyResult(modpack.Create(opts))
	},
}

func init() {
	rootCmd.AddCommand(createCmd)

	addSourceFlag(createCmd, "create")
	addDestinationFlags(createCmd, "create")
}

func addSourceFlag(cmd *cobra.Command, prefix string) {
	cmd.Flags().String("source", "", "The directory holding the source mods")
	_ = viper.BindPFlag(prefix+".source", cmd.Flags().Lookup("source"))
}

func addDestinationFlags(cmd *cobra.Command, prefix string) {
	cmd.Flags().String("destination", "", "The directory the modpack lives in")
	_ = viper.BindPFlag(prefix+".destination", cmd.Flags().Lookup("destination"))
	cmd.Flags().String("name", "", "The name of the modpack")
	_ = viper.BindPFlag(prefix+".name", cmd.Flags().Lookup("name"))
}

// copyResult maps the outcome of a copying operation to the command's error
func copyResult(report *modpack.CopyReport, err error) error {
	if err != nil {
		if isPrecondition(err) {
			return shared.Reported(err)
		}
		return err
	}
	if report.HasErrors() {
		return shared.Reported(nil)
	}
	return nil
}

func isPrecondition(err error) bool {
	return errors.Is(err, modpack.ErrModpackExists) || errors.Is(err, modpack.ErrModpackNotFound)
}
