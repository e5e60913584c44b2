package settings

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leocov-dev/pzpack/cmd"
	"github.com/leocov-dev/pzpack/internal/shared"
)

// settingsCmd prints the configuration a modpack command would run with
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the resolved modpack settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := shared.GetSettings("settings")
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config:      %s\n", viper.GetString("config"))
		fmt.Fprintf(out, "name:        %s\n", settings.Name)
		fmt.Fprintf(out, "source:      %s\n", settings.Source)
		fmt.Fprintf(out, "destination: %s\n", settings.Destination)
		fmt.Fprintf(out, "layout:      %s\n", settings.Layout)
		fmt.Fprintf(out, "mod_ids:     %s\n", strings.Join(settings.ModIDs, ","))
		fmt.Fprintf(out, "ignore:      %s\n", strings.Join(settings.Ignore, ","))
		return nil
	},
}

func init() {
	cmd.Add(settingsCmd)
}
