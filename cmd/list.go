package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leocov-dev/pzpack/internal/shared"
	"github.com/leocov-dev/pzpack/modpack"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configured mods and the current contents of the modpack",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := shared.GetSettings("list")
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
		status, err := modpack.Inspect(opts)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Configured mods (%s layout):\n", settings.Layout)
		for _, mod := range status.Mods {
			if mod.Found {
				fmt.Fprintf(out, "  %s\n", mod.ModID)
			} else {
				fmt.Fprintf(out, "  %s (missing: %s)\n", mod.ModID, mod.Path)
			}
		}

		if !status.Exists {
			fmt.Fprintf(out, "Modpack %s has not been created yet.\n", status.Root)
			return nil
		}
		if viper.GetBool("list.contents") {
			fmt.Fprintf(out, "Contents of %s:\n", status.ContentDir)
			for _, name := range status.Contents {
				fmt.Fprintf(out, "  %s\n", name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	addSourceFlag(listCmd, "list")
	addDestinationFlags(listCmd, "list")
	listCmd.Flags().BoolP("contents", "c", false, "Also print the entries of the content directory")
	_ = viper.BindPFlag("list.contents", listCmd.Flags().Lookup("contents"))
}
