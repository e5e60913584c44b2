package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leocov-dev/pzpack/config"
	"github.com/leocov-dev/pzpack/internal/logging"
	"github.com/leocov-dev/pzpack/internal/shared"
)

var verbosity int

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "pzpack",
	Short:         "A command line tool for assembling Project Zomboid modpacks",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.SetupLogger(verbosity)
		logging.LogCommand(cmd.CommandPath(), args)
		return shared.LoadConfigFile()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = config.Version
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, shared.ErrReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func Add(newCommand *cobra.Command) {
	rootCmd.AddCommand(newCommand)
}

// Root exposes the root command to packages that register subcommands
func Root() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().String("config", "config.ini", "The configuration file (.ini or .toml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	rootCmd.PersistentFlags().String("layout", "", "The modpack layout: \"mods\" (source/<id>/mods, mod.info) or \"workshop\" (source/<id>, workshop.txt)")
	_ = viper.BindPFlag("layout", rootCmd.PersistentFlags().Lookup("layout"))
	rootCmd.PersistentFlags().Bool("strict", false, "Exit with a non-zero status when a modpack operation reports errors")
	_ = viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase diagnostic output (repeat for more)")
}
