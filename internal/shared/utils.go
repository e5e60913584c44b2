package shared

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrReported marks a failure whose message has already been shown to the user
var ErrReported = errors.New("failure already reported")

func Exitf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
	os.Exit(1)
}

// Reported turns an already reported failure into the command's result.
// Outside of strict mode such failures still exit with status 0.
func Reported(err error) error {
	if !viper.GetBool("strict") {
		return nil
	}
	if err == nil {
		return ErrReported
	}
	return fmt.Errorf("%w: %w", ErrReported, err)
}

// HelpAndReturn prints the command's help when required settings are missing
func HelpAndReturn(cmd *cobra.Command) error {
	if err := cmd.Help(); err != nil {
		return err
	}
	return Reported(nil)
}
