package main

import (
	"github.com/leocov-dev/pzpack/cmd"
	"github.com/leocov-dev/pzpack/config"
	_ "github.com/leocov-dev/pzpack/internal/commands/settings"
	_ "github.com/leocov-dev/pzpack/internal/commands/utils"
)

var Version string

func main() {
	config.SetVersion(Version)
	cmd.Execute()
}
