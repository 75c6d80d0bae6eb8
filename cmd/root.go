package cmd

import (
	"github.com/urfave/cli/v2"
)

// App is the main urfave/cli.App for frogctl
var App = &cli.App{
	Name:  "frogctl",
	Usage: "FrogNet node provisioning tool",
	Flags: []cli.Flag{
		debugFlag,
		traceFlag,
	},
	Commands: []*cli.Command{
		versionCommand,
		initCommand,
		applyCommand,
		resumeCommand,
		resetCommand,
		registerCommand,
		completionCommand,
	},
	EnableBashCompletion: true,
}
