package cmd

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/frognet/frogctl/action"
	"github.com/frognet/frogctl/phase"
)

var resetCommand = &cli.Command{
	Name:  "reset",
	Usage: "Remove the FrogNet configuration from the hosts",
	Flags: []cli.Flag{
		configFlag,
		debugFlag,
		traceFlag,
		analyticsFlag,
		&cli.BoolFlag{
			Name:    "force",
			Usage:   "Don't ask for confirmation",
			Aliases: []string{"f"},
		},
	},
	Before: actions(initLogging, initConfig, initManager, initAnalytics, displayCopyright),
	After:  actions(closeAnalytics),
	Action: func(ctx *cli.Context) error {
		resetAction := action.Reset{
			Manager: ctx.Context.Value(ctxManagerKey{}).(*phase.Manager),
			Stdout:  os.Stdout,
			Force:   ctx.Bool("force"),
		}

		return resetAction.Run()
	},
}
