package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/frognet/frogctl/action"
	"github.com/frognet/frogctl/phase"
)

var applyCommand = &cli.Command{
	Name:  "apply",
	Usage: "Provision the configured hosts as FrogNet nodes",
	Flags: []cli.Flag{
		configFlag,
		&cli.BoolFlag{
			Name:  "no-reboot",
			Usage: "Do not reboot the hosts after the install",
		},
		&cli.BoolFlag{
			Name:  "no-wait",
			Usage: "Do not wait for rebooted hosts to come back up",
		},
		&cli.BoolFlag{
			Name:  "force",
			Usage: "Attempt a forced installation in case of certain failures",
		},
		&cli.BoolFlag{
			Name:   "on-reboot",
			Usage:  "Continue an installation after the post-install reboot",
			Hidden: true,
		},
		debugFlag,
		traceFlag,
		analyticsFlag,
	},
	Before: actions(initLogging, initConfig, initManager, initAnalytics, displayCopyright),
	After:  actions(closeAnalytics),
	Action: func(ctx *cli.Context) error {
		manager := ctx.Context.Value(ctxManagerKey{}).(*phase.Manager)

		if ctx.Bool("on-reboot") {
			return action.Resume{Manager: manager}.Run()
		}

		applyAction := action.Apply{
			Manager:  manager,
			Force:    ctx.Bool("force"),
			NoReboot: ctx.Bool("no-reboot"),
			NoWait:   ctx.Bool("no-wait"),
		}

		if err := applyAction.Run(); err != nil {
			return fmt.Errorf("apply failed - log file saved to %s: %w", ctx.Context.Value(ctxLogFileKey{}).(string), err)
		}

		return nil
	},
}
