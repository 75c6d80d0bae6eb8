package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/frognet/frogctl/action"
	"github.com/frognet/frogctl/phase"
)

var resumeCommand = &cli.Command{
	Name:  "resume",
	Usage: "Continue an installation after the post-install reboot",
	Flags: []cli.Flag{
		configFlag,
		debugFlag,
		traceFlag,
		analyticsFlag,
	},
	Before: actions(initLogging, initConfig, initManager, initAnalytics),
	After:  actions(closeAnalytics),
	Action: func(ctx *cli.Context) error {
		resumeAction := action.Resume{
			Manager: ctx.Context.Value(ctxManagerKey{}).(*phase.Manager),
		}

		if err := resumeAction.Run(); err != nil {
			return fmt.Errorf("resume failed - log file saved to %s: %w", ctx.Context.Value(ctxLogFileKey{}).(string), err)
		}

		return nil
	},
}
