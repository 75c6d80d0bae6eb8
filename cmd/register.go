package cmd

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/frognet/frogctl/action"
	"github.com/frognet/frogctl/integration/frogweb"
)

var registerCommand = &cli.Command{
	Name:  "register",
	Usage: "Register this node with the FrogNet backend",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "email",
			Usage: "Operator email address",
		},
		&cli.StringFlag{
			Name:  "domain",
			Usage: "FrogNet domain the node serves",
		},
		&cli.StringFlag{
			Name:   "endpoint",
			Usage:  "Registration endpoint",
			Value:  frogweb.DefaultEndpoint,
			Hidden: true,
		},
		debugFlag,
		traceFlag,
	},
	Before: actions(initLogging),
	Action: func(ctx *cli.Context) error {
		registerAction := action.Register{
			Email:    ctx.String("email"),
			Domain:   ctx.String("domain"),
			Endpoint: ctx.String("endpoint"),
			Stdout:   os.Stdout,
		}

		return registerAction.Run()
	},
}
