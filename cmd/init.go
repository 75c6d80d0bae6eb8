package cmd

import (
	"os"

	"github.com/creasty/defaults"
	"github.com/k0sproject/rig"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v2"

	"github.com/frognet/frogctl/config"
	"github.com/frognet/frogctl/config/node"
)

var initCommand = &cli.Command{
	Name:  "init",
	Usage: "Create a configuration template",
	Action: func(ctx *cli.Context) error {
		cfg := config.Config{
			APIVersion: config.APIVersion,
			Kind:       "node",
			Metadata:   &config.Metadata{Name: "frognet-node"},
			Spec: &node.Spec{
				Hosts: node.Hosts{
					&node.Host{
						Connection: rig.Connection{
							SSH: &rig.SSH{
								Address: "10.0.0.1",
							},
						},
					},
				},
				Network: &node.Network{
					Domain: "node.frognet.io",
				},
			},
		}

		if err := defaults.Set(&cfg); err != nil {
			return err
		}

		encoder := yaml.NewEncoder(os.Stdout)
		return encoder.Encode(&cfg)
	},
}
