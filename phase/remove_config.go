package phase

import (
	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/config"
	"github.com/frognet/frogctl/config/node"
)

// RemoveNodeConfig removes the node configuration written by apply
type RemoveNodeConfig struct {
	GenericPhase

	hosts node.Hosts
}

// Title for the phase
func (p *RemoveNodeConfig) Title() string {
	return "Remove node configuration"
}

// Prepare the phase
func (p *RemoveNodeConfig) Prepare(c *config.Config) error {
	p.Config = c
	p.hosts = p.Config.Spec.Hosts.Filter(func(h *node.Host) bool {
		return h.Reset
	})

	return nil
}

// ShouldRun is true when there are hosts flagged for reset
func (p *RemoveNodeConfig) ShouldRun() bool {
	return len(p.hosts) > 0
}

// Run the phase
func (p *RemoveNodeConfig) Run() error {
	return p.parallelDo(p.hosts, func(h *node.Host) error {
		paths := []string{
			h.Configurer.EnvFilePath(),
			h.Configurer.MapInterfacesPath(),
			h.Configurer.SysctlDropInPath(),
		}

		for _, path := range paths {
			if !h.Configurer.FileExist(h, path) {
				continue
			}
			log.Infof("%s: removing %s", h, path)
			if err := h.Configurer.DeleteFile(h, path); err != nil {
				return err
			}
			p.IncProp("removed")
		}

		h.Metadata.EnvFile = nil

		return nil
	})
}
