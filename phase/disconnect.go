package phase

import (
	"github.com/frognet/frogctl/config/node"
)

// Disconnect disconnects from the hosts
type Disconnect struct {
	GenericPhase
}

// Title for the phase
func (p *Disconnect) Title() string {
	return "Disconnect from hosts"
}

// Run the phase
func (p *Disconnect) Run() error {
	return p.parallelDo(p.Config.Spec.Hosts, func(h *node.Host) error {
		h.Disconnect()
		return nil
	})
}
