package phase

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/config/node"
	"github.com/frognet/frogctl/integration/frogweb"
	"github.com/frognet/frogctl/version"
)

// RegisterNode reports the new node to the FrogNet backend. Strictly
// opt-in, the phase runs only when registration has been enabled in the
// config.
type RegisterNode struct {
	GenericPhase
}

// Title for the phase
func (p *RegisterNode) Title() string {
	return "Register node"
}

// ShouldRun is true when registration is enabled
func (p *RegisterNode) ShouldRun() bool {
	return p.Config.Spec.Registration.Enabled
}

// Run the phase
func (p *RegisterNode) Run() error {
	reg := p.Config.Spec.Registration
	domain := p.Config.Spec.Network.Domain

	return p.Config.Spec.Hosts.Each(func(h *node.Host) error {
		result, err := frogweb.Register(reg.EndpointOrDefault(), h.Metadata.MachineID, reg.Email, domain, version.Version)
		if err != nil {
			return fmt.Errorf("%s: registration failed: %w", h, err)
		}
		log.Infof("%s: registered with %s (%s)", h, reg.EndpointOrDefault(), result.Status)
		return nil
	})
}
