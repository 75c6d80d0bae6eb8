package phase

import (
	"fmt"

	"github.com/k0sproject/version"
	log "github.com/sirupsen/logrus"

	frogver "github.com/frognet/frogctl/version"
	"github.com/frognet/frogctl/config/node"
)

// ValidateState refuses to install an older version over a newer existing
// installation
type ValidateState struct {
	GenericPhase

	// Force skips the downgrade check
	Force bool

	hosts node.Hosts
}

// Title for the phase
func (p *ValidateState) Title() string {
	return "Validate existing installations"
}

// ShouldRun is true when any host carries a previous installation
func (p *ValidateState) ShouldRun() bool {
	p.hosts = p.Config.Spec.Hosts.Filter(func(h *node.Host) bool {
		return h.Installed()
	})
	return len(p.hosts) > 0
}

// Run the phase
func (p *ValidateState) Run() error {
	return p.hosts.Each(func(h *node.Host) error {
		installed, err := version.NewVersion(h.Metadata.InstalledVersion)
		if err != nil {
			log.Warnf("%s: can't parse installed version %q, proceeding", h, h.Metadata.InstalledVersion)
			return nil
		}

		current, err := version.NewVersion(frogver.Version)
		if err != nil {
			return nil
		}

		if current.LessThan(installed) {
			if p.Force {
				log.Warnf("%s: downgrading from %s to %s because --force given", h, installed, current)
				p.IncProp("forced-downgrade")
				return nil
			}
			return fmt.Errorf("%s: host was installed with a newer version (%s > %s), use --force to downgrade", h, installed, current)
		}

		return nil
	})
}
