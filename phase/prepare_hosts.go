package phase

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/config/node"
)

// PrepareHosts installs the packages the node needs
type PrepareHosts struct {
	GenericPhase
}

// Title for the phase
func (p *PrepareHosts) Title() string {
	return "Prepare hosts"
}

// Run the phase
func (p *PrepareHosts) Run() error {
	return p.parallelDo(p.Config.Spec.Hosts, p.preparePackages)
}

func (p *PrepareHosts) preparePackages(h *node.Host) error {
	pkgs := p.Config.Spec.AllPackages()

	log.Infof("%s: installing packages (%s)", h, strings.Join(pkgs, ", "))
	if err := h.Configurer.InstallPackage(h, pkgs...); err != nil {
		return fmt.Errorf("failed to install packages: %w", err)
	}

	return nil
}
