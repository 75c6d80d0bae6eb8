package phase

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/config/node"
	"github.com/frognet/frogctl/pkg/netaddr"
)

// ValidateHosts performs remote host validation
type ValidateHosts struct {
	GenericPhase
	machineids map[string]string
}

// Title for the phase
func (p *ValidateHosts) Title() string {
	return "Validate hosts"
}

// Run the phase
func (p *ValidateHosts) Run() error {
	p.machineids = make(map[string]string, len(p.Config.Spec.Hosts))
	for _, h := range p.Config.Spec.Hosts {
		if other, ok := p.machineids[h.Metadata.MachineID]; ok {
			return fmt.Errorf("%s: machine id %s is not unique: shared with %s", h, h.Metadata.MachineID, other)
		}
		p.machineids[h.Metadata.MachineID] = h.String()
	}

	return p.parallelDo(p.Config.Spec.Hosts, p.validatePrivilege, p.validateInterfaces)
}

func (p *ValidateHosts) validatePrivilege(h *node.Host) error {
	if err := h.Configurer.CheckPrivilege(h); err != nil {
		return fmt.Errorf("%s: %w", h, err)
	}
	return nil
}

// validateInterfaces checks that the interfaces the node is going to be
// configured with actually exist on the host
func (p *ValidateHosts) validateInterfaces(h *node.Host) error {
	output, err := h.Configurer.LinkList(h)
	if err != nil {
		return fmt.Errorf("%s: failed to list interfaces: %w", h, err)
	}

	names := netaddr.InterfaceNames(output)
	present := make(map[string]struct{}, len(names))
	for _, n := range names {
		present[n] = struct{}{}
	}

	for _, iface := range []string{h.Metadata.Uplink, h.APInterface} {
		if iface == "" {
			continue
		}
		if _, ok := present[iface]; !ok {
			return fmt.Errorf("%s: interface %s not found on host", h, iface)
		}
	}

	if h.Metadata.Uplink == h.APInterface {
		return fmt.Errorf("%s: uplink and access point interface are both %s", h, h.APInterface)
	}

	log.Infof("%s: interfaces validated", h)
	return nil
}
