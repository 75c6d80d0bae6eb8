package phase

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/config/node"
)

const forwardingDropIn = "net.ipv4.ip_forward=1\n"

// EnableForwarding turns on IPv4 forwarding, persisted over reboots
type EnableForwarding struct {
	GenericPhase
}

// Title for the phase
func (p *EnableForwarding) Title() string {
	return "Enable IP forwarding"
}

// ShouldRun is true unless forwarding has been disabled in the config
func (p *EnableForwarding) ShouldRun() bool {
	return p.Config.Spec.Network.ForwardingEnabled()
}

// Run the phase
func (p *EnableForwarding) Run() error {
	return p.parallelDo(p.Config.Spec.Hosts, func(h *node.Host) error {
		path := h.Configurer.SysctlDropInPath()
		log.Infof("%s: writing %s", h, path)
		if err := h.Configurer.WriteFile(h, path, forwardingDropIn, "0644"); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		if err := h.Configurer.Sysctl(h, "net.ipv4.ip_forward", "1"); err != nil {
			return fmt.Errorf("failed to enable forwarding: %w", err)
		}

		return nil
	})
}
