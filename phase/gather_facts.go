package phase

import (
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/config/node"
	"github.com/frognet/frogctl/pkg/envfile"
	"github.com/frognet/frogctl/pkg/netaddr"
)

// GatherFacts gathers information about the hosts
type GatherFacts struct {
	GenericPhase
}

// Title for the phase
func (p *GatherFacts) Title() string {
	return "Gather host facts"
}

// Run the phase
func (p *GatherFacts) Run() error {
	return p.parallelDo(p.Config.Spec.Hosts, p.investigateHost)
}

func (p *GatherFacts) investigateHost(h *node.Host) error {
	log.Infof("%s: gathering host facts", h)

	arch, err := h.Configurer.Arch(h)
	if err != nil {
		return fmt.Errorf("failed to get host architecture: %w", err)
	}
	h.Metadata.Arch = arch
	p.IncProp(arch)

	h.Metadata.Hostname = h.Configurer.Hostname(h)

	id, err := h.Configurer.MachineID(h)
	if err != nil {
		return fmt.Errorf("failed to get machine id: %w", err)
	}
	h.Metadata.MachineID = id

	if err := p.investigateUplink(h); err != nil {
		return err
	}

	if err := p.investigateNodeAddress(h); err != nil {
		return err
	}

	if err := p.investigateEnvFile(h); err != nil {
		return err
	}

	log.Infof("%s: %s %s, uplink %s, node address %s", h, h.Metadata.Hostname, arch, h.Metadata.Uplink, h.Metadata.NodeAddress)

	return nil
}

// investigateUplink finds the interface facing the upstream network. A
// configured interface wins, then the default route device, then the first
// non-loopback interface.
func (p *GatherFacts) investigateUplink(h *node.Host) error {
	if h.UplinkInterface != "" {
		h.Metadata.Uplink = h.UplinkInterface
		return nil
	}

	if output, err := h.Configurer.DefaultRoute(h); err == nil {
		if iface, err := netaddr.DefaultInterface(output); err == nil {
			h.Metadata.Uplink = iface
			return nil
		}
	}

	output, err := h.Configurer.LinkList(h)
	if err != nil {
		return fmt.Errorf("failed to list interfaces: %w", err)
	}
	names := netaddr.InterfaceNames(output)
	if len(names) == 0 {
		return fmt.Errorf("no usable network interface found")
	}
	log.Warnf("%s: no default route, using %s as the uplink interface", h, names[0])
	h.Metadata.Uplink = names[0]

	return nil
}

// investigateNodeAddress decides the node's address on the FrogNet side. A
// configured address wins, otherwise a free random 10.x.y.1 is picked.
func (p *GatherFacts) investigateNodeAddress(h *node.Host) error {
	if addr := p.Config.Spec.Network.NodeAddress; addr != "" {
		h.Metadata.NodeAddress = addr
		return nil
	}

	output, err := h.Configurer.RouteTable(h)
	if err != nil {
		return fmt.Errorf("failed to read the route table: %w", err)
	}

	routes := netaddr.ParseRoutes(output)
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	h.Metadata.NodeAddress = netaddr.RandomNodeAddress(routes, rnd)
	p.IncProp("random-address")

	return nil
}

// investigateEnvFile reads a frognet.env left behind by a previous install
func (p *GatherFacts) investigateEnvFile(h *node.Host) error {
	path := h.Configurer.EnvFilePath()
	if !h.Configurer.FileExist(h, path) {
		return nil
	}

	content, err := h.Configurer.ReadFile(h, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	env, err := envfile.ParseString(content)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	h.Metadata.EnvFile = env
	h.Metadata.InstalledVersion = env.Get(envfile.KeyInstallerVersion)
	log.Infof("%s: previous installation found (version %s)", h, h.Metadata.InstalledVersion)

	return nil
}
