package phase

import (
	"fmt"

	"github.com/a8m/envsubst/parse"
	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/config/node"
	"github.com/frognet/frogctl/pkg/envfile"
)

// mapInterfacesTemplate is rendered with the host's interface facts and
// installed as an executable script on the node. The placeholders are
// resolved at install time, the script itself carries no variables.
const mapInterfacesTemplate = `#!/bin/sh
# Generated by frogctl apply. Do not edit, this file is overwritten on the
# next install.
set -e

ip addr replace ${FROGNET_NODE_IP}/24 dev ${FROGNET_AP_IFACE}
ip link set ${FROGNET_AP_IFACE} up

iptables -t nat -C POSTROUTING -o ${FROGNET_UPLINK_IFACE} -j MASQUERADE 2>/dev/null ||
  iptables -t nat -A POSTROUTING -o ${FROGNET_UPLINK_IFACE} -j MASQUERADE
iptables -C FORWARD -i ${FROGNET_AP_IFACE} -o ${FROGNET_UPLINK_IFACE} -j ACCEPT 2>/dev/null ||
  iptables -A FORWARD -i ${FROGNET_AP_IFACE} -o ${FROGNET_UPLINK_IFACE} -j ACCEPT
iptables -C FORWARD -i ${FROGNET_UPLINK_IFACE} -o ${FROGNET_AP_IFACE} -m state --state RELATED,ESTABLISHED -j ACCEPT 2>/dev/null ||
  iptables -A FORWARD -i ${FROGNET_UPLINK_IFACE} -o ${FROGNET_AP_IFACE} -m state --state RELATED,ESTABLISHED -j ACCEPT
`

// MapInterfaces renders and installs the interface mapping script
type MapInterfaces struct {
	GenericPhase
}

// Title for the phase
func (p *MapInterfaces) Title() string {
	return "Install interface mapping script"
}

// Run the phase
func (p *MapInterfaces) Run() error {
	return p.parallelDo(p.Config.Spec.Hosts, p.installScript)
}

func (p *MapInterfaces) installScript(h *node.Host) error {
	script, err := renderMapInterfaces(h)
	if err != nil {
		return fmt.Errorf("failed to render the interface mapping script: %w", err)
	}

	path := h.Configurer.MapInterfacesPath()
	log.Infof("%s: writing %s", h, path)
	if err := h.Configurer.WriteFile(h, path, script, "0755"); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func renderMapInterfaces(h *node.Host) (string, error) {
	env := []string{
		fmt.Sprintf("%s=%s", envfile.KeyNodeIP, h.Metadata.NodeAddress),
		fmt.Sprintf("%s=%s", envfile.KeyUplinkInterface, h.Metadata.Uplink),
		fmt.Sprintf("%s=%s", envfile.KeyAPInterface, h.APInterface),
	}

	parser := parse.New("mapInterfaces", env, &parse.Restrictions{NoUnset: true, NoEmpty: true})
	return parser.Parse(mapInterfacesTemplate)
}
