package node

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/k0sproject/dig"
)

// Network defines the FrogNet network identity of the node
type Network struct {
	// Domain is the network domain name the node serves
	Domain string `yaml:"domain"`
	// NodeAddress is the node's address on the FrogNet side. When empty, a
	// free random 10.x.y.1 address is picked during install.
	NodeAddress string `yaml:"nodeAddress,omitempty"`
	// Forwarding controls whether IPv4 forwarding is enabled on the node
	Forwarding *bool `yaml:"forwarding,omitempty"`
	// Env is merged into frognet.env as-is
	Env dig.Mapping `yaml:"env,omitempty"`
}

// ForwardingEnabled is true unless forwarding has been explicitly disabled
func (n *Network) ForwardingEnabled() bool {
	return n.Forwarding == nil || *n.Forwarding
}

func (n Network) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Domain, validation.Required, is.DNSName),
		validation.Field(&n.NodeAddress, is.IPv4),
	)
}
