package linux

import (
	"github.com/k0sproject/rig"
	"github.com/k0sproject/rig/os/registry"

	"github.com/frognet/frogctl/configurer"
)

// Raspbian provides OS support for Raspberry Pi OS. The 64-bit variant
// reports ID=debian in os-release and is handled by the Debian module.
type Raspbian struct {
	Debian
}

var _ configurer.Configurer = (*Raspbian)(nil)

func init() {
	registry.RegisterOSModule(
		func(os rig.OSVersion) bool {
			return os.ID == "raspbian"
		},
		func() any {
			return &Raspbian{}
		},
	)
}
