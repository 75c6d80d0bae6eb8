package phase

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/config/node"
	"github.com/frognet/frogctl/pkg/envfile"
)

// LoadState reads frognet.env from the hosts. Unlike GatherFacts, a missing
// file is an error here: resuming makes no sense on a host that has not
// been installed.
type LoadState struct {
	GenericPhase
}

// Title for the phase
func (p *LoadState) Title() string {
	return "Load node state"
}

// Run the phase
func (p *LoadState) Run() error {
	return p.parallelDo(p.Config.Spec.Hosts, func(h *node.Host) error {
		path := h.Configurer.EnvFilePath()
		if !h.Configurer.FileExist(h, path) {
			return fmt.Errorf("%s: %s not found, nothing to resume", h, path)
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
		h.Metadata.NodeAddress = env.Get(envfile.KeyNodeIP)
		h.Metadata.Uplink = env.Get(envfile.KeyUplinkInterface)
		h.Metadata.InstalledVersion = env.Get(envfile.KeyInstallerVersion)

		log.Infof("%s: loaded node state (installed %s)", h, env.Get(envfile.KeyInstallTime))

		return nil
	})
}
