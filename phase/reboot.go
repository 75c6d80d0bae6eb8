package phase

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/config/node"
	"github.com/frognet/frogctl/pkg/retry"
)

// Reboot restarts the hosts and optionally waits for them to come back
type Reboot struct {
	GenericPhase

	// NoWait skips waiting for the hosts to come back up
	NoWait bool
}

// Title for the phase
func (p *Reboot) Title() string {
	return "Reboot hosts"
}

// Run the phase
func (p *Reboot) Run() error {
	return p.parallelDo(p.Config.Spec.Hosts, p.rebootHost)
}

func (p *Reboot) rebootHost(h *node.Host) error {
	log.Infof("%s: rebooting", h)
	if err := h.Configurer.Reboot(h); err != nil {
		return fmt.Errorf("failed to reboot: %w", err)
	}
	h.Disconnect()

	if p.NoWait {
		log.Infof("%s: reboot issued, not waiting for the host to come back", h)
		return nil
	}

	log.Infof("%s: waiting for the host to come back up", h)
	err := retry.Timeout(context.Background(), time.Minute*10, func(_ context.Context) error {
		return h.Connect()
	})
	if err != nil {
		return fmt.Errorf("host did not come back up: %w", err)
	}

	if h.Configurer.FileExist(h, h.Configurer.CronDropInPath()) {
		log.Infof("%s: back up, startup launch still pending", h)
	} else {
		log.Infof("%s: back up, startup launched", h)
	}

	return nil
}
