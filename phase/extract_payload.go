package phase

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/config/node"
)

// ExtractPayload unpacks the uploaded payload tarball into the host's root
// filesystem
type ExtractPayload struct {
	GenericPhase
}

// Title for the phase
func (p *ExtractPayload) Title() string {
	return "Extract payload"
}

// Run the phase
func (p *ExtractPayload) Run() error {
	return p.parallelDo(p.Config.Spec.Hosts, func(h *node.Host) error {
		if h.Metadata.PayloadTempFile == "" {
			return fmt.Errorf("%s: no uploaded payload", h)
		}

		log.Infof("%s: extracting payload to /", h)
		if err := h.Configurer.ExtractTarball(h, h.Metadata.PayloadTempFile, "/"); err != nil {
			return fmt.Errorf("failed to extract the payload: %w", err)
		}

		if err := h.Configurer.DeleteFile(h, h.Metadata.PayloadTempFile); err != nil {
			log.Warnf("%s: failed to remove %s: %s", h, h.Metadata.PayloadTempFile, err)
		}
		h.Metadata.PayloadTempFile = ""

		p.IncProp("extracted")

		return nil
	})
}
