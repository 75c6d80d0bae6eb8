package phase

import (
	"fmt"

	"github.com/k0sproject/rig/exec"
	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/config/node"
)

// UploadPayload uploads the payload tarball to a temporary file on the hosts
type UploadPayload struct {
	GenericPhase
}

// Title for the phase
func (p *UploadPayload) Title() string {
	return "Upload payload to hosts"
}

// Run the phase
func (p *UploadPayload) Run() error {
	return p.parallelDoBatched(p.Config.Spec.Hosts, p.uploadPayload)
}

// CleanUp removes the temporary files
func (p *UploadPayload) CleanUp() {
	_ = p.Config.Spec.Hosts.ParallelEach(func(h *node.Host) error {
		if h.Metadata.PayloadTempFile == "" {
			return nil
		}
		if err := h.Configurer.DeleteFile(h, h.Metadata.PayloadTempFile); err != nil {
			log.Warnf("%s: failed to remove %s: %s", h, h.Metadata.PayloadTempFile, err)
		}
		h.Metadata.PayloadTempFile = ""
		return nil
	})
}

func (p *UploadPayload) uploadPayload(h *node.Host) error {
	src := p.localFile()
	if src == "" {
		return fmt.Errorf("no payload tarball available")
	}

	tmp, err := h.Configurer.TempFile(h)
	if err != nil {
		return fmt.Errorf("failed to create a temporary file: %w", err)
	}

	log.Infof("%s: uploading payload", h)
	if err := h.Upload(src, tmp, exec.Sudo(h)); err != nil {
		return fmt.Errorf("failed to upload the payload: %w", err)
	}

	if err := h.Configurer.Chmod(h, tmp, "0600", exec.Sudo(h)); err != nil {
		return fmt.Errorf("failed to chmod the uploaded payload: %w", err)
	}

	h.Metadata.PayloadTempFile = tmp

	return nil
}

func (p *UploadPayload) localFile() string {
	payload := p.Config.Spec.Payload
	if payload.Metadata.LocalFile != "" {
		return payload.Metadata.LocalFile
	}
	if !payload.IsRemote() {
		return payload.Source
	}
	return ""
}
