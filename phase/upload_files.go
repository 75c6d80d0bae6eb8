package phase

import (
	"path/filepath"

	"github.com/k0sproject/rig/exec"
	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/config"
	"github.com/frognet/frogctl/config/node"
)

// UploadFiles implements a phase which upload files to hosts
type UploadFiles struct {
	GenericPhase

	hosts node.Hosts
}

// Title for the phase
func (p *UploadFiles) Title() string {
	return "Upload files to hosts"
}

// Prepare the phase
func (p *UploadFiles) Prepare(c *config.Config) error {
	p.Config = c
	p.hosts = p.Config.Spec.Hosts.Filter(func(h *node.Host) bool {
		return len(h.Files) > 0
	})

	return nil
}

// ShouldRun is true when there are hosts with files to upload
func (p *UploadFiles) ShouldRun() bool {
	return len(p.hosts) > 0
}

// Run the phase
func (p *UploadFiles) Run() error {
	return p.parallelDoBatched(p.hosts, p.uploadFiles)
}

func (p *UploadFiles) uploadFiles(h *node.Host) error {
	for _, f := range h.Files {
		log.Infof("%s: starting to upload %s", h, f)
		files, err := f.Resolve()
		if err != nil {
			return err
		}

		if err := h.Configurer.MkDir(h, f.DestinationDir, exec.Sudo(h)); err != nil {
			return err
		}

		for _, file := range files {
			destination := filepath.Join(f.DestinationDir, filepath.Base(file))
			log.Debugf("%s: uploading %s to %s", h, file, destination)

			if err := h.Upload(file, destination, exec.Sudo(h)); err != nil {
				return err
			}

			if err := h.Configurer.Chmod(h, destination, f.PermString, exec.Sudo(h)); err != nil {
				return err
			}
		}
		log.Infof("%s: %s upload done", h, f)
	}
	return nil
}
