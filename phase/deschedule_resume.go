package phase

import (
	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/config/node"
)

// DescheduleResume removes the post-reboot continuation cron entry
type DescheduleResume struct {
	GenericPhase
}

// Title for the phase
func (p *DescheduleResume) Title() string {
	return "Remove resume schedule"
}

// Run the phase
func (p *DescheduleResume) Run() error {
	return p.parallelDo(p.Config.Spec.Hosts, func(h *node.Host) error {
		for _, path := range []string{h.Configurer.CronDropInPath(), h.Configurer.ResumeScriptPath()} {
			if !h.Configurer.FileExist(h, path) {
				continue
			}
			log.Infof("%s: removing %s", h, path)
			if err := h.Configurer.DeleteFile(h, path); err != nil {
				return err
			}
		}
		return nil
	})
}
