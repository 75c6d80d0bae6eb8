package phase

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/config/node"
)

// ScheduleResume arranges the installation to continue after the reboot. A
// generated script sources frognet.env, launches the startup script and
// removes its own cron entry, so the continuation works on hosts that do
// not have frogctl installed.
type ScheduleResume struct {
	GenericPhase
}

// Title for the phase
func (p *ScheduleResume) Title() string {
	return "Schedule post-reboot resume"
}

// Run the phase
func (p *ScheduleResume) Run() error {
	return p.parallelDo(p.Config.Spec.Hosts, p.scheduleResume)
}

func (p *ScheduleResume) scheduleResume(h *node.Host) error {
	scriptPath := h.Configurer.ResumeScriptPath()
	script := fmt.Sprintf(`#!/bin/sh
# Generated by frogctl apply. Runs once after the post-install reboot.
set -e

. %s

eval "nohup ${FROGNET_STARTUP_SCRIPT} ${FROGNET_STARTUP_FLAGS} >> %s 2>&1 &"

rm -f %s
`, h.Configurer.EnvFilePath(), h.Configurer.StartupLogPath(), h.Configurer.CronDropInPath())

	log.Infof("%s: writing %s", h, scriptPath)
	if err := h.Configurer.WriteFile(h, scriptPath, script, "0755"); err != nil {
		return fmt.Errorf("failed to write %s: %w", scriptPath, err)
	}

	cronPath := h.Configurer.CronDropInPath()
	cron := fmt.Sprintf("@reboot root %s\n", scriptPath)

	log.Infof("%s: writing %s", h, cronPath)
	if err := h.Configurer.WriteFile(h, cronPath, cron, "0644"); err != nil {
		return fmt.Errorf("failed to write %s: %w", cronPath, err)
	}

	return nil
}

// CleanUp removes the cron entry so a failed install does not launch a
// half-configured node at boot
func (p *ScheduleResume) CleanUp() {
	_ = p.Config.Spec.Hosts.ParallelEach(func(h *node.Host) error {
		path := h.Configurer.CronDropInPath()
		if h.Configurer.FileExist(h, path) {
			if err := h.Configurer.DeleteFile(h, path); err != nil {
				log.Warnf("%s: failed to remove %s: %s", h, path, err)
			}
		}
		return nil
	})
}
