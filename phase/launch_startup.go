package phase

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/config/node"
	"github.com/frognet/frogctl/pkg/envfile"
)

// LaunchStartup starts the node's startup script as a single detached
// child, output appended to the startup log. The script is not supervised.
type LaunchStartup struct {
	GenericPhase
}

// Title for the phase
func (p *LaunchStartup) Title() string {
	return "Launch startup script"
}

// Run the phase
func (p *LaunchStartup) Run() error {
	return p.parallelDo(p.Config.Spec.Hosts, p.launchStartup)
}

func (p *LaunchStartup) launchStartup(h *node.Host) error {
	cmd := p.command(h)
	if cmd == "" {
		return fmt.Errorf("%s: no startup script defined", h)
	}

	logPath := h.Configurer.StartupLogPath()
	log.Infof("%s: launching %s (logging to %s)", h, cmd, logPath)
	if err := h.Configurer.LaunchDetached(h, cmd, logPath); err != nil {
		return fmt.Errorf("failed to launch the startup script: %w", err)
	}

	p.IncProp("launched")

	return nil
}

// command builds the launch command line, preferring the state recorded in
// frognet.env over the local config
func (p *LaunchStartup) command(h *node.Host) string {
	if env := h.Metadata.EnvFile; env != nil && env.Get(envfile.KeyStartupScript) != "" {
		cmd := env.Get(envfile.KeyStartupScript)
		if flags := env.Get(envfile.KeyStartupFlags); flags != "" {
			cmd = cmd + " " + flags
		}
		return strings.TrimSpace(cmd)
	}

	return p.Config.Spec.Startup.Command()
}
