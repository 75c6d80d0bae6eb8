package phase

import (
	"fmt"
	"os/user"
	"time"

	"github.com/k0sproject/rig/exec"
	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/config/node"
	"github.com/frognet/frogctl/pkg/envfile"
	"github.com/frognet/frogctl/version"
)

// ConfigureNode writes the node state into frognet.env on the hosts
type ConfigureNode struct {
	GenericPhase

	start time.Time
}

// Title for the phase
func (p *ConfigureNode) Title() string {
	return "Configure node"
}

// Run the phase
func (p *ConfigureNode) Run() error {
	p.start = time.Now()
	return p.parallelDo(p.Config.Spec.Hosts, p.configureHost)
}

func (p *ConfigureNode) configureHost(h *node.Host) error {
	env := h.Metadata.EnvFile
	if env == nil {
		env = envfile.New()
	}

	spec := p.Config.Spec

	env.Set(envfile.KeyDomain, spec.Network.Domain)
	env.Set(envfile.KeyNodeIP, h.Metadata.NodeAddress)
	env.Set(envfile.KeyUplinkInterface, h.Metadata.Uplink)
	env.Set(envfile.KeyAPInterface, h.APInterface)
	env.Set(envfile.KeyAdminUser, spec.Admin.User)
	env.Set(envfile.KeyAdminPassword, spec.Admin.PasswordHash)
	env.Set(envfile.KeyInstallTime, p.start.Format(time.RFC3339))
	env.Set(envfile.KeyInstallerVersion, version.Version)
	env.Set(envfile.KeyInstallUser, localUser())
	env.Set(envfile.KeyStartupScript, spec.Startup.Script)
	env.Set(envfile.KeyStartupFlags, spec.Startup.Flags.Join())

	for k, v := range spec.Network.Env {
		env.Set(k, fmt.Sprintf("%v", v))
	}
	for k, v := range h.Environment {
		env.Set(k, v)
	}

	dir := h.Configurer.EnvDirPath()
	if err := h.Configurer.MkDir(h, dir, exec.Sudo(h)); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	path := h.Configurer.EnvFilePath()
	log.Infof("%s: writing %s", h, path)
	if err := h.Configurer.WriteFile(h, path, env.String(), "0600"); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	h.Metadata.EnvFile = env

	return nil
}

func localUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "unknown"
}
