package configurer

import (
	"fmt"
	"path"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/k0sproject/rig/exec"
	"github.com/k0sproject/rig/os"
)

// Linux is a base module for the linux OS support packages
type Linux struct {
	os.Linux
}

// Arch returns the host processor architecture in go style ("amd64", "arm64", "arm")
func (l Linux) Arch(h os.Host) (string, error) {
	arch, err := h.ExecOutput("uname -m")
	if err != nil {
		return "", err
	}
	switch arch {
	case "x86_64":
		return "amd64", nil
	case "aarch64", "arm64":
		return "arm64", nil
	case "armv7l", "armv6l":
		return "arm", nil
	default:
		return arch, nil
	}
}

// MachineID returns the host's unique machine id
func (l Linux) MachineID(h os.Host) (string, error) {
	id, err := h.ExecOutput("cat /etc/machine-id")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(id), nil
}

// RouteTable returns the output of `ip route show`
func (l Linux) RouteTable(h os.Host) (string, error) {
	return h.ExecOutput("ip route show")
}

// DefaultRoute returns the default route line, empty when the host has none
func (l Linux) DefaultRoute(h os.Host) (string, error) {
	return h.ExecOutput("ip route show default")
}

// LinkList returns the output of `ip -o link show`
func (l Linux) LinkList(h os.Host) (string, error) {
	return h.ExecOutput("ip -o link show")
}

// ExtractTarball unpacks a gzipped tarball under the given directory
func (l Linux) ExtractTarball(h os.Host, src, dir string) error {
	return h.Execf("tar -C %s -xzf %s", shellescape.Quote(dir), shellescape.Quote(src), exec.Sudo(h))
}

// Sysctl sets a kernel parameter for the running system
func (l Linux) Sysctl(h os.Host, key, value string) error {
	return h.Execf("sysctl -w %s", shellescape.Quote(fmt.Sprintf("%s=%s", key, value)), exec.Sudo(h))
}

// TempFile creates a temporary file on the host and returns its path
func (l Linux) TempFile(h os.Host) (string, error) {
	return h.ExecOutput("mktemp /tmp/frogctl.XXXXXX")
}

// LaunchDetached starts the command on the host without waiting for it to
// finish, output appended to logPath
func (l Linux) LaunchDetached(h os.Host, cmd, logPath string) error {
	return h.Execf("nohup %s >> %s 2>&1 &", cmd, shellescape.Quote(logPath), exec.Sudo(h))
}

// Reboot the host. The shutdown is delayed so the command can return cleanly
// before the connection drops.
func (l Linux) Reboot(h os.Host) error {
	return h.Exec("sh -c '(sleep 1; shutdown -r now) >/dev/null 2>&1 &'", exec.Sudo(h))
}

// EnvDirPath returns the node configuration directory
func (l Linux) EnvDirPath() string {
	return "/etc/frognet"
}

// EnvFilePath returns the location of frognet.env
func (l Linux) EnvFilePath() string {
	return path.Join(l.EnvDirPath(), "frognet.env")
}

// MapInterfacesPath returns the location of the interface mapping script
func (l Linux) MapInterfacesPath() string {
	return "/usr/local/bin/mapInterfaces"
}

// SysctlDropInPath returns the location of the persistent forwarding drop-in
func (l Linux) SysctlDropInPath() string {
	return "/etc/sysctl.d/90-frognet-forward.conf"
}

// CronDropInPath returns the location of the reboot continuation cron entry
func (l Linux) CronDropInPath() string {
	return "/etc/cron.d/frognet-resume"
}

// ResumeScriptPath returns the location of the generated resume script
func (l Linux) ResumeScriptPath() string {
	return "/usr/local/bin/frognet-resume"
}

// StartupLogPath returns where the detached startup command logs to
func (l Linux) StartupLogPath() string {
	return "/var/log/frognet-startup.log"
}
