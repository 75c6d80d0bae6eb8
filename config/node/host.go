package node

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/k0sproject/rig"
	"github.com/k0sproject/rig/exec"
	"github.com/k0sproject/rig/os"
	"github.com/k0sproject/rig/os/registry"
	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/pkg/envfile"
)

// Host contains all the needed details to work with hosts
type Host struct {
	rig.Connection `yaml:",inline"`

	// UplinkInterface is the interface facing the upstream network. When
	// empty it is discovered from the host's default route.
	UplinkInterface string `yaml:"uplinkInterface,omitempty"`
	// APInterface is the interface serving the FrogNet access point side
	APInterface string `yaml:"apInterface,omitempty" default:"wlan0"`

	Environment  map[string]string `yaml:"environment,flow,omitempty"`
	Files        []*UploadFile     `yaml:"files,omitempty"`
	Hooks        Hooks             `yaml:"hooks,omitempty"`
	OSIDOverride string            `yaml:"os,omitempty"`

	Reset      bool         `yaml:"-"`
	Metadata   HostMetadata `yaml:"-"`
	Configurer configurer   `yaml:"-"`
}

type configurer interface {
	Kind() string
	CheckPrivilege(os.Host) error
	InstallPackage(os.Host, ...string) error
	WriteFile(os.Host, string, string, string) error
	ReadFile(os.Host, string) (string, error)
	FileExist(os.Host, string) bool
	DeleteFile(os.Host, string) error
	MkDir(os.Host, string, ...exec.Option) error
	Chmod(os.Host, string, string, ...exec.Option) error
	Arch(os.Host) (string, error)
	Hostname(os.Host) string
	MachineID(os.Host) (string, error)
	RouteTable(os.Host) (string, error)
	DefaultRoute(os.Host) (string, error)
	LinkList(os.Host) (string, error)
	ExtractTarball(os.Host, string, string) error
	Sysctl(os.Host, string, string) error
	TempFile(os.Host) (string, error)
	LaunchDetached(os.Host, string, string) error
	Reboot(os.Host) error
	EnvDirPath() string
	EnvFilePath() string
	MapInterfacesPath() string
	SysctlDropInPath() string
	CronDropInPath() string
	ResumeScriptPath() string
	StartupLogPath() string
}

// HostMetadata is the facts frogctl has gathered about a host
type HostMetadata struct {
	Arch             string
	Hostname         string
	MachineID        string
	Uplink           string
	NodeAddress      string
	InstalledVersion string
	EnvFile          *envfile.File
	PayloadTempFile  string
}

// UnmarshalYAML sets in some sane defaults when unmarshaling the data from yaml
func (h *Host) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type host Host
	yh := (*host)(h)

	if err := unmarshal(yh); err != nil {
		return err
	}

	return defaults.Set(h)
}

// SetDefaults defaults the connection to localhost when no protocol has been
// configured
func (h *Host) SetDefaults() {
	if h.SSH == nil && h.Localhost == nil {
		h.Localhost = &rig.Localhost{Enabled: true}
	}
}

// Protocol returns the connection protocol name
func (h *Host) Protocol() string {
	if h.SSH != nil {
		return "ssh"
	}

	if h.Localhost != nil {
		return "local"
	}

	return "nil"
}

// target returns the connection endpoint with the port included. The
// pre-connect String() leaves the port out, so it can't tell apart two hosts
// on the same address.
func (h *Host) target() string {
	if h.SSH != nil {
		return fmt.Sprintf("ssh:%s:%d", h.SSH.Address, h.SSH.Port)
	}
	if h.Localhost != nil {
		return "localhost"
	}
	return h.String()
}

// ResolveConfigurer assigns a rig-style configurer to the Host (see configurer/)
func (h *Host) ResolveConfigurer() error {
	bf, err := registry.GetOSModuleBuilder(*h.OSVersion)
	if err != nil {
		return err
	}

	if c, ok := bf().(configurer); ok {
		h.Configurer = c

		return nil
	}

	return fmt.Errorf("unsupported OS")
}

// ExecAll runs all of the commands on the host and outputs the results
func (h *Host) ExecAll(cmds []string) error {
	for _, cmd := range cmds {
		log.Infof("%s: executing `%s`", h, cmd)
		output, err := h.ExecOutput(cmd)
		if err != nil {
			log.Errorf("%s: %s", h, output)
			return err
		}
		if output != "" {
			log.Infof("%s: %s", h, output)
		}
	}
	return nil
}

// Installed is true when a frognet.env from a previous install exists on the
// host
func (h *Host) Installed() bool {
	return h.Metadata.EnvFile != nil
}
