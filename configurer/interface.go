package configurer

import (
	"github.com/k0sproject/rig/exec"
	"github.com/k0sproject/rig/os"
)

// Configurer defines the per-host operations required for provisioning a
// FrogNet node.
type Configurer interface {
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
