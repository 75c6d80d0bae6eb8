package linux

import (
	"testing"

	"github.com/k0sproject/rig"
	"github.com/k0sproject/rig/exec"
	"github.com/k0sproject/rig/os/registry"
	"github.com/stretchr/testify/require"

	"github.com/frognet/frogctl/configurer"
)

type mockHost struct {
	Output string
}

func (m mockHost) Upload(source, destination string, opts ...exec.Option) error {
	return nil
}

func (m mockHost) Exec(string, ...exec.Option) error {
	return nil
}

func (m mockHost) ExecOutput(string, ...exec.Option) (string, error) {
	return m.Output, nil
}

func (m mockHost) Execf(string, ...any) error {
	return nil
}

func (m mockHost) ExecOutputf(string, ...any) (string, error) {
	return m.Output, nil
}

func (m mockHost) String() string {
	return ""
}

func (m mockHost) Sudo(string) (string, error) {
	return "", nil
}

func TestPaths(t *testing.T) {
	d := &Debian{}

	require.Equal(t, "/etc/frognet", d.EnvDirPath())
	require.Equal(t, "/etc/frognet/frognet.env", d.EnvFilePath())
	require.Equal(t, "/usr/local/bin/mapInterfaces", d.MapInterfacesPath())
	require.Equal(t, "/etc/cron.d/frognet-resume", d.CronDropInPath())
	require.Equal(t, "/usr/local/bin/frognet-resume", d.ResumeScriptPath())
}

func TestArchMapping(t *testing.T) {
	d := &Debian{}

	for uname, want := range map[string]string{
		"x86_64":  "amd64",
		"aarch64": "arm64",
		"armv7l":  "arm",
		"riscv64": "riscv64",
	} {
		arch, err := d.Arch(mockHost{Output: uname})
		require.NoError(t, err)
		require.Equal(t, want, arch)
	}
}

func TestRegistryResolution(t *testing.T) {
	for _, id := range []string{"debian", "ubuntu", "raspbian"} {
		bf, err := registry.GetOSModuleBuilder(rig.OSVersion{ID: id})
		require.NoError(t, err, id)

		_, ok := bf().(configurer.Configurer)
		require.True(t, ok, id)
	}
}
