package node

import (
	"testing"

	"github.com/k0sproject/rig"
	"github.com/stretchr/testify/require"
)

func validSpec() *Spec {
	return &Spec{
		Hosts: Hosts{
			&Host{Connection: rig.Connection{SSH: &rig.SSH{Address: "10.0.0.1", Port: 22}}},
		},
		Network: &Network{Domain: "pond.frognet.io"},
	}
}

func TestSpecValidate(t *testing.T) {
	require.NoError(t, validSpec().Validate())

	s := validSpec()
	s.Hosts = nil
	require.Error(t, s.Validate())

	s = validSpec()
	s.Network = nil
	require.Error(t, s.Validate())
}

func TestSpecValidateRegistration(t *testing.T) {
	s := validSpec()
	s.Registration = &Registration{Enabled: true}
	require.Error(t, s.Validate())

	s.Registration.Email = "not an email"
	require.Error(t, s.Validate())

	s.Registration.Email = "frog@example.com"
	require.NoError(t, s.Validate())

	// registration details are not required while disabled
	s.Registration = &Registration{}
	require.NoError(t, s.Validate())
}

func TestSpecValidateAdmin(t *testing.T) {
	s := validSpec()
	s.Admin = &Admin{}
	require.Error(t, s.Validate())

	s.Admin.User = "frogadmin"
	require.NoError(t, s.Validate())
}

func TestSpecValidateStartup(t *testing.T) {
	s := validSpec()
	s.Startup = &Startup{}
	require.Error(t, s.Validate())

	s.Startup.Script = "/usr/local/bin/frognet-startup"
	require.NoError(t, s.Validate())
}

func TestAllPackages(t *testing.T) {
	s := validSpec()
	s.Packages = []string{"jq", "curl"}

	pkgs := s.AllPackages()
	require.Contains(t, pkgs, "jq")
	require.Contains(t, pkgs, "dnsmasq")

	seen := map[string]int{}
	for _, p := range pkgs {
		seen[p]++
	}
	require.Equal(t, 1, seen["curl"])
}
