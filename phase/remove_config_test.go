package phase

import (
	"testing"

	"github.com/k0sproject/rig"
	"github.com/stretchr/testify/require"

	"github.com/frognet/frogctl/config"
	"github.com/frognet/frogctl/config/node"
)

func TestRemoveNodeConfigOnlyResetHosts(t *testing.T) {
	hosts := node.Hosts{
		&node.Host{Connection: rig.Connection{SSH: &rig.SSH{Address: "10.0.0.1", Port: 22}}},
		&node.Host{Connection: rig.Connection{SSH: &rig.SSH{Address: "10.0.0.2", Port: 22}}},
	}
	hosts[1].Reset = true
	cfg := &config.Config{Spec: &node.Spec{Hosts: hosts}}

	p := &RemoveNodeConfig{}
	require.NoError(t, p.Prepare(cfg))
	require.True(t, p.ShouldRun())
	require.Len(t, p.hosts, 1)
	require.Same(t, hosts[1], p.hosts[0])

	hosts[1].Reset = false
	require.NoError(t, p.Prepare(cfg))
	require.False(t, p.ShouldRun())
}
