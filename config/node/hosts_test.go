package node

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/k0sproject/rig"
	"github.com/stretchr/testify/require"
)

func localhostHosts(n int) Hosts {
	hosts := make(Hosts, 0, n)
	for i := 0; i < n; i++ {
		hosts = append(hosts, &Host{
			Connection: rig.Connection{
				SSH: &rig.SSH{Address: "10.0.0.1", Port: 22 + i},
			},
		})
	}
	return hosts
}

func TestHostsValidate(t *testing.T) {
	require.Error(t, Hosts{}.Validate())

	// same address on different ports is two hosts
	hosts := localhostHosts(2)
	require.NoError(t, hosts.Validate())

	dup := Hosts{hosts[0], hosts[0]}
	require.Error(t, dup.Validate())

	samePort := Hosts{
		&Host{Connection: rig.Connection{SSH: &rig.SSH{Address: "10.0.0.1", Port: 22}}},
		&Host{Connection: rig.Connection{SSH: &rig.SSH{Address: "10.0.0.1", Port: 22}}},
	}
	require.Error(t, samePort.Validate())
}

func TestHostsValidateFiles(t *testing.T) {
	hosts := localhostHosts(1)
	hosts[0].Files = []*UploadFile{{DestinationDir: "/etc/frognet"}}

	err := hosts.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot be blank")

	hosts[0].Files[0].Source = "files/*.conf"
	require.NoError(t, hosts.Validate())
}

func TestHostsFilterAndFind(t *testing.T) {
	hosts := localhostHosts(3)
	hosts[1].Reset = true

	resets := hosts.Filter(func(h *Host) bool { return h.Reset })
	require.Len(t, resets, 1)

	found := hosts.Find(func(h *Host) bool { return h.Reset })
	require.Same(t, hosts[1], found)

	require.Nil(t, Hosts{}.First())
	require.Same(t, hosts[0], hosts.First())
}

func TestParallelEachCollectsErrors(t *testing.T) {
	hosts := localhostHosts(3)
	var calls int32
	err := hosts.ParallelEach(func(h *Host) error {
		atomic.AddInt32(&calls, 1)
		if h == hosts[1] {
			return errors.New("boom")
		}
		return nil
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")
	require.Equal(t, int32(3), calls)
}

func TestBatchedParallelEach(t *testing.T) {
	hosts := localhostHosts(5)
	var calls int32
	err := hosts.BatchedParallelEach(2, func(h *Host) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, int32(5), calls)
}

func TestHostDefaultsToLocalhost(t *testing.T) {
	h := &Host{}
	h.SetDefaults()
	require.NotNil(t, h.Localhost)
	require.True(t, h.Localhost.Enabled)

	ssh := &Host{Connection: rig.Connection{SSH: &rig.SSH{Address: "10.0.0.1"}}}
	ssh.SetDefaults()
	require.Nil(t, ssh.Localhost)
}
