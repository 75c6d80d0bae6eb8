package netaddr

import (
	"math/rand"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const routeOutput = `default via 192.168.1.1 dev eth0 proto dhcp metric 100
10.42.0.0/24 dev wlan0 proto kernel scope link src 10.42.0.1
192.168.1.0/24 dev eth0 proto kernel scope link src 192.168.1.17
169.254.0.0/16 dev eth0 scope link metric 1000`

func TestParseRoutes(t *testing.T) {
	routes := ParseRoutes(routeOutput)
	require.Len(t, routes, 4)
	require.Equal(t, "default", routes[0].Dest)
	require.Equal(t, "eth0", routes[0].Dev)
	require.Equal(t, "192.168.1.1", routes[0].Via)
	require.Equal(t, "10.42.0.0/24", routes[1].Dest)
	require.Equal(t, "wlan0", routes[1].Dev)
}

func TestDefaultInterface(t *testing.T) {
	dev, err := DefaultInterface("default via 192.168.1.1 dev eth0 proto dhcp metric 100")
	require.NoError(t, err)
	require.Equal(t, "eth0", dev)

	_, err = DefaultInterface("10.0.0.0/24 dev eth1 scope link")
	require.Error(t, err)
}

func TestInterfaceNames(t *testing.T) {
	output := `1: lo: <LOOPBACK,UP,LOWER_UP> mtu 65536 qdisc noqueue state UNKNOWN
2: eth0: <BROADCAST,MULTICAST,UP,LOWER_UP> mtu 1500 qdisc mq state UP
3: wlan0: <BROADCAST,MULTICAST> mtu 1500 qdisc noop state DOWN
4: eth0.10@eth0: <BROADCAST,MULTICAST,UP,LOWER_UP> mtu 1500`
	require.Equal(t, []string{"eth0", "wlan0", "eth0.10"}, InterfaceNames(output))
}

func TestSubnetInUse(t *testing.T) {
	routes := ParseRoutes(routeOutput)
	require.True(t, SubnetInUse(net.ParseIP("10.42.0.1"), routes))
	require.True(t, SubnetInUse(net.ParseIP("192.168.1.200"), routes))
	require.True(t, SubnetInUse(net.ParseIP("169.254.10.1"), routes))
	require.False(t, SubnetInUse(net.ParseIP("10.99.0.1"), routes))
}

func TestRandomNodeAddress(t *testing.T) {
	routes := ParseRoutes(routeOutput)
	rnd := rand.New(rand.NewSource(1))
	addr := RandomNodeAddress(routes, rnd)
	require.True(t, strings.HasPrefix(addr, "10."))
	require.True(t, strings.HasSuffix(addr, ".1"))
	require.False(t, SubnetInUse(net.ParseIP(addr), routes))
}

func TestRandomNodeAddressFallback(t *testing.T) {
	// every 10.x.y.0/24 in use
	routes := []Route{{Dest: "10.0.0.0/8"}}
	rnd := rand.New(rand.NewSource(1))
	require.Equal(t, FallbackNodeAddress, RandomNodeAddress(routes, rnd))
}
