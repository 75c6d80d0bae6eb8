package phase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frognet/frogctl/config/node"
)

func TestRenderMapInterfaces(t *testing.T) {
	h := &node.Host{APInterface: "wlan0"}
	h.Metadata.NodeAddress = "10.1.2.1"
	h.Metadata.Uplink = "eth0"

	out, err := renderMapInterfaces(h)
	require.NoError(t, err)
	require.Contains(t, out, "ip addr replace 10.1.2.1/24 dev wlan0")
	require.Contains(t, out, "iptables -t nat -A POSTROUTING -o eth0 -j MASQUERADE")
	require.NotContains(t, out, "${", "unsubstituted placeholders left in the script")
}

func TestRenderMapInterfacesMissingFacts(t *testing.T) {
	h := &node.Host{APInterface: "wlan0"}
	h.Metadata.NodeAddress = "10.1.2.1"

	_, err := renderMapInterfaces(h)
	require.Error(t, err)
}
