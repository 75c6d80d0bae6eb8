// Package netaddr parses iproute2 command output gathered from hosts and
// picks node addresses that do not collide with existing routes. The probing
// works on command output instead of a netlink socket so that it behaves the
// same over SSH connections.
package netaddr

import (
	"fmt"
	"math/rand"
	"net"
	"strings"
)

// FallbackNodeAddress is used when no free random subnet is found
const FallbackNodeAddress = "10.13.37.1"

const maxAttempts = 20

// Route is a single parsed line of `ip route show` output
type Route struct {
	Dest string // "default", a CIDR or a plain address
	Via  string
	Dev  string
}

// Network returns the destination as a network, or nil for default routes
// and unparseable destinations. A plain address destination is treated as a
// /32.
func (r Route) Network() *net.IPNet {
	if r.Dest == "" || r.Dest == "default" {
		return nil
	}
	if _, ipnet, err := net.ParseCIDR(r.Dest); err == nil {
		return ipnet
	}
	if ip := net.ParseIP(r.Dest); ip != nil {
		return &net.IPNet{IP: ip, Mask: net.CIDRMask(32, 32)}
	}
	return nil
}

// ParseRoutes parses `ip route show` output
func ParseRoutes(output string) []Route {
	var routes []Route
	for _, row := range strings.Split(output, "\n") {
		fields := strings.Fields(row)
		if len(fields) == 0 {
			continue
		}
		route := Route{Dest: fields[0]}
		for i := 1; i < len(fields)-1; i++ {
			switch fields[i] {
			case "dev":
				route.Dev = fields[i+1]
			case "via":
				route.Via = fields[i+1]
			}
		}
		routes = append(routes, route)
	}
	return routes
}

// DefaultInterface returns the outgoing interface of the first default route
// in `ip route show default` output
func DefaultInterface(output string) (string, error) {
	for _, route := range ParseRoutes(output) {
		if route.Dest == "default" && route.Dev != "" {
			return route.Dev, nil
		}
	}
	return "", fmt.Errorf("no default route found")
}

// InterfaceNames parses `ip -o link show` output into interface names,
// loopback excluded
func InterfaceNames(output string) []string {
	var names []string
	for _, row := range strings.Split(output, "\n") {
		fields := strings.Fields(row)
		if len(fields) < 2 {
			continue
		}
		name := strings.TrimSuffix(fields[1], ":")
		// vlan/bridge members show up as eth0@br0
		if idx := strings.IndexRune(name, '@'); idx > -1 {
			name = name[:idx]
		}
		if name == "" || name == "lo" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// SubnetInUse is true when the /24 around the candidate address overlaps a
// route destination
func SubnetInUse(candidate net.IP, routes []Route) bool {
	candidate = candidate.To4()
	if candidate == nil {
		return true
	}
	subnet := &net.IPNet{
		IP:   candidate.Mask(net.CIDRMask(24, 32)),
		Mask: net.CIDRMask(24, 32),
	}
	for _, route := range routes {
		ipnet := route.Network()
		if ipnet == nil {
			continue
		}
		if ipnet.Contains(candidate) || subnet.Contains(ipnet.IP) {
			return true
		}
	}
	return false
}

// RandomNodeAddress picks a 10.x.y.1 address whose /24 does not collide with
// any of the given routes. The search is bounded; when every attempt
// collides the fixed fallback address is returned.
func RandomNodeAddress(routes []Route, rnd *rand.Rand) string {
	for i := 0; i < maxAttempts; i++ {
		candidate := net.IPv4(10, byte(rnd.Intn(256)), byte(rnd.Intn(256)), 1)
		if !SubnetInUse(candidate, routes) {
			return candidate.String()
		}
	}
	return FallbackNodeAddress
}
