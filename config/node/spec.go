package node

import (
	"github.com/creasty/defaults"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Spec defines the node config spec section
type Spec struct {
	Hosts        Hosts         `yaml:"hosts,omitempty"`
	Network      *Network      `yaml:"network,omitempty"`
	Admin        *Admin        `yaml:"admin,omitempty"`
	Payload      *Payload      `yaml:"payload,omitempty"`
	Registration *Registration `yaml:"registration,omitempty"`
	Startup      *Startup      `yaml:"startup,omitempty"`
	Packages     []string      `yaml:"packages,omitempty"`
}

// BasePackages are always installed on the node before the payload goes in
var BasePackages = []string{"curl", "dnsmasq", "hostapd", "iptables"}

// UnmarshalYAML sets in some sane defaults when unmarshaling the data from yaml
func (s *Spec) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type spec Spec
	ys := (*spec)(s)
	ys.Network = &Network{}
	ys.Admin = &Admin{}
	ys.Payload = &Payload{}
	ys.Registration = &Registration{}
	ys.Startup = &Startup{}

	if err := unmarshal(ys); err != nil {
		return err
	}

	return defaults.Set(s)
}

// SetDefaults sets defaults
func (s *Spec) SetDefaults() {
	if s.Network == nil {
		s.Network = &Network{}
		_ = defaults.Set(s.Network)
	}
	if s.Admin == nil {
		s.Admin = &Admin{}
		_ = defaults.Set(s.Admin)
	}
	if s.Payload == nil {
		s.Payload = &Payload{}
		_ = defaults.Set(s.Payload)
	}
	if s.Registration == nil {
		s.Registration = &Registration{}
		_ = defaults.Set(s.Registration)
	}
	if s.Startup == nil {
		s.Startup = &Startup{}
		_ = defaults.Set(s.Startup)
	}
}

// Packages to install, base packages included
func (s *Spec) AllPackages() []string {
	seen := make(map[string]struct{}, len(BasePackages)+len(s.Packages))
	var pkgs []string
	for _, p := range append(append([]string{}, BasePackages...), s.Packages...) {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		pkgs = append(pkgs, p)
	}
	return pkgs
}

func (s *Spec) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Hosts, validation.Required),
		validation.Field(&s.Hosts),
		validation.Field(&s.Network, validation.Required),
		validation.Field(&s.Admin),
		validation.Field(&s.Registration),
		validation.Field(&s.Startup),
	)
}
