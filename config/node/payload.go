package node

import (
	"strings"

	"github.com/creasty/defaults"

	"github.com/frognet/frogctl/integration/frogweb"
	"github.com/frognet/frogctl/version"
)

// Payload describes the application tarball extracted into the node's root
// filesystem
type Payload struct {
	// Version of the payload. Defaults to the latest release known to the
	// FrogNet backend.
	Version string `yaml:"version,omitempty"`
	// Source is a URL or a local file path to the payload tarball. When
	// empty, the tarball is fetched from the backend by version.
	Source string `yaml:"source,omitempty"`
	// Sha256 is an optional checksum for the tarball
	Sha256 string `yaml:"sha256,omitempty"`

	Metadata PayloadMetadata `yaml:"-"`
}

// PayloadMetadata contains gathered information about the payload
type PayloadMetadata struct {
	VersionDefaulted bool
	// LocalFile is the tarball's path on the local machine, either the
	// configured local source or the cached download
	LocalFile string
}

// UnmarshalYAML sets in some sane defaults when unmarshaling the data from yaml
func (p *Payload) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type payload Payload
	yp := (*payload)(p)

	if err := unmarshal(yp); err != nil {
		return err
	}

	return defaults.Set(p)
}

// SetDefaults defaults the version to the latest known payload release
func (p *Payload) SetDefaults() {
	if p.Source != "" && !p.IsRemote() {
		// local tarball, version only informational
		return
	}

	if defaults.CanUpdate(p.Version) {
		preok := version.IsPre() || version.Version == "0.0.0"
		if latest, err := frogweb.LatestPayloadVersion("", preok); err == nil {
			p.Version = latest
			p.Metadata.VersionDefaulted = true
		}
	}

	p.Version = strings.TrimPrefix(p.Version, "v")
}

// IsRemote is true when the payload needs to be downloaded
func (p *Payload) IsRemote() bool {
	if p.Source == "" {
		return true
	}
	return strings.HasPrefix(p.Source, "http://") || strings.HasPrefix(p.Source, "https://")
}

// URL returns the download URL for a remote payload
func (p *Payload) URL() string {
	if p.Source != "" {
		return p.Source
	}
	return frogweb.PayloadURL("", p.Version)
}
