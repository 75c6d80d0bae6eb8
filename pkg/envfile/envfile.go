// Package envfile reads and writes frognet.env, the flat KEY="value" state
// file a FrogNet node carries in /etc/frognet. The file is written complete
// on every install and sourced by shell on the node, so values are quoted
// the way a shell expects and unknown keys are preserved on rewrite.
package envfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/frognet/frogctl/internal/shell"
)

// Keys frogctl writes into frognet.env
const (
	KeyDomain           = "FROGNET_DOMAIN"
	KeyNodeIP           = "FROGNET_NODE_IP"
	KeyUplinkInterface  = "FROGNET_UPLINK_IFACE"
	KeyAPInterface      = "FROGNET_AP_IFACE"
	KeyAdminUser        = "FROGNET_ADMIN_USER"
	KeyAdminPassword    = "FROGNET_ADMIN_PASSWORD"
	KeyInstallTime      = "FROGNET_INSTALL_TIME"
	KeyInstallerVersion = "FROGNET_INSTALLER_VERSION"
	KeyInstallUser      = "FROGNET_INSTALL_USER"
	KeyStartupScript    = "FROGNET_STARTUP_SCRIPT"
	KeyStartupFlags     = "FROGNET_STARTUP_FLAGS"
)

type line struct {
	key   string
	value string
	raw   string // comments and blanks, kept verbatim
}

// File is an ordered key-value environment file
type File struct {
	lines []*line
}

// New returns an empty File
func New() *File {
	return &File{}
}

// Parse reads an environment file. Blank lines and comments are preserved,
// "export " prefixes are accepted and values are unquoted the way a shell
// would.
func Parse(r io.Reader) (*File, error) {
	f := &File{}
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		raw := scanner.Text()
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			f.lines = append(f.lines, &line{raw: raw})
			continue
		}

		trimmed = strings.TrimPrefix(trimmed, "export ")
		idx := strings.IndexRune(trimmed, '=')
		if idx < 1 {
			return nil, fmt.Errorf("line %d: not a KEY=value pair: %q", n, raw)
		}

		key := strings.TrimSpace(trimmed[:idx])
		value, err := shell.Unquote(trimmed[idx+1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}

		f.lines = append(f.lines, &line{key: key, value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return f, nil
}

// ParseString is Parse on a string
func ParseString(s string) (*File, error) {
	return Parse(strings.NewReader(s))
}

// Get returns the value for a key or "" when not set
func (f *File) Get(key string) string {
	for _, l := range f.lines {
		if l.key == key {
			return l.value
		}
	}
	return ""
}

// Has is true when the key is set
func (f *File) Has(key string) bool {
	for _, l := range f.lines {
		if l.key == key {
			return true
		}
	}
	return false
}

// Set replaces the value of an existing key in place or appends a new one
func (f *File) Set(key, value string) {
	for _, l := range f.lines {
		if l.key == key {
			l.value = value
			return
		}
	}
	f.lines = append(f.lines, &line{key: key, value: value})
}

// Unset removes a key
func (f *File) Unset(key string) {
	kept := f.lines[:0]
	for _, l := range f.lines {
		if l.key != key {
			kept = append(kept, l)
		}
	}
	f.lines = kept
}

// Keys returns the keys in file order
func (f *File) Keys() []string {
	var keys []string
	for _, l := range f.lines {
		if l.key != "" {
			keys = append(keys, l.key)
		}
	}
	return keys
}

// Map returns the key-value pairs as a plain map
func (f *File) Map() map[string]string {
	m := make(map[string]string, len(f.lines))
	for _, l := range f.lines {
		if l.key != "" {
			m[l.key] = l.value
		}
	}
	return m
}

// String renders the file with shell-quoted values
func (f *File) String() string {
	sb := &strings.Builder{}
	for _, l := range f.lines {
		if l.key == "" {
			sb.WriteString(l.raw)
		} else {
			sb.WriteString(l.key)
			sb.WriteRune('=')
			sb.WriteString(shellescape.Quote(l.value))
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
