package node

import (
	"strings"

	"github.com/alessio/shellescape"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Startup describes the externally supplied startup script launched after
// the post-install reboot
type Startup struct {
	// Script is the path of the startup script on the node
	Script string `yaml:"script,omitempty" default:"/usr/local/bin/frognet-startup"`
	// Flags are passed to the script verbatim
	Flags Flags `yaml:"flags,omitempty"`
}

func (s Startup) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Script, validation.Required),
	)
}

// Command returns the full shell command line for launching the script
func (s *Startup) Command() string {
	cmd := shellescape.Quote(s.Script)
	if len(s.Flags) > 0 {
		cmd = cmd + " " + s.Flags.Join()
	}
	return strings.TrimSpace(cmd)
}
