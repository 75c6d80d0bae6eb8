package phase

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/frognet/frogctl/config"
	"github.com/frognet/frogctl/config/node"
)

// RunHooks executes a set of commands defined in the host configuration
type RunHooks struct {
	GenericPhase

	// Action is the lifecycle action: apply, resume or reset
	Action string
	// Stage is the timing within the action: before or after
	Stage string

	hosts node.Hosts
}

// Title for the phase
func (p *RunHooks) Title() string {
	titler := cases.Title(language.AmericanEnglish)
	return fmt.Sprintf("Run %s %s Hooks", titler.String(p.Stage), titler.String(p.Action))
}

// Prepare digs out the hosts with matching hooks from the config
func (p *RunHooks) Prepare(c *config.Config) error {
	p.Config = c
	p.hosts = p.Config.Spec.Hosts.Filter(func(h *node.Host) bool {
		return len(h.Hooks.ForActionAndStage(p.Action, p.Stage)) > 0
	})

	return nil
}

// ShouldRun is true when there are hosts that need to be connected
func (p *RunHooks) ShouldRun() bool {
	return len(p.hosts) > 0
}

// Run the phase
func (p *RunHooks) Run() error {
	return p.parallelDo(p.hosts, func(h *node.Host) error {
		return h.ExecAll(h.Hooks.ForActionAndStage(p.Action, p.Stage))
	})
}
