package action

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/analytics"
	"github.com/frognet/frogctl/phase"
)

type Reset struct {
	// Manager is the phase manager
	Manager *phase.Manager
	Stdout  io.Writer
	Force   bool
}

// Run the Reset action
func (r Reset) Run() error {
	if !r.Force {
		if stdoutFile, ok := r.Stdout.(*os.File); ok && !isatty.IsTerminal(stdoutFile.Fd()) {
			return fmt.Errorf("reset requires --force")
		}
		confirmed := false
		prompt := &survey.Confirm{
			Message: "Going to remove the FrogNet configuration from all of the hosts. Are you sure?",
		}
		_ = survey.AskOne(prompt, &confirmed)
		if !confirmed {
			return fmt.Errorf("confirmation or --force required to proceed")
		}
	}

	start := time.Now()

	for _, h := range r.Manager.Config.Spec.Hosts {
		h.Reset = true
	}

	r.Manager.AddPhase(
		&phase.Connect{},
		&phase.DetectOS{},
		&phase.GatherFacts{},
		&phase.RunHooks{Stage: "before", Action: "reset"},
		&phase.DescheduleResume{},
		&phase.RemoveNodeConfig{},
		&phase.RunHooks{Stage: "after", Action: "reset"},
		&phase.Disconnect{},
	)

	analytics.Client.Publish("reset-start", map[string]interface{}{})

	if err := r.Manager.Run(); err != nil {
		analytics.Client.Publish("reset-failure", map[string]interface{}{})
		return err
	}

	analytics.Client.Publish("reset-success", map[string]interface{}{"duration": time.Since(start)})

	duration := time.Since(start).Truncate(time.Second)
	text := fmt.Sprintf("==> Finished in %s", duration)
	log.Info(aurora.Green(text).String())

	return nil
}
