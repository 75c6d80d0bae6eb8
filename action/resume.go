package action

import (
	"fmt"
	"time"

	"github.com/logrusorgru/aurora"
	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/analytics"
	"github.com/frognet/frogctl/phase"
)

type Resume struct {
	// Manager is the phase manager
	Manager *phase.Manager
}

// Run the Resume action
func (r Resume) Run() error {
	start := time.Now()

	r.Manager.AddPhase(
		&phase.Connect{},
		&phase.DetectOS{},
		&phase.LoadState{},
		&phase.RunHooks{Stage: "before", Action: "resume"},
		&phase.LaunchStartup{},
		&phase.DescheduleResume{},
		&phase.RunHooks{Stage: "after", Action: "resume"},
		&phase.Disconnect{},
	)

	analytics.Client.Publish("resume-start", map[string]interface{}{})

	if err := r.Manager.Run(); err != nil {
		analytics.Client.Publish("resume-failure", map[string]interface{}{})
		return err
	}

	analytics.Client.Publish("resume-success", map[string]interface{}{"duration": time.Since(start)})

	duration := time.Since(start).Truncate(time.Second)
	text := fmt.Sprintf("==> Finished in %s", duration)
	log.Info(aurora.Green(text).String())

	return nil
}
