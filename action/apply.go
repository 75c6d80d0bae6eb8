package action

import (
	"fmt"
	"time"

	"github.com/logrusorgru/aurora"
	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/analytics"
	"github.com/frognet/frogctl/phase"
)

type Apply struct {
	// Manager is the phase manager
	Manager *phase.Manager
	// Force skips the downgrade check
	Force bool
	// NoReboot skips the post-install reboot
	NoReboot bool
	// NoWait skips waiting for rebooted hosts to come back up
	NoWait bool
}

// Run the Apply action
func (a Apply) Run() error {
	start := time.Now()

	a.Manager.AddPhase(
		&phase.Connect{},
		&phase.DetectOS{},
		&phase.GatherFacts{},
		&phase.ValidateHosts{},
		&phase.ValidateState{Force: a.Force},
		&phase.PrepareHosts{},
		&phase.DownloadPayload{},
		&phase.UploadPayload{},
		&phase.ExtractPayload{},
		&phase.UploadFiles{},
		&phase.RunHooks{Stage: "before", Action: "apply"},
		&phase.ConfigureNode{},
		&phase.MapInterfaces{},
		&phase.EnableForwarding{},
		&phase.ScheduleResume{},
		&phase.RegisterNode{},
		&phase.RunHooks{Stage: "after", Action: "apply"},
	)

	if a.NoReboot {
		log.Warnf("not rebooting because --no-reboot given, the startup script launches on the next boot")
	} else {
		a.Manager.AddPhase(&phase.Reboot{NoWait: a.NoWait})
	}

	a.Manager.AddPhase(&phase.Disconnect{})

	analytics.Client.Publish("apply-start", map[string]interface{}{})

	if err := a.Manager.Run(); err != nil {
		analytics.Client.Publish("apply-failure", map[string]interface{}{})
		log.Info(aurora.Red("==> Apply failed").String())
		return err
	}

	analytics.Client.Publish("apply-success", map[string]interface{}{"duration": time.Since(start)})

	duration := time.Since(start).Truncate(time.Second)
	text := fmt.Sprintf("==> Finished in %s", duration)
	log.Info(aurora.Green(text).String())

	log.Infof("FrogNet node %q version %s is now installed", a.Manager.Config.Spec.Network.Domain, a.Manager.Config.Spec.Payload.Version)

	return nil
}
