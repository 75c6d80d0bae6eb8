package action

import (
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"

	"github.com/frognet/frogctl/analytics"
	"github.com/frognet/frogctl/integration/frogweb"
	"github.com/frognet/frogctl/version"
)

// Register announces this machine to the FrogNet backend
type Register struct {
	Email    string
	Domain   string
	Endpoint string
	Stdout   io.Writer
}

// Run the Register action
func (r Register) Run() error {
	if r.Email == "" {
		stdoutFile, ok := r.Stdout.(*os.File)
		if !ok || !isatty.IsTerminal(stdoutFile.Fd()) {
			return fmt.Errorf("--email is required")
		}
		prompt := &survey.Input{
			Message: "Operator email address for the FrogNet registry:",
		}
		if err := survey.AskOne(prompt, &r.Email, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	id, err := analytics.MachineID()
	if err != nil {
		return fmt.Errorf("failed to determine a machine id: %w", err)
	}

	reg, err := frogweb.Register(r.Endpoint, id, r.Email, r.Domain, version.Version)
	if err != nil {
		return err
	}

	log.Infof("registration %s", reg.Status)
	if reg.NodeID != "" {
		log.Infof("node id: %s", reg.NodeID)
	}

	return nil
}
