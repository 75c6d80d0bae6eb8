package analytics

import (
	"github.com/denisbrodbeck/machineid"
)

// MachineID returns an anonymized machine identifier. The same identifier is
// used as the node id when registering with the FrogNet backend.
func MachineID() (string, error) {
	return machineid.ProtectedID("frogctl")
}
