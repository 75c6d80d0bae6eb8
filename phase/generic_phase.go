package phase

import (
	"github.com/frognet/frogctl/analytics"
	"github.com/frognet/frogctl/config"
	"github.com/frognet/frogctl/config/node"
)

// hosts are processed in parallel in batches of this size
const concurrentWorkers = 10

// GenericPhase is a basic phase which gets a config via prepare, sets it into p.Config
type GenericPhase struct {
	analytics.Phase
	Config *config.Config
}

// Prepare the phase
func (p *GenericPhase) Prepare(c *config.Config) error {
	p.Config = c
	return nil
}

func (p *GenericPhase) parallelDo(hosts node.Hosts, funcs ...func(h *node.Host) error) error {
	return hosts.ParallelEach(funcs...)
}

func (p *GenericPhase) parallelDoBatched(hosts node.Hosts, funcs ...func(h *node.Host) error) error {
	return hosts.BatchedParallelEach(concurrentWorkers, funcs...)
}
