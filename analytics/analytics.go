package analytics

import (
	log "github.com/sirupsen/logrus"
)

type publisher interface {
	Publish(string, map[string]interface{}) error
	Close()
}

// Client receives the telemetry events emitted during frogctl runs
var Client publisher

// NullClient discards events. It is the default until telemetry is
// initialized and stays in place when telemetry is disabled.
type NullClient struct{}

func (c *NullClient) Initialize() error {
	return nil
}

// Publish logs the discarded event on the trace level
func (c *NullClient) Publish(event string, props map[string]interface{}) error {
	log.Tracef("analytics event %s - properties: %+v", event, props)
	return nil
}

func (c *NullClient) Close() {}

func init() {
	Client = &NullClient{}
}
