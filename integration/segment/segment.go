package segment

import (
	"runtime"

	"github.com/frognet/frogctl/analytics"
	"github.com/frognet/frogctl/version"
	segment "github.com/segmentio/analytics-go"
	log "github.com/sirupsen/logrus"
)

// WriteKey is the segment write key, set during the release build. When left
// empty, telemetry stays disabled.
var WriteKey = ""
var Verbose bool

var ctx = &segment.Context{
	App: segment.AppInfo{
		Name:      "frogctl",
		Version:   version.Version,
		Build:     version.GitCommit,
		Namespace: "frognet",
	},
	OS: segment.OSInfo{
		Name: runtime.GOOS + " " + runtime.GOARCH,
	},
}

type Client struct {
	client    segment.Client
	machineID string
}

func NewClient() (*Client, error) {
	client, err := segment.NewWithConfig(WriteKey, segment.Config{Verbose: Verbose})
	if err != nil {
		return nil, err
	}
	id, err := analytics.MachineID()
	if err != nil {
		return nil, err
	}
	return &Client{
		client:    client,
		machineID: id,
	}, nil
}

func (c Client) Publish(event string, props map[string]interface{}) error {
	log.Debugf("segment event %s - properties: %+v", event, props)
	c.client.Enqueue(segment.Track{
		Context:     ctx,
		AnonymousId: c.machineID,
		Event:       event,
		Properties:  props,
	})
	return nil
}

func (c Client) Close() {
	c.client.Close()
}
