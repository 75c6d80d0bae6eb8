package phase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frognet/frogctl/config"
)

type conditionalPhase struct {
	shouldrunCalled bool
	runCalled       bool
}

func (p *conditionalPhase) Title() string {
	return "conditional phase"
}

func (p *conditionalPhase) ShouldRun() bool {
	p.shouldrunCalled = true
	return false
}

func (p *conditionalPhase) Run() error {
	p.runCalled = true
	return nil
}

func TestConditionalPhase(t *testing.T) {
	m := Manager{}
	p := &conditionalPhase{}
	m.AddPhase(p)
	require.NoError(t, m.Run())
	require.False(t, p.runCalled, "run was not called")
	require.True(t, p.shouldrunCalled, "shouldrun was not called")
}

type configPhase struct {
	receivedConfig bool
}

func (p *configPhase) Title() string {
	return "config phase"
}

func (p *configPhase) Prepare(c *config.Config) error {
	p.receivedConfig = c != nil
	return nil
}

func (p *configPhase) Run() error {
	return nil
}

func TestConfigPhase(t *testing.T) {
	m := NewManager(&config.Config{})
	p := &configPhase{}
	m.AddPhase(p)
	require.NoError(t, m.Run())
	require.True(t, p.receivedConfig, "config was not received")
}

type hookedPhase struct {
	beforeCalled bool
	afterCalled  bool
	err          error
}

func (p *hookedPhase) Title() string {
	return "hooked phase"
}

func (p *hookedPhase) Before(title string) error {
	p.beforeCalled = true
	return nil
}

func (p *hookedPhase) After(err error) error {
	p.afterCalled = true
	p.err = err
	return nil
}

func (p *hookedPhase) Run() error {
	return fmt.Errorf("run failed")
}

func TestHookedPhase(t *testing.T) {
	m := Manager{}
	p := &hookedPhase{}
	m.AddPhase(p)
	require.Error(t, m.Run())
	require.True(t, p.beforeCalled, "before hook was not called")
	require.True(t, p.afterCalled, "after hook was not called")
	require.EqualError(t, p.err, "run failed")
}

type cleanupPhase struct {
	fail          bool
	cleanupCalled bool
}

func (p *cleanupPhase) Title() string {
	return "cleanup phase"
}

func (p *cleanupPhase) Run() error {
	if p.fail {
		return fmt.Errorf("run failed")
	}
	return nil
}

func (p *cleanupPhase) CleanUp() {
	p.cleanupCalled = true
}

func TestCleanupOnFailure(t *testing.T) {
	m := Manager{}
	ok := &cleanupPhase{}
	failing := &cleanupPhase{fail: true}
	m.AddPhase(ok, failing)
	require.Error(t, m.Run())
	require.True(t, ok.cleanupCalled, "cleanup was not called for the completed phase")
	require.True(t, failing.cleanupCalled, "cleanup was not called for the failed phase")
}

func TestNoCleanupOnSuccess(t *testing.T) {
	m := Manager{}
	p := &cleanupPhase{}
	m.AddPhase(p)
	require.NoError(t, m.Run())
	require.False(t, p.cleanupCalled, "cleanup was called on success")
}
