package cmd

import (
	"context"
	"flag"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/frognet/frogctl/config"
	"github.com/frognet/frogctl/phase"
)

func TestActionsChain(t *testing.T) {
	var calls []string
	f := func(name string, err error) func(*cli.Context) error {
		return func(*cli.Context) error {
			calls = append(calls, name)
			return err
		}
	}

	require.NoError(t, actions(f("a", nil), f("b", nil))(nil))
	require.Equal(t, []string{"a", "b"}, calls)

	calls = nil
	require.Error(t, actions(f("a", fmt.Errorf("fail")), f("b", nil))(nil))
	require.Equal(t, []string{"a"}, calls)
}

const testConfigYAML = `apiVersion: frogctl.frognet.io/v1
kind: node
metadata:
  name: test
spec:
  hosts:
    - ssh:
        address: 10.0.0.1
      uplinkInterface: eth0
  network:
    domain: pond.frognet.io
  payload:
    version: 1.2.3
`

func testContext(t *testing.T, configContent string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("config", configContent, "")
	ctx := cli.NewContext(cli.NewApp(), set, nil)
	ctx.Context = context.Background()
	return ctx
}

func TestInitManager(t *testing.T) {
	ctx := testContext(t, testConfigYAML)
	require.NoError(t, initManager(ctx))

	cfg, ok := ctx.Context.Value(ctxConfigKey{}).(*config.Config)
	require.True(t, ok)
	require.Equal(t, "pond.frognet.io", cfg.Spec.Network.Domain)
	require.Equal(t, "wlan0", cfg.Spec.Hosts.First().APInterface)

	manager, ok := ctx.Context.Value(ctxManagerKey{}).(*phase.Manager)
	require.True(t, ok)
	require.Same(t, cfg, manager.Config)
}

func TestInitManagerInvalidConfig(t *testing.T) {
	yamls := []string{
		"apiVersion: something/old\nkind: node\n",
		"apiVersion: frogctl.frognet.io/v1\nkind: cluster\n",
		"apiVersion: frogctl.frognet.io/v1\nkind: node\nspec:\n  hosts: []\n  payload:\n    version: 1.2.3\n",
	}
	for _, y := range yamls {
		require.Error(t, initManager(testContext(t, y)), y)
	}
}

func TestLoghookLevels(t *testing.T) {
	h := screenLoggerHook(2)
	require.Len(t, h.Levels(), 3)
}
