package envfile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	f, err := ParseString(`# frognet node state
FROGNET_DOMAIN="pond.frognet.io"
export FROGNET_NODE_IP=10.11.12.1

FROGNET_ADMIN_PASSWORD='s3cr3t with spaces'
CUSTOM_KEY=plain
`)
	require.NoError(t, err)
	require.Equal(t, "pond.frognet.io", f.Get(KeyDomain))
	require.Equal(t, "10.11.12.1", f.Get(KeyNodeIP))
	require.Equal(t, "s3cr3t with spaces", f.Get(KeyAdminPassword))
	require.Equal(t, "plain", f.Get("CUSTOM_KEY"))
	require.True(t, f.Has("CUSTOM_KEY"))
	require.False(t, f.Has("MISSING"))
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := ParseString("this is not an env file\n")
	require.Error(t, err)
}

func TestRoundTripPreservesUnknownKeysAndComments(t *testing.T) {
	in := "# header comment\nCUSTOM_KEY=value\n\nFROGNET_DOMAIN=old.example\n"
	f, err := ParseString(in)
	require.NoError(t, err)

	f.Set(KeyDomain, "new.example")
	out := f.String()
	require.Contains(t, out, "# header comment")
	require.Contains(t, out, "CUSTOM_KEY=value")
	require.Contains(t, out, "FROGNET_DOMAIN=new.example")

	// order must be stable
	f2, err := ParseString(out)
	require.NoError(t, err)
	require.Equal(t, []string{"CUSTOM_KEY", KeyDomain}, f2.Keys())
}

func TestQuoting(t *testing.T) {
	f := New()
	f.Set(KeyStartupFlags, `--mode ap --name "lily pad"`)
	out := f.String()

	f2, err := ParseString(out)
	require.NoError(t, err)
	require.Equal(t, `--mode ap --name "lily pad"`, f2.Get(KeyStartupFlags))
}

func TestSetUnset(t *testing.T) {
	f := New()
	f.Set("A", "1")
	f.Set("B", "2")
	f.Set("A", "3")
	require.Equal(t, "3", f.Get("A"))
	require.Equal(t, []string{"A", "B"}, f.Keys())

	f.Unset("A")
	require.False(t, f.Has("A"))
	require.Equal(t, map[string]string{"B": "2"}, f.Map())
}
