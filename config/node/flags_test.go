package node

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlagsAddUnlessExist(t *testing.T) {
	flags := Flags{"--mode=ap"}
	flags.AddUnlessExist("--mode=uplink")
	require.Len(t, flags, 1)
	require.Equal(t, "ap", flags.GetValue("--mode"))

	flags.AddUnlessExist("--verbose")
	require.Len(t, flags, 2)
	require.True(t, flags.Include("--verbose"))
}

func TestFlagsAddOrReplace(t *testing.T) {
	flags := Flags{"--mode=ap"}
	flags.AddOrReplace("--mode=uplink")
	require.Len(t, flags, 1)
	require.Equal(t, "uplink", flags.GetValue("--mode"))
}

func TestFlagsGetValue(t *testing.T) {
	flags := Flags{"--name=lily pad", "--single"}
	require.Equal(t, "lily pad", flags.GetValue("--name"))
	require.Equal(t, "", flags.GetValue("--single"))
	require.Equal(t, "", flags.GetValue("--missing"))
}

func TestFlagsDelete(t *testing.T) {
	flags := Flags{"--a=1", "--b=2"}
	flags.Delete("--a")
	require.Equal(t, Flags{"--b=2"}, flags)
}

func TestFlagsJoinQuotesValues(t *testing.T) {
	flags := Flags{"--name=lily pad", "--single"}
	require.Equal(t, `--name="lily pad" --single`, flags.Join())
}
