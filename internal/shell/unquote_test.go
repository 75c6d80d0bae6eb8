package shell_test

import (
	"testing"

	"github.com/frognet/frogctl/internal/shell"
	"github.com/stretchr/testify/require"
)

func TestUnquote(t *testing.T) {
	t.Run("no quotes", func(t *testing.T) {
		out, err := shell.Unquote("foo bar")
		require.NoError(t, err)
		require.Equal(t, "foo bar", out)
	})

	t.Run("simple quotes", func(t *testing.T) {
		out, err := shell.Unquote("\"foo\" 'bar'")
		require.NoError(t, err)
		require.Equal(t, "foo bar", out)
	})

	t.Run("mid-word quotes", func(t *testing.T) {
		out, err := shell.Unquote("f\"o\"o b'a'r")
		require.NoError(t, err)
		require.Equal(t, "foo bar", out)
	})

	t.Run("complex quotes", func(t *testing.T) {
		out, err := shell.Unquote(`'"'"'foo'"'"'`)
		require.NoError(t, err)
		require.Equal(t, `"'foo'"`, out)
	})

	t.Run("escaped quotes", func(t *testing.T) {
		out, err := shell.Unquote("\\'foo\\' 'bar'")
		require.NoError(t, err)
		require.Equal(t, "'foo' bar", out)
	})

	t.Run("windows path stays intact", func(t *testing.T) {
		out, err := shell.Unquote(`C:\var\lib\frognet`)
		require.NoError(t, err)
		require.Equal(t, `C:\var\lib\frognet`, out)
	})

	t.Run("escaped space", func(t *testing.T) {
		out, err := shell.Unquote(`foo\ bar`)
		require.NoError(t, err)
		require.Equal(t, "foo bar", out)
	})
}

func TestSplit(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		out, err := shell.Split("foo bar baz")
		require.NoError(t, err)
		require.Equal(t, []string{"foo", "bar", "baz"}, out)
	})

	t.Run("quoted segment", func(t *testing.T) {
		out, err := shell.Split(`foo "bar baz"`)
		require.NoError(t, err)
		require.Equal(t, []string{"foo", "bar baz"}, out)
	})

	t.Run("mismatched quotes", func(t *testing.T) {
		_, err := shell.Split(`foo "bar`)
		require.ErrorIs(t, err, shell.ErrMismatchedQuotes)
	})
}
