package node

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestPermStringUnmarshalWithOctal(t *testing.T) {
	u := UploadFile{}
	yml := []byte(`
src: .
dstDir: .
perm: 0755
`)

	require.NoError(t, yaml.Unmarshal(yml, &u))
	require.Equal(t, "0755", u.PermString)
}

func TestPermStringUnmarshalWithString(t *testing.T) {
	u := UploadFile{}
	yml := []byte(`
src: .
dstDir: .
perm: "0755"
`)

	require.NoError(t, yaml.Unmarshal(yml, &u))
	require.Equal(t, "0755", u.PermString)
}

func TestPermStringUnmarshalWithInvalidString(t *testing.T) {
	u := UploadFile{}
	yml := []byte(`
src: .
dstDir: .
perm: u+rwx
`)

	require.Error(t, yaml.Unmarshal(yml, &u))
}

func TestPermStringUnmarshalWithInvalidNumber(t *testing.T) {
	u := UploadFile{}
	yml := []byte(`
src: .
dstDir: .
perm: 0800
`)

	require.Error(t, yaml.Unmarshal(yml, &u))
}

func TestPermStringDefault(t *testing.T) {
	u := UploadFile{}
	yml := []byte(`
src: .
dstDir: .
`)

	require.NoError(t, yaml.Unmarshal(yml, &u))
	require.Equal(t, "0644", u.PermString)
}

func TestResolveGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.conf"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.conf"), []byte("b"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte("c"), 0644))

	u := UploadFile{Source: filepath.Join(dir, "*.conf"), DestinationDir: "/etc/frognet"}
	sources, err := u.Resolve()
	require.NoError(t, err)
	require.Len(t, sources, 2)

	u = UploadFile{Source: filepath.Join(dir, "*.missing"), DestinationDir: "/etc/frognet"}
	_, err = u.Resolve()
	require.Error(t, err)
}

func TestUploadFileValidate(t *testing.T) {
	u := UploadFile{Source: "x", DestinationDir: "/tmp", PermString: "0644"}
	require.NoError(t, u.Validate())

	u = UploadFile{DestinationDir: "/tmp"}
	require.Error(t, u.Validate())
}
