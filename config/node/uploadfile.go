package node

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UploadFile describes a file or a glob of files to be uploaded to the host
type UploadFile struct {
	Name           string `yaml:"name,omitempty"`
	Source         string `yaml:"src"`
	DestinationDir string `yaml:"dstDir"`
	PermString     string `yaml:"perm,omitempty" default:"0644"`
}

func (u UploadFile) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Source, validation.Required),
		validation.Field(&u.DestinationDir, validation.Required),
		validation.Field(&u.PermString, validation.By(validPerm)),
	)
}

func validPerm(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	perm, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return fmt.Errorf("perm %q is not an octal mode: %w", s, err)
	}
	if perm == 0 || perm > 0o777 {
		return fmt.Errorf("perm %q is out of range", s)
	}
	return nil
}

// UnmarshalYAML converts a numeric perm into a string representation
func (u *UploadFile) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type uploadFile struct {
		Name           string      `yaml:"name,omitempty"`
		Source         string      `yaml:"src"`
		DestinationDir string      `yaml:"dstDir"`
		Perm           interface{} `yaml:"perm,omitempty"`
	}
	var yu uploadFile
	if err := unmarshal(&yu); err != nil {
		return err
	}

	u.Name = yu.Name
	u.Source = yu.Source
	u.DestinationDir = yu.DestinationDir

	switch perm := yu.Perm.(type) {
	case nil:
		u.PermString = "0644"
	case int:
		u.PermString = "0" + strconv.FormatInt(int64(perm), 8)
	case string:
		u.PermString = perm
	default:
		return fmt.Errorf("invalid perm: %v", yu.Perm)
	}

	return validPerm(u.PermString)
}

// Resolve expands the source glob into a list of local files
func (u *UploadFile) Resolve() ([]string, error) {
	base, pattern := doublestar.SplitPattern(filepath.ToSlash(u.Source))
	sources, err := doublestar.Glob(os.DirFS(base), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", u.Source, err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no files match %s", u.Source)
	}
	for i, s := range sources {
		sources[i] = filepath.Join(base, s)
	}
	return sources, nil
}

// String returns a name for the upload for logging
func (u *UploadFile) String() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Source
}
