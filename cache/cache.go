// Package cache keeps downloaded payload tarballs around between frogctl
// runs.
package cache

import (
	"fmt"
	"os"
	"path"

	"golang.org/x/sys/unix"
)

// EnsureDir creates the cache directory unless a writable one already exists
func EnsureDir(dir string) error {
	err := os.MkdirAll(dir, 0755)

	if err == nil || os.IsExist(err) {
		if unix.Access(dir, unix.W_OK) != nil {
			return fmt.Errorf("not writable: %s", dir)
		}
	}

	return err
}

// File returns a path to a file in the cache dir
func File(parts ...string) string {
	parts = append([]string{Dir()}, parts...)
	return path.Join(parts...)
}

// GetFile returns a file from the cache directory if it exists. Zero length
// cached files are treated as missing, they're what an aborted download
// leaves behind.
func GetFile(parts ...string) (string, error) {
	fpath := File(parts...)

	stat, err := os.Stat(fpath)
	if os.IsNotExist(err) {
		return fpath, err
	}

	if stat.Size() == 0 {
		return fpath, fmt.Errorf("cached file %s is empty", fpath)
	}

	return fpath, nil
}

// GetOrCreate returns a cached file's path, running the create function to
// produce the file when it is missing
func GetOrCreate(create func(string) error, parts ...string) (string, error) {
	fpath, err := GetFile(parts...)
	if err != nil {
		err := EnsureDir(path.Dir(fpath))
		if err != nil {
			return "", err
		}
		if err := create(fpath); err != nil {
			return "", err
		}
	}

	return fpath, nil
}
