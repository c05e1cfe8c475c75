// Package fileutil provides single-call file helpers: read, write,
// append, delete, and non-recursive directory listing.
//
// Every operation acquires and releases its file handle within the
// call. The backing filesystem is an afero.Fs, so tests can run
// against an in-memory filesystem.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// fs is the backing filesystem. Tests swap in afero.NewMemMapFs().
var fs afero.Fs = afero.NewOsFs()

const appendFlags = os.O_APPEND | os.O_CREATE | os.O_WRONLY

// checkPath rejects blank paths before any filesystem call.
func checkPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrBlankPath
	}
	return nil
}

// ReadFile returns the contents of the file at path.
func ReadFile(path string) (string, error) {
	if err := checkPath(path); err != nil {
		return "", err
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteFile writes contents to the file at path, creating it if
// necessary and truncating it otherwise.
func WriteFile(path, contents string) error {
	if err := checkPath(path); err != nil {
		return err
	}
	if err := afero.WriteFile(fs, path, []byte(contents), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// AppendFile appends contents to the file at path, creating it if
// necessary. It returns the number of bytes written.
func AppendFile(path, contents string) (int, error) {
	if err := checkPath(path); err != nil {
		return 0, err
	}
	f, err := fs.OpenFile(path, appendFlags, 0644)
	if err != nil {
		return 0, fmt.Errorf("append %s: %w", path, err)
	}
	defer f.Close()

	n, err := f.WriteString(contents)
	if err != nil {
		return n, fmt.Errorf("append %s: %w", path, err)
	}
	return n, nil
}

// DeleteFile removes the file at path.
func DeleteFile(path string) error {
	if err := checkPath(path); err != nil {
		return err
	}
	if err := fs.Remove(path); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

// ReadDir returns the full paths of the immediate entries of the
// directory at path. It does not recurse.
func ReadDir(path string) ([]string, error) {
	if err := checkPath(path); err != nil {
		return nil, err
	}
	entries, err := afero.ReadDir(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", path, err)
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, filepath.Join(path, entry.Name()))
	}
	return paths, nil
}
