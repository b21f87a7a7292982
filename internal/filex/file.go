// Package filex contains path helpers for database files given on the
// command line.
package filex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotAFile is returned by RequireFile when the path is a directory.
var ErrNotAFile = errors.New("not a regular file")

// userHomeDir is a test seam for os.UserHomeDir.
var userHomeDir = os.UserHomeDir

// ExpandPath resolves a leading "~" to the user's home directory and cleans
// the result. Paths without "~" are returned cleaned but otherwise as given.
func ExpandPath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		home, err := userHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		return filepath.Join(home, filepath.FromSlash(strings.ReplaceAll(p[1:], `\`, "/"))), nil
	}
	return filepath.Clean(p), nil
}

// RequireFile checks that p exists and is a regular file. A missing file is
// reported with an error wrapping os.ErrNotExist.
func RequireFile(p string) error {
	fi, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("database file %s: %w", p, os.ErrNotExist)
		}
		return fmt.Errorf("stat %s: %w", p, err)
	}
	if fi.IsDir() {
		return fmt.Errorf("%s: %w", p, ErrNotAFile)
	}
	return nil
}

// EnsureParentDir creates the directory that will hold p.
func EnsureParentDir(p string) error {
	dir := filepath.Dir(p)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}
