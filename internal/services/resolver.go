// Package services implements the filesystem browsing logic behind the
// HTTP handlers: path resolution, navigation metadata, directory
// listings and file previews.
package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound is returned when a resolved path does not exist.
	ErrNotFound = errors.New("path not found")
	// ErrTraversal is returned when a request path escapes the root.
	ErrTraversal = errors.New("path escapes root directory")
)

// Resolve maps an untrusted request path onto the filesystem below
// root. The joined path is cleaned and must stay equal to or below
// root; anything else is rejected with ErrTraversal before the
// filesystem is touched. Returns the absolute path and its stat info.
func Resolve(root, requestPath string) (string, os.FileInfo, error) {
	fsPath := filepath.Join(root, filepath.FromSlash(requestPath))

	if fsPath != root && !strings.HasPrefix(fsPath, root+string(filepath.Separator)) {
		return "", nil, fmt.Errorf("resolving %q: %w", requestPath, ErrTraversal)
	}

	info, err := os.Stat(fsPath)
	if os.IsNotExist(err) {
		return "", nil, fmt.Errorf("resolving %q: %w", requestPath, ErrNotFound)
	}
	if err != nil {
		return "", nil, fmt.Errorf("stat %q: %w", fsPath, err)
	}

	return fsPath, info, nil
}
