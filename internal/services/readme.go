package services

import (
	"os"
	"path/filepath"
)

// TryReadme reads the README.md inside dir if one exists. A missing
// README is the normal case and reports ok=false; the content is
// returned verbatim, leaving any rendering to the view layer.
func TryReadme(dir string) (string, bool) {
	content, err := os.ReadFile(filepath.Join(dir, "README.md"))
	if err != nil {
		return "", false
	}
	return string(content), true
}
