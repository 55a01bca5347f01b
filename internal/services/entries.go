package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/linuskmr/cloud/internal/models"
	"github.com/linuskmr/cloud/internal/utils"
)

// ListEntries summarizes every immediate child of dir for display,
// in directory order (lexical, per os.ReadDir).
func ListEntries(dir string) ([]models.DirEntry, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %q: %w", dir, err)
	}

	entries := make([]models.DirEntry, 0, len(children))
	for _, child := range children {
		entry, err := SummarizeEntry(filepath.Join(dir, child.Name()))
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// SummarizeEntry builds the display row for a single directory child:
// name, relative link (with a trailing "/" for directories) and a
// human-formatted size.
func SummarizeEntry(path string) (models.DirEntry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.DirEntry{}, fmt.Errorf("stat %q: %w", path, err)
	}

	name := filepath.Base(path)
	if !info.IsDir() {
		return models.DirEntry{
			Name: name,
			Path: name,
			Size: utils.FormatBytes(info.Size()),
		}, nil
	}

	size, err := directorySize(path)
	if err != nil {
		return models.DirEntry{}, err
	}
	return models.DirEntry{
		Name: name,
		Path: name + "/",
		Size: utils.FormatBytes(size),
	}, nil
}

// directorySize sums the sizes of regular files exactly two levels
// below dir, i.e. the files inside dir's immediate subdirectories.
// Files directly inside dir and anything deeper are not counted.
func directorySize(dir string) (int64, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("listing %q: %w", dir, err)
	}

	var total int64
	for _, child := range children {
		if !child.IsDir() {
			continue
		}
		grandchildren, err := os.ReadDir(filepath.Join(dir, child.Name()))
		if err != nil {
			return 0, fmt.Errorf("listing %q: %w", filepath.Join(dir, child.Name()), err)
		}
		for _, grandchild := range grandchildren {
			if grandchild.IsDir() {
				continue
			}
			info, err := grandchild.Info()
			if err != nil {
				return 0, fmt.Errorf("stat %q: %w", grandchild.Name(), err)
			}
			total += info.Size()
		}
	}
	return total, nil
}
