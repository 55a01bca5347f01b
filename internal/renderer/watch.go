package renderer

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch re-parses the templates whenever a file below the views
// directory changes. Used by the dev server so template edits show up
// without a restart. The watcher stops when ctx is cancelled.
func (t *TemplateRenderer) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := watcher.Add(t.dir); err != nil {
		watcher.Close()
		return err
	}
	// fsnotify watches are not recursive, so each subdirectory is
	// added explicitly.
	entries, err := os.ReadDir(t.dir)
	if err != nil {
		watcher.Close()
		return err
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := watcher.Add(filepath.Join(t.dir, entry.Name())); err != nil {
			log.Printf("Warning: cannot watch template directory %s: %v", entry.Name(), err)
		}
	}

	go t.watchLoop(ctx, watcher)
	return nil
}

func (t *TemplateRenderer) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Printf("Template change detected: %s", event.Name)
			if err := t.Reload(); err != nil {
				// Keep serving the previous template set.
				log.Printf("Template reload failed: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Template watcher error: %v", err)
		}
	}
}
