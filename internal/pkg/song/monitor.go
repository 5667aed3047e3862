package song

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reports every rewrite of the given file until the context is
// cancelled. The parent directory is watched rather than the file
// itself, editors that replace-on-save would otherwise detach the watch.
func Watch(ctx context.Context, path string) (<-chan string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	var change = make(chan string)

	go func() {
		<-ctx.Done()
		watcher.Close()
	}()

	go func() {
		defer close(change)
		target := filepath.Clean(path)
		for event := range watcher.Events {
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			select {
			case change <- event.Name:
			case <-ctx.Done():
				return
			}
		}
	}()

	return change, nil
}
