package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch invalidates the cache whenever something under the content directory changes.
// The watcher runs until ctx is cancelled.
func (s *FileStore) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("content: create watcher: %w", err)
	}
	if err := s.addWatchDirs(watcher); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
					continue
				}
				if event.Has(fsnotify.Create) {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						_ = watcher.Add(event.Name)
					}
				}
				s.logger.Debug("content changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
				s.Invalidate()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Warn("content watcher error", zap.Error(err))
			}
		}
	}()
	return nil
}

func (s *FileStore) addWatchDirs(watcher *fsnotify.Watcher) error {
	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("content: watch %s: %w", s.dir, err)
	}
	for _, sub := range []string{postsDir, snippetsDir} {
		root := filepath.Join(s.dir, sub)
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return watcher.Add(path)
			}
			return nil
		})
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("content: watch %s: %w", root, err)
		}
	}
	return nil
}
