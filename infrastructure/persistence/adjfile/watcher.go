package adjfile

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"socialnet-backend/domain/core/aggregates"
)

// Watch reloads the network whenever the file at path changes on disk and
// hands the freshly decoded network to onReload. The parent directory is
// watched rather than the file itself so that atomic rename-into-place
// writes are observed. Blocks until ctx is cancelled.
func (s *Store) Watch(ctx context.Context, path string, onReload func(*aggregates.Network)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	target := filepath.Clean(path)
	s.logger.Info("Watching network file", zap.String("path", target))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			network, err := s.Load(target)
			if err != nil {
				// Keep serving the previous network
				s.logger.Warn("Reload failed, keeping current network",
					zap.String("path", target),
					zap.Error(err),
				)
				continue
			}
			onReload(network)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("File watcher error", zap.Error(err))
		}
	}
}
