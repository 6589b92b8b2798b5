package commands

import (
	"context"

	"github.com/fsnotify/fsnotify"
)

// watchFiles reformats files in place whenever they change, until the
// context is canceled. Rewriting a watched file emits a write event for our
// own change; those land as no-ops because the content is already formatted.
func (r *FormatRun) watchFiles(ctx context.Context, files []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, path := range files {
		if err := watcher.Add(path); err != nil {
			return err
		}
	}
	r.Logger.Info("watching for changes", "files", len(files))

	write := *r
	write.Write = true
	write.Watch = false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			r.Logger.Debug("change detected", "path", event.Name)
			if _, err := write.formatFile(event.Name); err != nil {
				r.Logger.Error("reformat failed", "path", event.Name, "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.Logger.Error("watch error", "error", err)
		}
	}
}
