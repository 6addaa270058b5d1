package navigator

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/grovetools/nav/dataset"
	"github.com/grovetools/nav/logging"
)

// reloadMsg is sent when the watched dataset file has changed on disk.
type reloadMsg struct {
	doc *dataset.Document
	err error
}

// watchDataset starts an fsnotify watcher on the dataset file and reloads it
// on every write. Watching the parent directory survives the
// rename-and-replace pattern editors use. Closing done tears the watcher
// down and ends the goroutine.
func watchDataset(path string, done <-chan struct{}) (<-chan reloadMsg, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	logger := logging.NewLogger("watcher")
	ch := make(chan reloadMsg)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-done:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				logger.WithField("path", path).Debug("dataset file changed, reloading")
				doc, err := dataset.Load(path)
				select {
				case ch <- reloadMsg{doc: doc, err: err}:
				case <-done:
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				select {
				case ch <- reloadMsg{err: err}:
				case <-done:
					return
				}
			}
		}
	}()

	return ch, nil
}

// waitForReload returns a command that delivers the next reload event.
func waitForReload(ch <-chan reloadMsg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}
