// Package testutil holds shared fixtures for dataset and navigator tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grovetools/nav/dataset"
	"github.com/grovetools/nav/nav"
)

// SampleDocument builds a small three-group document. IDs are sequential
// starting at 1 so tests can address items by number.
func SampleDocument() *dataset.Document {
	id := 0
	group := func(name string, count int) dataset.Group {
		g := dataset.Group{Name: name}
		for i := 0; i < count; i++ {
			id++
			g.Items = append(g.Items, nav.Item{
				ID:       id,
				Name:     fmt.Sprintf("Item %d", id),
				Handlers: []string{},
			})
		}
		return g
	}

	return &dataset.Document{
		Version: "1.0",
		Groups: []dataset.Group{
			group("Alpha", 3),
			group("Beta", 2),
			group("Gamma", 4),
		},
	}
}

// WriteDataset saves the document under dir and returns the file path.
func WriteDataset(t *testing.T, dir string, doc *dataset.Document, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, dataset.Save(doc, path))
	return path
}

// WriteConfig writes a nav.yml with the given content under dir.
func WriteConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "nav.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// Recorder is a nav.Observer that keeps every notification for assertions.
type Recorder struct {
	NoMoves   []string
	Completed []int
}

func (r *Recorder) NoMove(reason string) {
	r.NoMoves = append(r.NoMoves, reason)
}

func (r *Recorder) ItemCompleted(item *nav.Item) {
	r.Completed = append(r.Completed, item.ID)
}

// Reset clears recorded notifications.
func (r *Recorder) Reset() {
	r.NoMoves = nil
	r.Completed = nil
}
