package logging

import (
	"github.com/sirupsen/logrus"

	"github.com/grovetools/nav/nav"
)

// Observer bridges nav.Observer notifications onto a component logger. It is
// the default sink the CLI injects so the core itself stays free of any
// process-wide logging state.
type Observer struct {
	entry *logrus.Entry
}

// NewObserver returns an observer logging to the given component.
func NewObserver(component string) *Observer {
	return &Observer{entry: NewLogger(component)}
}

// NewObserverWithEntry wraps an existing logger entry.
func NewObserverWithEntry(entry *logrus.Entry) *Observer {
	return &Observer{entry: entry}
}

// NoMove logs a failed cursor move at debug level; it is informational, not
// an error.
func (o *Observer) NoMove(reason string) {
	o.entry.WithField("reason", reason).Debug("no move possible")
}

// ItemCompleted logs an explicit completion.
func (o *Observer) ItemCompleted(item *nav.Item) {
	o.entry.WithField("id", item.ID).Debugf("Item %d marked as completed.", item.ID)
}
