package nav

import (
	"fmt"

	"github.com/grovetools/nav/errors"
)

// State describes the progress of a single work item.
// The zero value is StateUnset (untouched).
type State string

const (
	StateUnset     State = ""
	StateViewed    State = "view"
	StateCompleted State = "completed"
)

// Valid reports whether the state is one of the three permitted values.
func (s State) Valid() bool {
	switch s {
	case StateUnset, StateViewed, StateCompleted:
		return true
	}
	return false
}

// String returns a human-readable name for the state.
func (s State) String() string {
	if s == StateUnset {
		return "unset"
	}
	return string(s)
}

// Item is a single unit of work. Items are owned by the data supplier and
// mutated in place by the Navigator: only State and Handlers ever change.
// Accessors return live references, so a collaborator may mutate item fields
// directly and the Navigator observes the latest values on its next call.
type Item struct {
	ID       int                    `json:"id" yaml:"id" toml:"id"`
	Name     string                 `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	State    State                  `json:"state" yaml:"state" toml:"state"`
	Handlers []string               `json:"handlers" yaml:"handlers" toml:"handlers"`
	Payload  map[string]interface{} `json:"payload,omitempty" yaml:"payload,omitempty" toml:"payload,omitempty"`
}

// Group is an ordered, non-empty sequence of items. Insertion order is
// significant and fixed for the lifetime of the Navigator.
type Group []*Item

// Dataset is the ordered sequence of groups the Navigator traverses.
type Dataset []Group

// Validate checks the structural invariants the Navigator relies on: at least
// one group, no empty groups, and every item carrying a permitted state and a
// non-nil handlers list.
func (d Dataset) Validate() error {
	if len(d) == 0 {
		return errors.DatasetInvalid("dataset has no groups")
	}
	for gi, group := range d {
		if len(group) == 0 {
			return errors.DatasetInvalid(fmt.Sprintf("group %d is empty", gi)).
				WithDetail("group", gi)
		}
		for ii, item := range group {
			if item == nil {
				return errors.DatasetInvalid(fmt.Sprintf("group %d item %d is nil", gi, ii)).
					WithDetail("group", gi).WithDetail("item", ii)
			}
			if !item.State.Valid() {
				return errors.DatasetInvalid(
					fmt.Sprintf("group %d item %d has state %q (want one of \"\", \"view\", \"completed\")", gi, ii, string(item.State))).
					WithDetail("group", gi).WithDetail("item", ii).WithDetail("state", string(item.State))
			}
			if item.Handlers == nil {
				return errors.DatasetInvalid(fmt.Sprintf("group %d item %d has no handlers list", gi, ii)).
					WithDetail("group", gi).WithDetail("item", ii)
			}
		}
	}
	return nil
}

// Snapshot is the serializable view of the cursor returned by CurrentState.
type Snapshot struct {
	GroupIndex int   `json:"current_group"`
	ItemIndex  int   `json:"current_order"`
	Item       *Item `json:"item"`
}
