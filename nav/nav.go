// Package nav implements the work-queue traversal engine: a cursor over a
// two-level hierarchy of groups and items, with per-item progress tracking
// and handler-presence bookkeeping.
//
// The Navigator is single-threaded and synchronous. It assumes exclusive,
// serialized access to the dataset by one logical caller at a time; when
// several Navigator instances (one per handler) share a dataset, their
// mutating calls must be serialized externally. The handlers-set bookkeeping
// lets the instances coexist correctly as long as calls are interleaved,
// never overlapped.
package nav

import (
	"slices"

	"github.com/grovetools/nav/errors"
)

// Navigator tracks a single handler's position in a dataset. It never creates,
// deletes, or resizes groups or items: only item State and Handlers fields are
// mutated, in place.
type Navigator struct {
	data       Dataset
	handler    string
	groupIndex int
	itemIndex  int

	groupNavigation bool
	autoAdvance     bool

	observer Observer
}

// Option configures a Navigator at construction time.
type Option func(*Navigator)

// WithGroupNavigation allows NextItem/PreviousItem to cross group boundaries
// when the current group is exhausted.
func WithGroupNavigation(enabled bool) Option {
	return func(n *Navigator) { n.groupNavigation = enabled }
}

// WithAutoAdvance switches movement to claim-and-advance semantics: claiming
// marks items completed, and movement skips items other handlers already hold.
func WithAutoAdvance(enabled bool) Option {
	return func(n *Navigator) { n.autoAdvance = enabled }
}

// WithObserver injects the notification sink for no-move and completion events.
func WithObserver(o Observer) Option {
	return func(n *Navigator) { n.observer = o }
}

// New validates the dataset and returns a Navigator with the cursor at the
// first item of the first group. The starting item is not claimed until the
// first movement call (or an explicit Start).
func New(data Dataset, handler string, opts ...Option) (*Navigator, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	n := &Navigator{
		data:    data,
		handler: handler,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// current returns the item under the cursor. The dataset is validated at
// construction and never resized, so the cursor indices are always in bounds
// here.
func (n *Navigator) current() *Item {
	return n.data[n.groupIndex][n.itemIndex]
}

// claim records the handler as viewing the current item, advancing its state.
// In auto-advance mode opening an item completes it outright.
func (n *Navigator) claim(item *Item) {
	if !slices.Contains(item.Handlers, n.handler) {
		item.Handlers = append(item.Handlers, n.handler)
	}
	if n.autoAdvance {
		item.State = StateCompleted
	} else if item.State != StateCompleted {
		item.State = StateViewed
	}
}

// unclaim removes the handler's viewing record. An item nobody holds reverts
// to unset unless it was completed; completion is sticky.
func (n *Navigator) unclaim(item *Item) {
	if i := slices.Index(item.Handlers, n.handler); i >= 0 {
		item.Handlers = slices.Delete(item.Handlers, i, i+1)
	}
	if len(item.Handlers) == 0 && item.State != StateCompleted {
		item.State = StateUnset
	}
}

// nextItemIndex selects the next in-group index, or -1 when no move is
// possible. In manual mode this is pure sequential stepping. In auto-advance
// mode the scan is cursor-relative: the nearest unset item strictly after the
// cursor wins, then the nearest viewed one. No wrapping.
func (n *Navigator) nextItemIndex() int {
	group := n.data[n.groupIndex]
	if !n.autoAdvance {
		if n.itemIndex < len(group)-1 {
			return n.itemIndex + 1
		}
		return -1
	}
	for i := n.itemIndex + 1; i < len(group); i++ {
		if group[i].State == StateUnset {
			return i
		}
	}
	for i := n.itemIndex + 1; i < len(group); i++ {
		if group[i].State == StateViewed {
			return i
		}
	}
	return -1
}

// previousItemIndex mirrors nextItemIndex with strictly-before ordering.
// Unlike the forward scan it falls back to completed items as a last resort.
func (n *Navigator) previousItemIndex() int {
	group := n.data[n.groupIndex]
	if !n.autoAdvance {
		if n.itemIndex > 0 {
			return n.itemIndex - 1
		}
		return -1
	}
	for i := n.itemIndex - 1; i >= 0; i-- {
		if group[i].State == StateUnset {
			return i
		}
	}
	for i := n.itemIndex - 1; i >= 0; i-- {
		if group[i].State == StateViewed {
			return i
		}
	}
	for i := n.itemIndex - 1; i >= 0; i-- {
		if group[i].State == StateCompleted {
			return i
		}
	}
	return -1
}

// enterGroupForward positions the cursor after crossing into the current
// group from the front. In auto-advance mode it lands on the first unset item,
// falling back to index 0 when the whole group is already claimed or completed.
func (n *Navigator) enterGroupForward() {
	n.itemIndex = 0
	if !n.autoAdvance {
		return
	}
	group := n.data[n.groupIndex]
	for i := range group {
		if group[i].State == StateUnset {
			n.itemIndex = i
			return
		}
	}
}

// enterGroupBackward positions the cursor after crossing into the current
// group from the back, landing on the last unset item or falling back to the
// last index.
func (n *Navigator) enterGroupBackward() {
	group := n.data[n.groupIndex]
	n.itemIndex = len(group) - 1
	if !n.autoAdvance {
		return
	}
	for i := len(group) - 1; i >= 0; i-- {
		if group[i].State == StateUnset {
			n.itemIndex = i
			return
		}
	}
}

// NextItem moves the cursor to the next item, crossing into the next group
// when group navigation is enabled and the current group is exhausted. It
// reports whether the cursor moved; when it did not, claim bookkeeping still
// runs on the unchanged current item.
func (n *Navigator) NextItem() bool {
	n.unclaim(n.current())
	moved := false
	if idx := n.nextItemIndex(); idx >= 0 {
		n.itemIndex = idx
		moved = true
	} else if n.groupNavigation && n.groupIndex < len(n.data)-1 {
		n.groupIndex++
		n.enterGroupForward()
		moved = true
	} else {
		n.notifyNoMove("at the last item in the current group")
	}
	n.claim(n.current())
	return moved
}

// PreviousItem moves the cursor to the previous item, crossing into the
// previous group when group navigation is enabled.
func (n *Navigator) PreviousItem() bool {
	n.unclaim(n.current())
	moved := false
	if idx := n.previousItemIndex(); idx >= 0 {
		n.itemIndex = idx
		moved = true
	} else if n.groupNavigation && n.groupIndex > 0 {
		n.groupIndex--
		n.enterGroupBackward()
		moved = true
	} else {
		n.notifyNoMove("at the first item in the current group")
	}
	n.claim(n.current())
	return moved
}

// NextPage moves the cursor into the next group unconditionally (group
// navigation does not apply to page moves).
func (n *Navigator) NextPage() bool {
	n.unclaim(n.current())
	moved := false
	if n.groupIndex < len(n.data)-1 {
		n.groupIndex++
		n.enterGroupForward()
		moved = true
	} else {
		n.notifyNoMove("at the last group")
	}
	n.claim(n.current())
	return moved
}

// PreviousPage moves the cursor into the previous group, landing at its end.
func (n *Navigator) PreviousPage() bool {
	n.unclaim(n.current())
	moved := false
	if n.groupIndex > 0 {
		n.groupIndex--
		n.enterGroupBackward()
		moved = true
	} else {
		n.notifyNoMove("at the first group")
	}
	n.claim(n.current())
	return moved
}

// ContinueItem resumes work in the current group: a full scan from the
// group's start for the first item that is neither viewed nor completed,
// then for the first viewed item. The landing item is always claimed.
func (n *Navigator) ContinueItem() bool {
	n.unclaim(n.current())
	group := n.data[n.groupIndex]
	for i, item := range group {
		if item.State != StateViewed && item.State != StateCompleted {
			n.itemIndex = i
			n.claim(n.current())
			return true
		}
	}
	for i, item := range group {
		if item.State == StateViewed {
			n.itemIndex = i
			n.claim(n.current())
			return true
		}
	}
	n.notifyNoMove("all items in the current group are viewed or completed")
	n.claim(n.current())
	return false
}

// Start jumps directly to the first item of the given group, unclaiming the
// current item and claiming the new one.
func (n *Navigator) Start(groupIndex int) error {
	if groupIndex < 0 || groupIndex >= len(n.data) {
		return errors.InvalidIndex(groupIndex, len(n.data))
	}
	n.unclaim(n.current())
	n.groupIndex = groupIndex
	n.itemIndex = 0
	n.claim(n.current())
	return nil
}

// MarkCurrentItemComplete marks the item under the cursor completed. Handlers
// are untouched. Calling it on an already-completed item is a no-op on state.
func (n *Navigator) MarkCurrentItemComplete() {
	item := n.current()
	item.State = StateCompleted
	n.notifyCompleted(item)
}

// ResetCurrentItem reverts the item under the cursor to unset and clears its
// handlers, regardless of who holds it.
func (n *Navigator) ResetCurrentItem() {
	item := n.current()
	item.State = StateUnset
	item.Handlers = []string{}
}

// ResetCurrentGroup reverts every item in the current group to unset and
// strips every handler, regardless of who holds them.
func (n *Navigator) ResetCurrentGroup() {
	resetAllHandlers(n.data[n.groupIndex])
}

// ResetAll reverts every item in the dataset to unset and strips every
// handler.
func (n *Navigator) ResetAll() {
	for _, group := range n.data {
		resetAllHandlers(group)
	}
}

// ResetCurrentGroupOwn removes only the calling handler's membership from
// every item in the current group. Items revert to unset only when no other
// handler holds them; completed items stay completed.
func (n *Navigator) ResetCurrentGroupOwn() {
	n.resetOwnHandler(n.data[n.groupIndex])
}

// ResetAllOwn removes only the calling handler's membership across the whole
// dataset.
func (n *Navigator) ResetAllOwn() {
	for _, group := range n.data {
		n.resetOwnHandler(group)
	}
}

func resetAllHandlers(group Group) {
	for _, item := range group {
		item.State = StateUnset
		item.Handlers = []string{}
	}
}

func (n *Navigator) resetOwnHandler(group Group) {
	for _, item := range group {
		n.unclaim(item)
	}
}

// CurrentItem returns a live reference to the item under the cursor.
func (n *Navigator) CurrentItem() (*Item, error) {
	if len(n.data) == 0 {
		return nil, errors.DatasetEmpty()
	}
	if n.groupIndex >= len(n.data) {
		return nil, errors.IndexOutOfRange(n.groupIndex, len(n.data))
	}
	if len(n.data[n.groupIndex]) == 0 {
		return nil, errors.GroupEmpty(n.groupIndex)
	}
	return n.data[n.groupIndex][n.itemIndex], nil
}

// CurrentGroup returns the current group's item sequence.
func (n *Navigator) CurrentGroup() Group {
	return n.data[n.groupIndex]
}

// CurrentState returns the serializable cursor snapshot.
func (n *Navigator) CurrentState() (Snapshot, error) {
	item, err := n.CurrentItem()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		GroupIndex: n.groupIndex,
		ItemIndex:  n.itemIndex,
		Item:       item,
	}, nil
}

// Data returns the live dataset for rendering by a presentation layer.
func (n *Navigator) Data() Dataset {
	return n.data
}

// Handler returns the handler identity driving this Navigator.
func (n *Navigator) Handler() string {
	return n.handler
}

// Cursor returns the current group and item indices.
func (n *Navigator) Cursor() (groupIndex, itemIndex int) {
	return n.groupIndex, n.itemIndex
}

// GroupNavigation reports whether single-step moves may cross group
// boundaries.
func (n *Navigator) GroupNavigation() bool {
	return n.groupNavigation
}

// AutoAdvance reports whether claim-and-advance semantics are active.
func (n *Navigator) AutoAdvance() bool {
	return n.autoAdvance
}

// ToggleAutoAdvance flips the auto-advance mode and returns the new value.
// The change takes effect on the next movement call; the current item's state
// is not reclassified.
func (n *Navigator) ToggleAutoAdvance() bool {
	n.autoAdvance = !n.autoAdvance
	return n.autoAdvance
}

// ToggleGroupNavigation flips the group navigation mode and returns the new
// value.
func (n *Navigator) ToggleGroupNavigation() bool {
	n.groupNavigation = !n.groupNavigation
	return n.groupNavigation
}
