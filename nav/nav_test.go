package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	naverrors "github.com/grovetools/nav/errors"
)

// sampleDataset mirrors the canonical fixture: five groups, seventeen items,
// with a few items already held by other handlers.
func sampleDataset() Dataset {
	item := func(id int, name string, state State, handlers ...string) *Item {
		if handlers == nil {
			handlers = []string{}
		}
		return &Item{ID: id, Name: name, State: state, Handlers: handlers}
	}
	return Dataset{
		{item(1, "Item 1", StateUnset), item(2, "Item 2", StateUnset), item(3, "Item 3", StateUnset)},
		{item(4, "Item 4", StateUnset), item(5, "Item 5", StateViewed, "ZAC"), item(6, "Item 6", StateViewed, "JOHN", "TOM"), item(7, "Item 7", StateUnset)},
		{item(8, "Item 8", StateViewed, "aaa"), item(9, "Item 9", StateViewed, "bbb")},
		{item(10, "Item 10", StateUnset), item(11, "Item 11", StateUnset), item(12, "Item 12", StateUnset)},
		{item(13, "Item 13", StateUnset), item(14, "Item 14", StateUnset), item(15, "Item 15", StateUnset), item(16, "Item 16", StateUnset), item(17, "Item 17", StateUnset)},
	}
}

// recorder captures observer notifications for assertions.
type recorder struct {
	noMoves   []string
	completed []int
}

func (r *recorder) NoMove(reason string)    { r.noMoves = append(r.noMoves, reason) }
func (r *recorder) ItemCompleted(item *Item) { r.completed = append(r.completed, item.ID) }

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		data    Dataset
		wantErr bool
	}{
		{"valid dataset", sampleDataset(), false},
		{"empty dataset", Dataset{}, true},
		{"nil dataset", nil, true},
		{"empty group", Dataset{{}}, true},
		{"nil item", Dataset{{nil}}, true},
		{"bad state", Dataset{{&Item{ID: 1, State: "done", Handlers: []string{}}}}, true},
		{"nil handlers", Dataset{{&Item{ID: 1, State: StateUnset}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.data, "john")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, naverrors.ErrCodeDatasetInvalid, naverrors.GetCode(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestInitialCursor(t *testing.T) {
	n, err := New(sampleDataset(), "john")
	require.NoError(t, err)

	item, err := n.CurrentItem()
	require.NoError(t, err)
	assert.Equal(t, 1, item.ID)

	state, err := n.CurrentState()
	require.NoError(t, err)
	assert.Equal(t, 0, state.GroupIndex)
	assert.Equal(t, 0, state.ItemIndex)
	assert.Same(t, item, state.Item)

	// Construction does not claim the starting item.
	assert.Empty(t, item.Handlers)
	assert.Equal(t, StateUnset, item.State)
}

func TestNextPreviousManual(t *testing.T) {
	n, err := New(sampleDataset(), "john")
	require.NoError(t, err)

	assert.True(t, n.NextItem())
	item, _ := n.CurrentItem()
	assert.Equal(t, "Item 2", item.Name)
	assert.Equal(t, StateViewed, item.State)
	assert.Equal(t, []string{"john"}, item.Handlers)

	assert.True(t, n.PreviousItem())
	item, _ = n.CurrentItem()
	assert.Equal(t, "Item 1", item.Name)

	// Item 2 was released: no handlers left, never completed, back to unset.
	second := n.CurrentGroup()[1]
	assert.Empty(t, second.Handlers)
	assert.Equal(t, StateUnset, second.State)
}

func TestManualModeNeverCrossesGroups(t *testing.T) {
	n, err := New(sampleDataset(), "john")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		n.NextItem()
	}
	gi, ii := n.Cursor()
	assert.Equal(t, 0, gi)
	assert.Equal(t, 2, ii)

	// Repeatable no-op at the boundary; claim bookkeeping still runs.
	assert.False(t, n.NextItem())
	item, _ := n.CurrentItem()
	assert.Equal(t, 3, item.ID)
	assert.Equal(t, []string{"john"}, item.Handlers)
}

func TestPreviousAtStartIsNoOp(t *testing.T) {
	n, err := New(sampleDataset(), "john")
	require.NoError(t, err)

	assert.False(t, n.PreviousItem())
	item, _ := n.CurrentItem()
	assert.Equal(t, 1, item.ID)
}

func TestGroupNavigationCrossing(t *testing.T) {
	data := Dataset{
		{&Item{ID: 1, Handlers: []string{}}},
		{&Item{ID: 2, Handlers: []string{}}},
	}
	n, err := New(data, "john", WithGroupNavigation(true))
	require.NoError(t, err)

	assert.True(t, n.NextItem())
	gi, ii := n.Cursor()
	assert.Equal(t, 1, gi)
	assert.Equal(t, 0, ii)

	assert.False(t, n.NextItem())
	assert.False(t, n.NextItem())
	gi, ii = n.Cursor()
	assert.Equal(t, 1, gi)
	assert.Equal(t, 0, ii)

	assert.True(t, n.PreviousItem())
	gi, _ = n.Cursor()
	assert.Equal(t, 0, gi)
}

func TestAutoAdvanceForwardScan(t *testing.T) {
	// Unset items strictly after the cursor win over nearer viewed ones.
	data := Dataset{{
		&Item{ID: 1, Handlers: []string{}},
		&Item{ID: 2, State: StateViewed, Handlers: []string{"other"}},
		&Item{ID: 3, State: StateCompleted, Handlers: []string{}},
		&Item{ID: 4, Handlers: []string{}},
	}}
	n, err := New(data, "john", WithAutoAdvance(true))
	require.NoError(t, err)

	assert.True(t, n.NextItem())
	item, _ := n.CurrentItem()
	assert.Equal(t, 4, item.ID)
	// Auto-advance claims complete the item outright.
	assert.Equal(t, StateCompleted, item.State)

	// Nothing unset or viewed after the cursor, and no wrapping back.
	assert.False(t, n.NextItem())
	item, _ = n.CurrentItem()
	assert.Equal(t, 4, item.ID)
}

func TestAutoAdvanceForwardFallsBackToViewed(t *testing.T) {
	data := Dataset{{
		&Item{ID: 1, Handlers: []string{}},
		&Item{ID: 2, State: StateCompleted, Handlers: []string{}},
		&Item{ID: 3, State: StateViewed, Handlers: []string{"other"}},
	}}
	n, err := New(data, "john", WithAutoAdvance(true))
	require.NoError(t, err)

	assert.True(t, n.NextItem())
	item, _ := n.CurrentItem()
	assert.Equal(t, 3, item.ID)
}

func TestAutoAdvanceBackwardFallsBackToCompleted(t *testing.T) {
	// Backward search has the extra completed-item fallback the forward
	// search does not.
	data := Dataset{{
		&Item{ID: 1, State: StateCompleted, Handlers: []string{}},
		&Item{ID: 2, State: StateCompleted, Handlers: []string{}},
		&Item{ID: 3, Handlers: []string{}},
	}}
	n, err := New(data, "john", WithAutoAdvance(true))
	require.NoError(t, err)
	require.NoError(t, n.Start(0)) // cursor to (0,0), claimed

	assert.True(t, n.NextItem())
	item, _ := n.CurrentItem()
	assert.Equal(t, 3, item.ID)

	assert.True(t, n.PreviousItem())
	item, _ = n.CurrentItem()
	assert.Equal(t, 2, item.ID)
}

func TestAutoAdvanceGroupCrossingSkipsClaimed(t *testing.T) {
	data := Dataset{
		{&Item{ID: 1, Handlers: []string{}}},
		{
			&Item{ID: 2, State: StateViewed, Handlers: []string{"other"}},
			&Item{ID: 3, Handlers: []string{}},
		},
	}
	n, err := New(data, "john", WithAutoAdvance(true), WithGroupNavigation(true))
	require.NoError(t, err)
	require.NoError(t, n.Start(0))

	assert.True(t, n.NextItem())
	item, _ := n.CurrentItem()
	assert.Equal(t, 3, item.ID)
}

func TestAutoAdvanceGroupCrossingFallsBackToStart(t *testing.T) {
	data := Dataset{
		{&Item{ID: 1, Handlers: []string{}}},
		{
			&Item{ID: 2, State: StateCompleted, Handlers: []string{}},
			&Item{ID: 3, State: StateViewed, Handlers: []string{"other"}},
		},
	}
	n, err := New(data, "john", WithAutoAdvance(true), WithGroupNavigation(true))
	require.NoError(t, err)
	require.NoError(t, n.Start(0))

	assert.True(t, n.NextItem())
	gi, ii := n.Cursor()
	assert.Equal(t, 1, gi)
	assert.Equal(t, 0, ii)
}

func TestNextPageIgnoresGroupNavigation(t *testing.T) {
	n, err := New(sampleDataset(), "john") // group navigation off
	require.NoError(t, err)

	assert.True(t, n.NextPage())
	gi, ii := n.Cursor()
	assert.Equal(t, 1, gi)
	assert.Equal(t, 0, ii)

	assert.True(t, n.PreviousPage())
	gi, ii = n.Cursor()
	assert.Equal(t, 0, gi)
	assert.Equal(t, 2, ii) // backward page moves land at the group's end
}

func TestPageMovesAtDatasetEdges(t *testing.T) {
	rec := &recorder{}
	n, err := New(sampleDataset(), "john", WithObserver(rec))
	require.NoError(t, err)

	assert.False(t, n.PreviousPage())
	for i := 0; i < 4; i++ {
		assert.True(t, n.NextPage())
	}
	assert.False(t, n.NextPage())
	assert.Len(t, rec.noMoves, 2)
}

func TestNextPageAutoAdvanceLanding(t *testing.T) {
	data := Dataset{
		{&Item{ID: 1, Handlers: []string{}}},
		{
			&Item{ID: 2, State: StateCompleted, Handlers: []string{}},
			&Item{ID: 3, Handlers: []string{}},
		},
	}
	n, err := New(data, "john", WithAutoAdvance(true))
	require.NoError(t, err)

	assert.True(t, n.NextPage())
	item, _ := n.CurrentItem()
	assert.Equal(t, 3, item.ID)
}

func TestContinueItemScansFromGroupStart(t *testing.T) {
	n, err := New(sampleDataset(), "john")
	require.NoError(t, err)

	// Park the cursor at the end of the first group, then complete items 1-2.
	n.NextItem()
	n.NextItem()
	group := n.CurrentGroup()
	group[0].State = StateCompleted

	assert.True(t, n.ContinueItem())
	item, _ := n.CurrentItem()
	assert.Equal(t, 2, item.ID) // first item neither viewed nor completed
}

func TestContinueItemPrefersUnsetThenViewed(t *testing.T) {
	data := Dataset{{
		&Item{ID: 1, State: StateCompleted, Handlers: []string{}},
		&Item{ID: 2, State: StateViewed, Handlers: []string{"other"}},
		&Item{ID: 3, State: StateCompleted, Handlers: []string{}},
	}}
	n, err := New(data, "john")
	require.NoError(t, err)

	assert.True(t, n.ContinueItem())
	item, _ := n.CurrentItem()
	assert.Equal(t, 2, item.ID)
}

func TestContinueItemExhaustedGroup(t *testing.T) {
	rec := &recorder{}
	data := Dataset{{
		&Item{ID: 1, State: StateCompleted, Handlers: []string{}},
		&Item{ID: 2, State: StateCompleted, Handlers: []string{}},
	}}
	n, err := New(data, "john", WithObserver(rec))
	require.NoError(t, err)

	assert.False(t, n.ContinueItem())
	gi, ii := n.Cursor()
	assert.Equal(t, 0, gi)
	assert.Equal(t, 0, ii)
	require.Len(t, rec.noMoves, 1)
	assert.Contains(t, rec.noMoves[0], "viewed or completed")
}

func TestStart(t *testing.T) {
	n, err := New(sampleDataset(), "john")
	require.NoError(t, err)

	require.NoError(t, n.Start(3))
	item, _ := n.CurrentItem()
	assert.Equal(t, 10, item.ID)
	assert.Equal(t, []string{"john"}, item.Handlers)
	assert.Equal(t, StateViewed, item.State)

	err = n.Start(5)
	require.Error(t, err)
	assert.Equal(t, naverrors.ErrCodeInvalidIndex, naverrors.GetCode(err))

	err = n.Start(-1)
	require.Error(t, err)

	// The failed jumps did not disturb the cursor.
	item, _ = n.CurrentItem()
	assert.Equal(t, 10, item.ID)
}

func TestMarkCurrentItemCompleteIdempotent(t *testing.T) {
	rec := &recorder{}
	n, err := New(sampleDataset(), "john", WithObserver(rec))
	require.NoError(t, err)

	n.MarkCurrentItemComplete()
	item, _ := n.CurrentItem()
	assert.Equal(t, StateCompleted, item.State)
	handlers := append([]string{}, item.Handlers...)

	n.MarkCurrentItemComplete()
	assert.Equal(t, StateCompleted, item.State)
	assert.Equal(t, handlers, item.Handlers)
	assert.Equal(t, []int{1, 1}, rec.completed)
}

func TestCompletionIsSticky(t *testing.T) {
	n, err := New(sampleDataset(), "john")
	require.NoError(t, err)

	n.Start(0)
	n.MarkCurrentItemComplete()
	n.NextItem()     // unclaims item 1
	n.PreviousItem() // reclaims it

	item, _ := n.CurrentItem()
	assert.Equal(t, StateCompleted, item.State)
}

func TestResetCurrentItem(t *testing.T) {
	n, err := New(sampleDataset(), "john")
	require.NoError(t, err)

	require.NoError(t, n.Start(1))
	n.NextItem() // onto Item 5, held by ZAC and now john
	n.ResetCurrentItem()

	item, _ := n.CurrentItem()
	assert.Equal(t, StateUnset, item.State)
	assert.Empty(t, item.Handlers)
}

func TestResetAllVariants(t *testing.T) {
	n, err := New(sampleDataset(), "john")
	require.NoError(t, err)

	n.MarkCurrentItemComplete()
	n.ResetAll()

	for _, group := range n.Data() {
		for _, item := range group {
			assert.Equal(t, StateUnset, item.State)
			assert.Empty(t, item.Handlers)
		}
	}
}

func TestResetGroupOwnHandlerOnly(t *testing.T) {
	data := Dataset{{
		&Item{ID: 1, State: StateViewed, Handlers: []string{"john", "tom"}},
		&Item{ID: 2, State: StateViewed, Handlers: []string{"john"}},
		&Item{ID: 3, State: StateCompleted, Handlers: []string{"john"}},
	}}
	n, err := New(data, "john")
	require.NoError(t, err)

	n.ResetCurrentGroupOwn()

	// Tom still holds item 1, so it stays viewed.
	assert.Equal(t, []string{"tom"}, data[0][0].Handlers)
	assert.Equal(t, StateViewed, data[0][0].State)

	// Nobody holds item 2 anymore.
	assert.Empty(t, data[0][1].Handlers)
	assert.Equal(t, StateUnset, data[0][1].State)

	// Completion survives an own-handler reset.
	assert.Empty(t, data[0][2].Handlers)
	assert.Equal(t, StateCompleted, data[0][2].State)
}

func TestTogglesTakeEffectOnNextMove(t *testing.T) {
	n, err := New(sampleDataset(), "john")
	require.NoError(t, err)

	require.NoError(t, n.Start(0))
	item, _ := n.CurrentItem()
	assert.Equal(t, StateViewed, item.State)

	// Toggling auto-advance does not reclassify the current item.
	assert.True(t, n.ToggleAutoAdvance())
	assert.Equal(t, StateViewed, item.State)

	// But the next claim completes.
	n.NextItem()
	next, _ := n.CurrentItem()
	assert.Equal(t, StateCompleted, next.State)

	assert.False(t, n.ToggleAutoAdvance())
	assert.True(t, n.ToggleGroupNavigation())
	assert.False(t, n.ToggleGroupNavigation())
}

func TestClaimUnclaimRoundTrip(t *testing.T) {
	data := Dataset{{
		&Item{ID: 1, Handlers: []string{}},
		&Item{ID: 2, Handlers: []string{}},
	}}
	n, err := New(data, "john")
	require.NoError(t, err)

	n.NextItem()     // claim item 2
	n.PreviousItem() // release it

	assert.Equal(t, StateUnset, data[0][1].State)
	assert.Empty(t, data[0][1].Handlers)
}

func TestLiveItemReferences(t *testing.T) {
	n, err := New(sampleDataset(), "john")
	require.NoError(t, err)

	item, _ := n.CurrentItem()
	item.State = StateCompleted

	// The navigator observes the caller's mutation on its next call.
	n.NextItem()
	n.PreviousItem()
	again, _ := n.CurrentItem()
	assert.Equal(t, StateCompleted, again.State)
}

func TestObserverNoMoveReasons(t *testing.T) {
	rec := &recorder{}
	data := Dataset{{&Item{ID: 1, Handlers: []string{}}}}
	n, err := New(data, "john", WithObserver(rec))
	require.NoError(t, err)

	n.NextItem()
	n.PreviousItem()
	require.Len(t, rec.noMoves, 2)
	assert.Contains(t, rec.noMoves[0], "last item")
	assert.Contains(t, rec.noMoves[1], "first item")
}
