package application

import (
	"testing"
	"time"

	"github.com/bnema/canalyzer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T, base time.Time, ids ...string) *Store {
	t.Helper()

	store := NewStore()
	for i, id := range ids {
		store.Merge(record(id, "00", base.Add(-time.Duration(i)*time.Second)))
	}

	return store
}

func TestSessionFilterToggleRoundTrip(t *testing.T) {
	session := NewSession()
	store := NewStore()

	assert.Equal(t, ModeBrowse, session.Mode())
	_, ok := session.Selected()
	assert.False(t, ok)

	assert.False(t, session.Handle(EventFilterToggle, nil, store))
	assert.Equal(t, ModeFilter, session.Mode())
	selected, ok := session.Selected()
	require.True(t, ok)
	assert.Equal(t, 0, selected)

	assert.False(t, session.Handle(EventFilterToggle, nil, store))
	assert.Equal(t, ModeBrowse, session.Mode())
	_, ok = session.Selected()
	assert.False(t, ok)
}

func TestSessionNavigationWrapsAround(t *testing.T) {
	store := seededStore(t, time.Now(), "a", "b", "c")
	view := store.Ordered()
	session := NewSession()
	session.Handle(EventFilterToggle, view, store)

	session.Handle(EventNavigateUp, view, store)
	selected, _ := session.Selected()
	assert.Equal(t, 2, selected)

	session.Handle(EventNavigateDown, view, store)
	selected, _ = session.Selected()
	assert.Equal(t, 0, selected)

	session.Handle(EventNavigateDown, view, store)
	session.Handle(EventNavigateDown, view, store)
	session.Handle(EventNavigateDown, view, store)
	selected, _ = session.Selected()
	assert.Equal(t, 0, selected)
}

func TestSessionEmptyViewIsNoOp(t *testing.T) {
	store := NewStore()
	session := NewSession()
	session.Handle(EventFilterToggle, nil, store)

	for _, event := range []Event{EventNavigateDown, EventNavigateUp, EventIgnoreToggle, EventPinToggle} {
		assert.NotPanics(t, func() {
			assert.False(t, session.Handle(event, nil, store))
		})
	}

	selected, ok := session.Selected()
	require.True(t, ok)
	assert.Equal(t, 0, selected)
}

func TestSessionTogglesIgnoredOnlyInFilterMode(t *testing.T) {
	store := seededStore(t, time.Now(), "a", "b")
	view := store.Ordered()
	session := NewSession()

	session.Handle(EventIgnoreToggle, view, store)
	session.Handle(EventPinToggle, view, store)
	msg, _ := store.Get("a")
	assert.False(t, msg.Ignored)
	assert.False(t, msg.Pinned)

	session.Handle(EventFilterToggle, view, store)
	session.Handle(EventIgnoreToggle, view, store)
	msg, _ = store.Get("a")
	assert.True(t, msg.Ignored)
}

func TestSessionSelectionIsPositionalAfterReorder(t *testing.T) {
	store := seededStore(t, time.Now(), "a", "b", "c")
	session := NewSession()

	view := store.Ordered()
	require.Equal(t, []domain.MessageID{"a", "b", "c"}, viewIDs(view))
	session.Handle(EventFilterToggle, view, store)

	session.Handle(EventIgnoreToggle, view, store)
	view = store.Ordered()
	require.Equal(t, []domain.MessageID{"b", "c", "a"}, viewIDs(view))

	selected, _ := session.Selected()
	assert.Equal(t, 0, selected)

	session.Handle(EventPinToggle, view, store)
	msg, _ := store.Get("b")
	assert.True(t, msg.Pinned)
	msg, _ = store.Get("a")
	assert.False(t, msg.Pinned)
}

func TestSessionQuitAcceptedInBothModes(t *testing.T) {
	session := NewSession()
	assert.True(t, session.Handle(EventQuit, nil, NewStore()))

	session.Handle(EventFilterToggle, nil, NewStore())
	assert.True(t, session.Handle(EventQuit, nil, NewStore()))
}

func TestSessionRevalidateClampsSelection(t *testing.T) {
	store := seededStore(t, time.Now(), "a", "b", "c")
	view := store.Ordered()
	session := NewSession()
	session.Handle(EventFilterToggle, view, store)
	session.Handle(EventNavigateUp, view, store)

	session.Revalidate(2)
	selected, _ := session.Selected()
	assert.Equal(t, 1, selected)

	session.Revalidate(0)
	selected, _ = session.Selected()
	assert.Equal(t, 0, selected)
}
