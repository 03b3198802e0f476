package application

import (
	"slices"
	"testing"
	"time"

	"github.com/bnema/canalyzer/internal/domain"
	"github.com/stretchr/testify/assert"
)

func trackedAt(id string, at time.Time, ignored, pinned bool) domain.TrackedMessage {
	return domain.TrackedMessage{
		ID:      domain.MessageID(id),
		History: []domain.RawRecord{record(id, "00", at)},
		Ignored: ignored,
		Pinned:  pinned,
	}
}

func TestCompareIgnoredNeverPrecedesNonIgnored(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	for _, pinned := range []bool{false, true} {
		for _, newer := range []bool{false, true} {
			ignoredAt := base
			if newer {
				ignoredAt = base.Add(time.Hour)
			}

			ignored := trackedAt("a", ignoredAt, true, pinned)
			active := trackedAt("b", base, false, false)

			assert.Positive(t, Compare(ignored, active))
			assert.Negative(t, Compare(active, ignored))
		}
	}
}

func TestComparePinnedPrecedesUnpinned(t *testing.T) {
	base := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	pinned := trackedAt("old", base, false, true)
	fresh := trackedAt("new", base.Add(time.Minute), false, false)

	assert.Negative(t, Compare(pinned, fresh))
	assert.Positive(t, Compare(fresh, pinned))
}

func TestCompareMostRecentFirstThenID(t *testing.T) {
	base := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	view := []domain.TrackedMessage{
		trackedAt("c", base, false, false),
		trackedAt("b", base.Add(time.Second), false, false),
		trackedAt("a", base, false, false),
		trackedAt("z", base.Add(time.Hour), true, false),
		trackedAt("p", base.Add(-time.Hour), false, true),
	}

	slices.SortFunc(view, Compare)

	assert.Equal(t, []domain.MessageID{"p", "b", "a", "c", "z"}, viewIDs(view))
}

func TestStoreOrderedDoesNotMutateStore(t *testing.T) {
	store := NewStore()
	base := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	store.Merge(record("1", "A", base))
	store.Merge(record("2", "B", base.Add(time.Second)))

	first := store.Ordered()
	second := store.Ordered()

	assert.Equal(t, []domain.MessageID{"2", "1"}, viewIDs(first))
	assert.Equal(t, viewIDs(first), viewIDs(second))
	assert.Equal(t, 2, store.Len())
}
