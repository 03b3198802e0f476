package domain

import "time"

type Cell struct {
	Char    rune
	Changed bool
}

// Diff compares payloads by rune index, not byte index.
func Diff(current RawRecord, previous *RawRecord) []Cell {
	runes := []rune(current.Payload)
	cells := make([]Cell, len(runes))

	var baseline []rune
	if previous != nil {
		baseline = []rune(previous.Payload)
	}

	for i, r := range runes {
		cells[i] = Cell{Char: r}
		if previous == nil {
			continue
		}
		cells[i].Changed = i >= len(baseline) || baseline[i] != r
	}

	return cells
}

func ChangedIndexes(cells []Cell) []int {
	indexes := make([]int, 0, len(cells))
	for i, cell := range cells {
		if cell.Changed {
			indexes = append(indexes, i)
		}
	}

	return indexes
}

func CellsText(cells []Cell) string {
	runes := make([]rune, len(cells))
	for i, cell := range cells {
		runes[i] = cell.Char
	}

	return string(runes)
}

type RecencyTier int

const (
	TierNone RecencyTier = iota
	TierA
	TierB
	TierC
)

func (t RecencyTier) String() string {
	switch t {
	case TierA:
		return "A"
	case TierB:
		return "B"
	case TierC:
		return "C"
	default:
		return "none"
	}
}

// Future observations get TierNone.
func RecencyTierAt(observedAt, now time.Time) RecencyTier {
	if observedAt.IsZero() {
		return TierNone
	}

	elapsed := now.Sub(observedAt)
	switch {
	case elapsed < 0:
		return TierNone
	case elapsed < time.Second:
		return TierA
	case elapsed < 2*time.Second:
		return TierB
	case elapsed < 3*time.Second:
		return TierC
	default:
		return TierNone
	}
}
