package application

import (
	"cmp"

	"github.com/bnema/canalyzer/internal/domain"
)

func Compare(a, b domain.TrackedMessage) int {
	if a.Ignored != b.Ignored {
		if a.Ignored {
			return 1
		}
		return -1
	}

	if a.Pinned != b.Pinned {
		if a.Pinned {
			return -1
		}
		return 1
	}

	if c := b.UpdatedAt().Compare(a.UpdatedAt()); c != 0 {
		return c
	}

	return cmp.Compare(a.ID, b.ID)
}
