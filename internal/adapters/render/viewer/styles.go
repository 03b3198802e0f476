package viewer

import (
	"github.com/bnema/canalyzer/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title     lipgloss.Style
	status    lipgloss.Style
	id        lipgloss.Style
	pinnedID  lipgloss.Style
	marker    lipgloss.Style
	unchanged lipgloss.Style
	changed   lipgloss.Style
	ignored   lipgloss.Style
	waiting   lipgloss.Style
	tiers     map[domain.RecencyTier]lipgloss.Color
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Background(lipgloss.Color("4")),
		status:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		id:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		pinnedID:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		marker:    lipgloss.NewStyle().Bold(true),
		unchanged: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		changed:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		ignored:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true),
		waiting:   lipgloss.NewStyle().Faint(true),
		tiers: map[domain.RecencyTier]lipgloss.Color{
			domain.TierA: lipgloss.Color("#FF9B35"),
			domain.TierB: lipgloss.Color("#BD370A"),
			domain.TierC: lipgloss.Color("#5E0000"),
		},
	}
}

func (s styles) cellStyle(cell domain.Cell, tier domain.RecencyTier, ignored bool) lipgloss.Style {
	style := s.unchanged
	if cell.Changed {
		style = s.changed
	}
	if ignored {
		style = s.ignored
	}
	if bg, ok := s.tiers[tier]; ok {
		style = style.Background(bg)
	}

	return style
}
