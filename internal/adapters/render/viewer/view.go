package viewer

import (
	"fmt"
	"strings"

	"github.com/bnema/canalyzer/internal/application"
	"github.com/bnema/canalyzer/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	footerLines   = 2
	title         = "canalyzer"
)

type layout struct {
	width       int
	height      int
	idWidth     int
	columnWidth int
}

func (l layout) normalized() layout {
	if l.width <= 0 {
		l.width = defaultWidth
	}
	if l.height <= 0 {
		l.height = defaultHeight
	}
	if l.idWidth <= 0 {
		l.idWidth = application.DefaultIDWidth
	}
	if l.columnWidth <= 0 {
		l.columnWidth = application.DefaultColumnWidth
	}

	return l
}

// columns is how many history values fit beside the marker and id.
func (l layout) columns() int {
	l = l.normalized()
	available := l.width - 2 - l.idWidth
	n := available / (l.columnWidth + 1)
	if n < 1 {
		return 1
	}

	return n
}

func (l layout) bodyLines() int {
	l = l.normalized()
	if n := l.height - footerLines; n > 0 {
		return n
	}

	return 1
}

// visibleRange keeps the selected row on screen when the view is taller
// than the body.
func visibleRange(rows []application.Row, lines int) (int, int) {
	if len(rows) <= lines {
		return 0, len(rows)
	}

	start := 0
	for i, row := range rows {
		if row.Selected && i >= lines {
			start = i - lines + 1
			break
		}
	}

	return start, start + lines
}

func renderView(rows []application.Row, status application.Status, footer string, l layout, s styles) string {
	l = l.normalized()

	var b strings.Builder
	start, end := visibleRange(rows, l.bodyLines())
	for _, row := range rows[start:end] {
		b.WriteString(renderRow(row, l, s))
		b.WriteByte('\n')
	}
	for i := end - start; i < l.bodyLines(); i++ {
		b.WriteByte('\n')
	}

	b.WriteString(renderStatus(status, s))
	b.WriteByte('\n')
	b.WriteString(footer)

	return b.String()
}

func renderRow(row application.Row, l layout, s styles) string {
	var b strings.Builder

	if row.Selected {
		b.WriteString(s.marker.Render(">"))
	} else {
		b.WriteByte(' ')
	}
	b.WriteByte(' ')

	idStyle := s.id
	if row.Pinned {
		idStyle = s.pinnedID
	}
	if row.Ignored {
		idStyle = s.ignored
	}
	b.WriteString(idStyle.Render(fit(string(row.ID), l.idWidth)))

	for _, value := range row.Values {
		b.WriteByte(' ')
		b.WriteString(renderValue(value, l.columnWidth, row.Ignored, s))
	}

	return b.String()
}

func renderValue(value domain.DiffedValue, width int, ignored bool, s styles) string {
	var b strings.Builder
	used := 0
	for _, cell := range value.Cells {
		char := string(cell.Char)
		w := lipgloss.Width(char)
		if used+w > width {
			break
		}
		b.WriteString(s.cellStyle(cell, value.Tier, ignored).Render(char))
		used += w
	}
	if pad := width - used; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}

	return b.String()
}

func renderStatus(status application.Status, s styles) string {
	return s.status.Render(fmt.Sprintf("ids: %d  queued: %d  mode: %s", status.Tracked, status.Pending, status.Mode))
}

func footerTitle(mode application.Mode) string {
	if mode == application.ModeFilter {
		return title + " | I)gnore; P)in to top; Exit F)iltering"
	}

	return title + " | F)ilter; Q)uit"
}

// fit truncates or right-pads text to width terminal cells.
func fit(text string, width int) string {
	var b strings.Builder
	used := 0
	for _, r := range text {
		w := lipgloss.Width(string(r))
		if used+w > width {
			break
		}
		b.WriteRune(r)
		used += w
	}

	return b.String() + strings.Repeat(" ", width-used)
}
