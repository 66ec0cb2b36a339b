// Package logpanel renders the activity log for the TUI.
package logpanel

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/ycard/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ycard/internal/core/domain"
)

// Panel shows activity log entries oldest first, keeping the newest in view.
type Panel struct {
	styles  *styles.Styles
	entries []domain.LogEntry
	width   int
	height  int
}

// NewPanel creates an empty log panel.
func NewPanel(s *styles.Styles) *Panel {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Panel{styles: s, width: 40, height: 10}
}

// SetEntries replaces the entries shown.
func (p *Panel) SetEntries(entries []domain.LogEntry) {
	p.entries = entries
}

// Entries returns the entries shown.
func (p *Panel) Entries() []domain.LogEntry {
	return p.entries
}

// SetDimensions sets the outer size, border included.
func (p *Panel) SetDimensions(width, height int) {
	p.width = width
	p.height = height
}

// SetStyles replaces the styles, used after a theme switch.
func (p *Panel) SetStyles(s *styles.Styles) {
	if s != nil {
		p.styles = s
	}
}

// View renders the panel.
func (p *Panel) View() string {
	inner := max(p.width-2, 10)
	rows := max(p.height-3, 1)

	var b strings.Builder
	b.WriteString(p.styles.Title.Render("Activity Logs"))
	b.WriteString("\n")

	if len(p.entries) == 0 {
		b.WriteString(p.styles.Muted.Render("No activity yet"))
	} else {
		visible := p.entries
		if len(visible) > rows {
			visible = visible[len(visible)-rows:]
		}
		lines := make([]string, 0, len(visible))
		for _, e := range visible {
			lines = append(lines, p.line(e, inner))
		}
		b.WriteString(strings.Join(lines, "\n"))
	}

	return p.styles.Panel.Width(inner).Render(b.String())
}

func (p *Panel) line(e domain.LogEntry, width int) string {
	icon := p.styles.ForCategory(e.Category).Render(e.Category.Icon())
	ts := p.styles.Muted.Render(e.Timestamp)
	msg := e.Message
	if room := width - len(e.Timestamp) - 4; room > 0 && len([]rune(msg)) > room {
		msg = string([]rune(msg)[:room-1]) + "…"
	}
	return fmt.Sprintf("%s %s %s", icon, ts, msg)
}
