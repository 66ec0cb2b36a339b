// Package diffview renders a side-by-side comparison of two texts for the TUI.
package diffview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/custodia-labs/ycard/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ycard/internal/core/domain"
)

// Op marks how a row differs between the two sides.
type Op byte

// Row operations, matching difflib opcode tags.
const (
	OpEqual   Op = 'e'
	OpReplace Op = 'r'
	OpDelete  Op = 'd'
	OpInsert  Op = 'i'
)

// Row is one aligned line pair. Left or Right is absent for inserts and deletes.
type Row struct {
	Op       Op
	Left     string
	Right    string
	HasLeft  bool
	HasRight bool
}

// Rows aligns original and modified line by line.
func Rows(original, modified string) []Row {
	a := strings.Split(original, "\n")
	b := strings.Split(modified, "\n")

	var rows []Row
	for _, oc := range difflib.NewMatcher(a, b).GetOpCodes() {
		switch oc.Tag {
		case 'e':
			for i := 0; i < oc.I2-oc.I1; i++ {
				rows = append(rows, Row{Op: OpEqual, Left: a[oc.I1+i], Right: b[oc.J1+i], HasLeft: true, HasRight: true})
			}
		case 'd':
			for i := oc.I1; i < oc.I2; i++ {
				rows = append(rows, Row{Op: OpDelete, Left: a[i], HasLeft: true})
			}
		case 'i':
			for j := oc.J1; j < oc.J2; j++ {
				rows = append(rows, Row{Op: OpInsert, Right: b[j], HasRight: true})
			}
		case 'r':
			n := max(oc.I2-oc.I1, oc.J2-oc.J1)
			for k := 0; k < n; k++ {
				row := Row{Op: OpReplace}
				if i := oc.I1 + k; i < oc.I2 {
					row.Left, row.HasLeft = a[i], true
				}
				if j := oc.J1 + k; j < oc.J2 {
					row.Right, row.HasRight = b[j], true
				}
				rows = append(rows, row)
			}
		}
	}
	return rows
}

// View is the scrollable diff panel.
type View struct {
	styles   *styles.Styles
	viewport viewport.Model
	diff     domain.DiffOutcome
	rows     []Row
	width    int
	height   int
}

// NewView creates an empty diff view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:   s,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   20,
	}
}

// SetDiff loads a comparison into the view and scrolls to the top.
func (v *View) SetDiff(diff domain.DiffOutcome) {
	v.diff = diff
	v.rows = Rows(diff.Original, diff.Modified)
	v.viewport.SetContent(v.render())
	v.viewport.GotoTop()
}

// Diff returns the comparison being shown.
func (v *View) Diff() domain.DiffOutcome {
	return v.diff
}

// Rows returns the aligned rows being shown.
func (v *View) Rows() []Row {
	return v.rows
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles scrolling.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the header and the visible rows.
func (v *View) View() string {
	pane := v.paneWidth()
	header := v.styles.Subtitle.Render(pad("Original", pane)) + " │ " +
		v.styles.Subtitle.Render(pad("Modified", pane))
	return lipgloss.JoinVertical(lipgloss.Left, header, v.viewport.View())
}

// SetDimensions sets the view size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = max(height-1, 1)
	v.viewport.SetContent(v.render())
}

// SetStyles replaces the styles, used after a theme switch.
func (v *View) SetStyles(s *styles.Styles) {
	if s != nil {
		v.styles = s
		v.viewport.SetContent(v.render())
	}
}

func (v *View) paneWidth() int {
	return max((v.width-3)/2, 10)
}

func (v *View) render() string {
	pane := v.paneWidth()
	lines := make([]string, 0, len(v.rows))
	for _, r := range v.rows {
		left := v.side(r.Op, r.Left, r.HasLeft, "-", v.styles.Removed, pane)
		right := v.side(r.Op, r.Right, r.HasRight, "+", v.styles.Added, pane)
		lines = append(lines, fmt.Sprintf("%s │ %s", left, right))
	}
	return strings.Join(lines, "\n")
}

func (v *View) side(op Op, text string, present bool, marker string, changed lipgloss.Style, width int) string {
	if !present {
		return strings.Repeat(" ", width)
	}
	if op == OpEqual {
		return v.styles.Normal.Render(pad("  "+text, width))
	}
	return changed.Render(pad(marker+" "+text, width))
}

// pad truncates or right-pads s to exactly width cells.
func pad(s string, width int) string {
	s = strings.ReplaceAll(s, "\t", "  ")
	r := []rune(s)
	for lipgloss.Width(string(r)) > width && len(r) > 0 {
		r = r[:len(r)-1]
	}
	s = string(r)
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}
