package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/ycard/internal/adapters/driving/tui/components/diffview"
	"github.com/custodia-labs/ycard/internal/adapters/driving/tui/components/editarea"
	"github.com/custodia-labs/ycard/internal/adapters/driving/tui/components/logpanel"
	"github.com/custodia-labs/ycard/internal/adapters/driving/tui/components/modal"
	"github.com/custodia-labs/ycard/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/ycard/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ycard/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ycard/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ycard/internal/core/domain"
	"github.com/custodia-labs/ycard/internal/core/ports/driving"
	"github.com/custodia-labs/ycard/internal/logger"
)

// logPanelWidth is the widest the activity log panel gets.
const logPanelWidth = 48

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// session owns the activity log and the baseline snapshot.
	session driving.SessionService

	styles *styles.Styles
	theme  domain.Theme
	keymap *keymap.KeyMap

	area     *editarea.Area
	diffView *diffview.View
	logPanel *logpanel.Panel
	modal    *modal.Modal
	bar      *status.Bar

	// baseline is the text the editor was opened with.
	baseline string

	// currentView tracks which view is active.
	currentView messages.ViewType

	// saving is set while a save command is in flight.
	saving bool

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates the first window size has arrived.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the editor holding text and mounts it on a fresh session.
func NewApp(ports *Ports, text string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	theme := domain.ThemeDark
	if ports.Settings != nil {
		if settings, err := ports.Settings.Get(); err == nil {
			theme = settings.Editor.Theme
		}
	}

	s := styles.NewStyles(styles.ThemeFor(theme))
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:       ports,
		ctx:         context.Background(),
		session:     ports.Sessions.NewSession(),
		styles:      s,
		theme:       theme,
		keymap:      km,
		area:        editarea.New(s, text),
		diffView:    diffview.NewView(s),
		logPanel:    logpanel.NewPanel(s),
		modal:       modal.New(s, km),
		bar:         status.NewBar(s, km),
		baseline:    text,
		currentView: messages.ViewEditor,
	}

	a.apply(a.session.Mount(a.area))
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.area.Init(),
		tea.SetWindowTitle("ycard - Contact Editor"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.OutcomeReceived:
		if msg.Outcome.Action == domain.ActionSave {
			a.saving = false
		}
		a.apply(msg.Outcome)
		return a, nil

	case messages.ThemeChanged:
		if msg.Err != nil {
			a.bar.SetMessage(domain.LogWarning, "Theme not saved: "+msg.Err.Error())
		}
		return a, nil

	case messages.ViewChanged:
		a.setView(msg.View)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	if a.currentView == messages.ViewDiff {
		a.diffView, cmd = a.diffView.Update(msg)
	} else {
		a.area, cmd = a.area.Update(msg)
	}
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	if keymap.Matches(k, a.keymap.Quit) {
		a.session.Close()
		return a, tea.Quit
	}

	if a.modal.Visible() {
		var cmd tea.Cmd
		a.modal, cmd = a.modal.Update(msg)
		return a, cmd
	}

	if a.currentView == messages.ViewDiff {
		if keymap.Matches(k, a.keymap.Back) {
			a.setView(messages.ViewEditor)
			return a, nil
		}
		var cmd tea.Cmd
		a.diffView, cmd = a.diffView.Update(msg)
		return a, cmd
	}

	switch {
	case keymap.Matches(k, a.keymap.Undo):
		a.apply(a.session.Undo())
		return a, nil
	case keymap.Matches(k, a.keymap.Redo):
		a.apply(a.session.Redo())
		return a, nil
	case keymap.Matches(k, a.keymap.Validate):
		a.apply(a.session.Validate())
		return a, nil
	case keymap.Matches(k, a.keymap.Save):
		return a, a.saveCmd()
	case keymap.Matches(k, a.keymap.Diff):
		a.apply(a.session.Diff())
		return a, nil
	case keymap.Matches(k, a.keymap.Logs):
		a.apply(a.session.ToggleLogs())
		a.layout()
		return a, nil
	case keymap.Matches(k, a.keymap.Theme):
		return a, a.toggleTheme()
	}

	var cmd tea.Cmd
	a.area, cmd = a.area.Update(msg)
	a.syncStatus()
	return a, cmd
}

// saveCmd runs the save off the update loop. Repeated presses while a save
// is in flight are ignored.
func (a *App) saveCmd() tea.Cmd {
	if a.saving {
		return nil
	}
	a.saving = true
	a.bar.SetMessage(domain.LogInfo, "Saving...")

	ctx, session := a.ctx, a.session
	return func() tea.Msg {
		return messages.OutcomeReceived{Outcome: session.Save(ctx)}
	}
}

func (a *App) toggleTheme() tea.Cmd {
	a.theme = a.theme.Toggle()
	a.restyle()

	settings, theme := a.ports.Settings, a.theme
	if settings == nil {
		return nil
	}
	return func() tea.Msg {
		return messages.ThemeChanged{Theme: theme, Err: settings.SetTheme(theme)}
	}
}

func (a *App) restyle() {
	a.styles = styles.NewStyles(styles.ThemeFor(a.theme))
	a.area.SetStyles(a.styles)
	a.diffView.SetStyles(a.styles)
	a.logPanel.SetStyles(a.styles)
	a.modal.SetStyles(a.styles)
	a.bar.SetStyles(a.styles)
}

// apply presents an outcome. Validate and save results, and any failure,
// open the dialog; a diff with changes opens the diff view.
func (a *App) apply(out domain.Outcome) {
	logger.Debug("tui: %s -> %s", out.Action, out.Kind)

	a.logPanel.SetEntries(a.session.Entries())
	a.bar.SetMessage(out.Category, out.Message)
	a.syncStatus()

	switch {
	case out.Kind == domain.OutcomeChanges && out.Diff != nil:
		a.diffView.SetDiff(*out.Diff)
		a.setView(messages.ViewDiff)
	case out.Action == domain.ActionValidate, out.Action == domain.ActionSave:
		a.modal.Show(out)
	case !out.OK():
		a.modal.Show(out)
	}
}

func (a *App) setView(v messages.ViewType) {
	a.currentView = v
	a.bar.SetDiffMode(v == messages.ViewDiff)
}

// syncStatus shows whether the text differs from what the editor opened with.
func (a *App) syncStatus() {
	state := a.session.State()
	if state.Active() {
		state = domain.SessionReady
		if a.area.Value() != a.baseline {
			state = domain.SessionEditing
		}
	}
	a.bar.SetState(state)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	header := a.renderHeader()
	body := a.renderBody()
	return lipgloss.JoinVertical(lipgloss.Left, header, body, a.bar.View())
}

func (a *App) renderHeader() string {
	title := a.styles.Title.Render("yCard")
	hints := ""
	for i, b := range a.keymap.ToolbarHelp() {
		if i > 0 {
			hints += "  "
		}
		h := b.Help()
		hints += h.Key + " " + h.Desc
	}
	return title + a.styles.Toolbar.Render(a.styles.Muted.Render(hints))
}

func (a *App) renderBody() string {
	if a.modal.Visible() {
		return a.modal.Place(a.width, a.bodyHeight())
	}
	if a.currentView == messages.ViewDiff {
		return a.diffView.View()
	}
	if a.session.LogsVisible() {
		return lipgloss.JoinHorizontal(lipgloss.Top, a.area.View(), a.logPanel.View())
	}
	return a.area.View()
}

// SetDimensions sets the terminal dimensions and lays out the components.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.layout()
}

func (a *App) bodyHeight() int {
	return max(a.height-2, 3)
}

func (a *App) layout() {
	body := a.bodyHeight()
	editorWidth := a.width
	if a.session.LogsVisible() {
		logsWidth := min(logPanelWidth, a.width/3)
		editorWidth -= logsWidth
		a.logPanel.SetDimensions(logsWidth, body)
	}
	a.area.SetSize(editorWidth, body)
	a.diffView.SetDimensions(a.width, body)
	a.modal.SetWidth(a.width)
	a.bar.SetWidth(a.width)
}

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Session returns the session driving the editor.
func (a *App) Session() driving.SessionService {
	return a.session
}

// Theme returns the active theme.
func (a *App) Theme() domain.Theme {
	return a.theme
}

// Value returns the current editor text.
func (a *App) Value() string {
	return a.area.Value()
}

// ModalVisible reports whether a notification dialog is open.
func (a *App) ModalVisible() bool {
	return a.modal.Visible()
}

// ModalOutcome returns the outcome shown in the dialog.
func (a *App) ModalOutcome() domain.Outcome {
	return a.modal.Outcome()
}

// StatusMessage returns the message shown in the status bar.
func (a *App) StatusMessage() string {
	return a.bar.Message()
}

// Width returns the terminal width.
func (a *App) Width() int {
	return a.width
}

// Height returns the terminal height.
func (a *App) Height() int {
	return a.height
}
