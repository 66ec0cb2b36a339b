package domain

// SessionState is the lifecycle position of an editing session.
type SessionState int

const (
	// SessionIdle means no editor is mounted yet.
	SessionIdle SessionState = iota

	// SessionReady means an editor is mounted and its text equals the baseline.
	SessionReady

	// SessionEditing means the editor text differs from the baseline.
	SessionEditing

	// SessionClosed means the session was discarded.
	SessionClosed
)

// String returns the string representation.
func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionReady:
		return "ready"
	case SessionEditing:
		return "editing"
	case SessionClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Active reports whether user actions are accepted in this state.
func (s SessionState) Active() bool {
	return s == SessionReady || s == SessionEditing
}

// EditorCommand is a command forwarded to the editing surface.
type EditorCommand string

// Editor commands.
const (
	EditorUndo EditorCommand = "undo"
	EditorRedo EditorCommand = "redo"
)

// Action names a user-triggered session operation.
type Action string

// Session actions.
const (
	ActionMount      Action = "mount"
	ActionValidate   Action = "validate"
	ActionSave       Action = "save"
	ActionDiff       Action = "diff"
	ActionUndo       Action = "undo"
	ActionRedo       Action = "redo"
	ActionToggleLogs Action = "toggle_logs"
)

// OutcomeKind classifies the user-visible result of an action.
type OutcomeKind string

// Outcome kinds.
const (
	OutcomeOK            OutcomeKind = "ok"
	OutcomeNotReady      OutcomeKind = "editor_not_ready"
	OutcomeParseError    OutcomeKind = "parse_error"
	OutcomeInvalid       OutcomeKind = "invalid"
	OutcomeStorageFailed OutcomeKind = "storage_failed"
	OutcomeNoChanges     OutcomeKind = "no_changes"
	OutcomeChanges       OutcomeKind = "changes"
	OutcomeCommandFailed OutcomeKind = "command_failed"
)

// Outcome is the structured, user-visible result of one session action.
// The host decides how to present it; Message always equals the message of
// the log entry the action appended.
type Outcome struct {
	Action   Action
	Kind     OutcomeKind
	Category LogCategory

	// Title is a short heading for a notification dialog.
	Title string

	// Message mirrors the activity log entry.
	Message string

	// Count is the number of people for successful validate/save.
	Count int

	// Violation is set for OutcomeInvalid.
	Violation *Violation

	// Diff is set for OutcomeChanges.
	Diff *DiffOutcome
}

// OK reports whether the action succeeded from the user's point of view.
func (o Outcome) OK() bool {
	switch o.Kind {
	case OutcomeOK, OutcomeNoChanges, OutcomeChanges:
		return true
	default:
		return false
	}
}
