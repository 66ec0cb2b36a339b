package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/ycard/internal/core/domain"
	"github.com/custodia-labs/ycard/internal/core/ports/driven"
	"github.com/custodia-labs/ycard/internal/core/ports/driving"
	"github.com/custodia-labs/ycard/internal/logger"
)

// Ensure Session implements the interface.
var _ driving.SessionService = (*Session)(nil)

// Notification titles.
const (
	titleNotReady      = "Editor not ready"
	titleValid         = "Valid YAML"
	titleInvalidYAML   = "Invalid YAML"
	titleValidation    = "Validation Failed"
	titleCannotSave    = "Cannot Save"
	titleCannotSaveYML = "Cannot Save - Invalid YAML"
	titleSaved         = "Saved Successfully!"
	titleNoChanges     = "No Changes"
	titleDiff          = "Changes"
	titleEditor        = "Editor"
	titleLogs          = "Activity Log"
)

// Session owns the activity log, baseline snapshot and editor handle of one
// open editor. Actions are serialised; each appends exactly one log entry and
// returns one outcome.
type Session struct {
	mu sync.Mutex

	id        string
	parser    driven.DocumentParser
	persist   *PersistenceService
	log       *ActivityLog
	validator *Validator
	snapshot  *SnapshotTracker

	editor      driven.EditorSurface
	state       domain.SessionState
	logsVisible bool
}

// NewSession creates an idle session. A new activity log is created when log is nil.
func NewSession(parser driven.DocumentParser, persist *PersistenceService, log *ActivityLog) *Session {
	if log == nil {
		log = NewActivityLog()
	}
	return &Session{
		id:        uuid.NewString(),
		parser:    parser,
		persist:   persist,
		log:       log,
		validator: NewValidator(log),
		snapshot:  NewSnapshotTracker(),
		state:     domain.SessionIdle,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Mount attaches the editing surface and captures its current text as the
// baseline. Later mounts swap the surface but keep the first baseline.
func (s *Session) Mount(editor driven.EditorSurface) domain.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == domain.SessionClosed || editor == nil {
		return s.notReady(domain.ActionMount)
	}

	s.editor = editor
	if err := s.snapshot.Capture(editor.Value()); errors.Is(err, domain.ErrAlreadyCaptured) {
		s.refreshState()
		return s.finish(domain.Outcome{
			Action:   domain.ActionMount,
			Kind:     domain.OutcomeOK,
			Category: domain.LogWarning,
			Title:    titleEditor,
			Message:  "Editor re-initialized; keeping original snapshot",
		})
	}

	s.state = domain.SessionReady
	logger.Debug("session %s mounted", s.id)
	return s.finish(domain.Outcome{
		Action:   domain.ActionMount,
		Kind:     domain.OutcomeOK,
		Category: domain.LogSuccess,
		Title:    titleEditor,
		Message:  "Editor initialized successfully",
	})
}

// Validate parses the current editor text and checks it.
func (s *Session) Validate() domain.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Active() {
		return s.notReady(domain.ActionValidate)
	}
	defer s.refreshState()

	doc, err := s.parser.Parse(s.editor.Value())
	if err != nil {
		return s.finish(domain.Outcome{
			Action:   domain.ActionValidate,
			Kind:     domain.OutcomeParseError,
			Category: domain.LogError,
			Title:    titleInvalidYAML,
			Message:  "YAML parse error: " + err.Error(),
		})
	}

	// The validator appends the log entry itself.
	result := s.validator.Validate(doc)
	out := domain.Outcome{
		Action:  domain.ActionValidate,
		Message: ValidationMessage(result),
	}
	if result.Valid() {
		out.Kind = domain.OutcomeOK
		out.Category = domain.LogSuccess
		out.Title = titleValid
		out.Count = result.Count
		return out
	}

	out.Kind = domain.OutcomeInvalid
	out.Category = domain.LogError
	out.Violation = result.Violation
	out.Title = titleValidation
	if result.Violation.Index == 0 {
		out.Title = titleInvalidYAML
	}
	return out
}

// Save parses the current editor text and hands it to the persistence service.
func (s *Session) Save(ctx context.Context) domain.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Active() {
		return s.notReady(domain.ActionSave)
	}
	defer s.refreshState()

	doc, err := s.parser.Parse(s.editor.Value())
	if err != nil {
		return s.finish(domain.Outcome{
			Action:   domain.ActionSave,
			Kind:     domain.OutcomeParseError,
			Category: domain.LogError,
			Title:    titleCannotSaveYML,
			Message:  "Save failed: " + err.Error(),
		})
	}

	result := s.persist.Save(ctx, doc)
	switch result.Status {
	case domain.SaveSaved:
		return s.finish(domain.Outcome{
			Action:   domain.ActionSave,
			Kind:     domain.OutcomeOK,
			Category: domain.LogSuccess,
			Title:    titleSaved,
			Message:  fmt.Sprintf("Saved %d people to storage", result.Count),
			Count:    result.Count,
		})
	case domain.SaveRejected:
		return s.finish(domain.Outcome{
			Action:    domain.ActionSave,
			Kind:      domain.OutcomeInvalid,
			Category:  domain.LogError,
			Title:     titleCannotSave,
			Message:   "Save failed: " + result.Violation.Message(),
			Violation: result.Violation,
		})
	default:
		return s.finish(domain.Outcome{
			Action:   domain.ActionSave,
			Kind:     domain.OutcomeStorageFailed,
			Category: domain.LogError,
			Title:    titleCannotSave,
			Message:  "Save failed: " + result.Reason,
		})
	}
}

// Diff compares the current editor text with the baseline.
func (s *Session) Diff() domain.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Active() {
		return s.notReady(domain.ActionDiff)
	}
	defer s.refreshState()

	diff := s.snapshot.RequestDiff(s.editor.Value())
	if !diff.Changed {
		return s.finish(domain.Outcome{
			Action:   domain.ActionDiff,
			Kind:     domain.OutcomeNoChanges,
			Category: domain.LogInfo,
			Title:    titleNoChanges,
			Message:  "No changes detected",
		})
	}

	return s.finish(domain.Outcome{
		Action:   domain.ActionDiff,
		Kind:     domain.OutcomeChanges,
		Category: domain.LogInfo,
		Title:    titleDiff,
		Message:  "Comparing current content with original",
		Diff:     &diff,
	})
}

// Undo forwards an undo command to the editor.
func (s *Session) Undo() domain.Outcome {
	return s.command(domain.ActionUndo, domain.EditorUndo, "Undo")
}

// Redo forwards a redo command to the editor.
func (s *Session) Redo() domain.Outcome {
	return s.command(domain.ActionRedo, domain.EditorRedo, "Redo")
}

func (s *Session) command(action domain.Action, cmd domain.EditorCommand, label string) domain.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Active() {
		return s.notReady(action)
	}
	defer s.refreshState()

	if err := s.editor.Trigger(cmd); err != nil {
		return s.finish(domain.Outcome{
			Action:   action,
			Kind:     domain.OutcomeCommandFailed,
			Category: domain.LogError,
			Title:    titleEditor,
			Message:  fmt.Sprintf("%s failed: %v", label, err),
		})
	}

	return s.finish(domain.Outcome{
		Action:   action,
		Kind:     domain.OutcomeOK,
		Category: domain.LogInfo,
		Title:    titleEditor,
		Message:  label + " performed",
	})
}

// ToggleLogs flips the activity log panel visibility.
func (s *Session) ToggleLogs() domain.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Active() {
		return s.notReady(domain.ActionToggleLogs)
	}

	s.logsVisible = !s.logsVisible
	msg := "Logs panel closed"
	if s.logsVisible {
		msg = "Logs panel opened"
	}
	return s.finish(domain.Outcome{
		Action:   domain.ActionToggleLogs,
		Kind:     domain.OutcomeOK,
		Category: domain.LogInfo,
		Title:    titleLogs,
		Message:  msg,
	})
}

// LogsVisible reports whether the activity log panel is shown.
func (s *Session) LogsVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logsVisible
}

// Entries returns the activity log, oldest first.
func (s *Session) Entries() []domain.LogEntry {
	return s.log.Entries()
}

// State returns the current lifecycle state.
func (s *Session) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Baseline returns the text captured at mount.
func (s *Session) Baseline() string {
	return s.snapshot.Baseline()
}

// Close discards the editor handle. Further actions report editor not ready.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editor = nil
	s.state = domain.SessionClosed
	logger.Debug("session %s closed", s.id)
}

func (s *Session) notReady(action domain.Action) domain.Outcome {
	return s.finish(domain.Outcome{
		Action:   action,
		Kind:     domain.OutcomeNotReady,
		Category: domain.LogError,
		Title:    titleNotReady,
		Message:  titleNotReady,
	})
}

// finish appends the outcome's log entry. Caller must hold s.mu.
func (s *Session) finish(out domain.Outcome) domain.Outcome {
	s.log.Append(out.Category, out.Message)
	return out
}

// refreshState moves between Ready and Editing. Caller must hold s.mu.
func (s *Session) refreshState() {
	if !s.state.Active() || s.editor == nil {
		return
	}
	if s.editor.Value() == s.snapshot.Baseline() {
		s.state = domain.SessionReady
	} else {
		s.state = domain.SessionEditing
	}
}

// SessionManager opens sessions that share a parser and persistence service.
type SessionManager struct {
	parser  driven.DocumentParser
	persist *PersistenceService
}

// Ensure SessionManager implements the interface.
var _ driving.SessionFactory = (*SessionManager)(nil)

// NewSessionManager creates a session factory.
func NewSessionManager(parser driven.DocumentParser, persist *PersistenceService) *SessionManager {
	return &SessionManager{parser: parser, persist: persist}
}

// NewSession opens a fresh idle session with its own activity log.
func (m *SessionManager) NewSession() driving.SessionService {
	return NewSession(m.parser, m.persist, nil)
}

// Open opens a session already mounted on editor.
func (m *SessionManager) Open(editor driven.EditorSurface) (*Session, domain.Outcome) {
	session := NewSession(m.parser, m.persist, nil)
	return session, session.Mount(editor)
}
