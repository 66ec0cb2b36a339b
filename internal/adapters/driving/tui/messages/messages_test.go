package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/ycard/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewEditor, "editor"},
		{ViewDiff, "diff"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.String())
		})
	}
}

func TestOutcomeReceived(t *testing.T) {
	msg := OutcomeReceived{Outcome: domain.Outcome{
		Action: domain.ActionSave,
		Kind:   domain.OutcomeOK,
		Count:  2,
	}}

	assert.Equal(t, domain.ActionSave, msg.Outcome.Action)
	assert.True(t, msg.Outcome.OK())
	assert.Equal(t, 2, msg.Outcome.Count)
}

func TestThemeChanged(t *testing.T) {
	err := errors.New("disk full")
	msg := ThemeChanged{Theme: domain.ThemeLight, Err: err}

	assert.Equal(t, domain.ThemeLight, msg.Theme)
	assert.ErrorIs(t, msg.Err, err)
}
