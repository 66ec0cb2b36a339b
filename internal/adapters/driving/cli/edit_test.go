package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ycard/internal/core/domain"
)

func TestEditCmd_Use(t *testing.T) {
	assert.Equal(t, "edit [file]", editCmd.Use)
}

func TestInitialText_FromFile(t *testing.T) {
	path := writeFile(t, "people.yaml", validDoc)

	text, err := initialText(context.Background(), []string{path})

	require.NoError(t, err)
	assert.Equal(t, validDoc, text)
}

func TestInitialText_NewFileUsesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.yaml")

	text, err := initialText(context.Background(), []string{path})

	require.NoError(t, err)
	assert.Equal(t, newDocumentTemplate, text)
}

func TestInitialText_NothingSaved(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	text, err := initialText(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, newDocumentTemplate, text)
}

func TestInitialText_FromStoredRecord(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	_, err := execute(t, validDoc, "save")
	require.NoError(t, err)

	text, err := initialText(context.Background(), nil)

	require.NoError(t, err)
	assert.Contains(t, text, "people:")
	assert.Contains(t, text, "email: ann@example.com")
}

func TestNewDocumentTemplate_IsValid(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, newDocumentTemplate, "validate")

	require.NoError(t, err)
	assert.Contains(t, out, "Found 1 people")
}

func TestRecordYAML_CorruptData(t *testing.T) {
	_, err := recordYAML(&domain.PersistedRecord{Data: []byte("{")})

	assert.Error(t, err)
}
