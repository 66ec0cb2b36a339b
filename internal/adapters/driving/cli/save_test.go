package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveCmd_SavesAndShows(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, validDoc, "save")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Saved 1 people to storage")

	out, err = execute(t, "", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Record:   ycard-data")
	assert.Contains(t, out, "People:   1")
	assert.Contains(t, out, "1. Ann Lee <ann@example.com>")
	assert.Contains(t, out, "org: Acme")
}

func TestSaveCmd_InvalidIsNotStored(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute(t, "people:\n  - uid: u1\n    name: Ann\n    surname: Lee\n    email: '  '\n", "save")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Save failed: Person 1 missing "email"`)

	out, err := execute(t, "", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing saved yet.")
}

func TestSaveCmd_InvalidKeepsPreviousRecord(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute(t, validDoc, "save")
	require.NoError(t, err)

	_, err = execute(t, "people: 5\n", "save")
	require.Error(t, err)

	out, err := execute(t, "", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Ann Lee")
}

func TestShowCmd_JSON(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	_, err := execute(t, validDoc, "save")
	require.NoError(t, err)

	out, err := execute(t, "", "show", "--json")

	require.NoError(t, err)
	assert.Contains(t, out, `"people": [`)
	assert.Contains(t, out, `"email": "ann@example.com"`)
}

func TestShowCmd_ErrorsWithoutServices(t *testing.T) {
	old := recordService
	recordService = nil
	defer func() { recordService = old }()

	_, err := execute(t, "", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "record service not configured")
}
