package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCmd_Use(t *testing.T) {
	assert.Equal(t, "validate [file|-]", validateCmd.Use)
}

func TestValidateCmd_ValidFile(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	path := writeFile(t, "people.yaml", validDoc)

	out, err := execute(t, "", "validate", path)

	require.NoError(t, err)
	assert.Contains(t, out, "✓ Validation passed! Found 1 people")
}

func TestValidateCmd_Stdin(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, validDoc, "validate", "-")

	require.NoError(t, err)
	assert.Contains(t, out, "Validation passed! Found 1 people")
}

func TestValidateCmd_Invalid(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"missing people", "contacts: []\n", `Validation failed: Missing "people" array`},
		{"people not a list", "people: {}\n", `Validation failed: "people" must be an array`},
		{"missing email", "people:\n  - uid: u1\n    name: A\n    surname: B\n", `Validation failed: Person 1 missing "email"`},
		{"parse error", "people: [", "YAML parse error:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.doc, "validate")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateCmd_Log(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, validDoc, "validate", "--log")

	require.NoError(t, err)
	assert.Contains(t, out, "Activity Log")
	assert.Contains(t, out, "Editor initialized successfully")
}

func TestValidateCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute(t, "", "validate", "/does/not/exist.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestValidateCmd_ErrorsWithoutServices(t *testing.T) {
	old := sessionFactory
	sessionFactory = nil
	defer func() { sessionFactory = old }()

	_, err := execute(t, validDoc, "validate")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "session service not configured")
}
