package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVerifier(t *testing.T) *Verifier {
	t.Helper()
	v, err := NewVerifier()
	require.NoError(t, err)
	return v
}

func TestVerify_Valid(t *testing.T) {
	v := newVerifier(t)

	err := v.Verify([]byte(`{
  "people": [
    {"uid": "u1", "name": "A", "surname": "B", "email": "a@b.com",
     "phone": [{"number": "555", "type": "work"}], "address": {"city": "Paris"}},
    {"uid": 7, "name": "C", "surname": "D", "email": "c@d.com", "phone": null}
  ]
}`))

	assert.NoError(t, err)
}

func TestVerify_EmptyPeople(t *testing.T) {
	assert.NoError(t, newVerifier(t).Verify([]byte(`{"people": []}`)))
}

func TestVerify_Failures(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantPath string
	}{
		{"missing people", `{}`, ""},
		{"people not array", `{"people": {}}`, "people"},
		{"blank uid", `{"people": [{"uid": " ", "name": "A", "surname": "B", "email": "e"}]}`, "people[0].uid"},
		{"phone object", `{"people": [{"uid": "1", "name": "A", "surname": "B", "email": "e", "phone": {}}]}`, "people[0].phone"},
		{"address array", `{"people": [{"uid": "1", "name": "A", "surname": "B", "email": "e", "address": []}]}`, "people[0].address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newVerifier(t).Verify([]byte(tt.data))

			require.Error(t, err)
			var verr *VerificationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantPath, verr.Path)
			assert.NotEmpty(t, verr.Message)
		})
	}
}

func TestVerify_InvalidJSON(t *testing.T) {
	err := newVerifier(t).Verify([]byte(`{"people": [`))

	var verr *VerificationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "invalid JSON")
}

func TestPointerToPath(t *testing.T) {
	assert.Equal(t, "", pointerToPath(""))
	assert.Equal(t, "people", pointerToPath("/people"))
	assert.Equal(t, "people[0].uid", pointerToPath("/people/0/uid"))
	assert.Equal(t, "a/b.c~d", pointerToPath("/a~1b/c~0d"))
}

func TestVerify_TrailingData(t *testing.T) {
	err := newVerifier(t).Verify([]byte(`{"people": []} {"people": []}`))

	var verr *VerificationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "trailing data")
}

func TestVerify_LargeNumbers(t *testing.T) {
	err := newVerifier(t).Verify([]byte(`{"people": [
  {"uid": 123456789012345678901234567890, "name": "A", "surname": "B", "email": "a@b.com",
   "phone": [{"number": 15551234567}]}
]}`))

	assert.NoError(t, err)
}
