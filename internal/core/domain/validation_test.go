package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViolation_Message(t *testing.T) {
	tests := []struct {
		name string
		v    Violation
		want string
	}{
		{"missing people", Violation{Kind: ViolationMissingPeople}, `Missing "people" array`},
		{"people not array", Violation{Kind: ViolationPeopleNotArray}, `"people" must be an array`},
		{"missing field", Violation{Kind: ViolationMissingField, Index: 2, Field: "email"}, `Person 2 missing "email"`},
		{"phone", Violation{Kind: ViolationPhoneNotArray, Index: 1}, `Person 1 "phone" must be an array`},
		{"address", Violation{Kind: ViolationAddressIsArray, Index: 3}, `Person 3 "address" should be an object`},
		{"unknown", Violation{Kind: "other"}, "invalid document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Message())
			assert.Equal(t, tt.want, tt.v.Error())
		})
	}
}

func TestValidationResult(t *testing.T) {
	valid := ValidResult(3)
	assert.True(t, valid.Valid())
	assert.Equal(t, 3, valid.Count)

	invalid := InvalidResult(Violation{Kind: ViolationMissingPeople})
	assert.False(t, invalid.Valid())
	assert.Equal(t, ViolationMissingPeople, invalid.Violation.Kind)
	assert.Equal(t, "missing_people_array", invalid.Violation.Kind.String())
}
