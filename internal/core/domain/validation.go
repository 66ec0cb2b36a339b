package domain

import "fmt"

// ViolationKind identifies which structural rule failed.
type ViolationKind string

// Violation kinds, in rule order.
const (
	// ViolationMissingPeople means the document has no people value.
	ViolationMissingPeople ViolationKind = "missing_people_array"

	// ViolationPeopleNotArray means people is present but not a sequence.
	ViolationPeopleNotArray ViolationKind = "people_not_array"

	// ViolationMissingField means a required person field is absent or blank.
	ViolationMissingField ViolationKind = "missing_field"

	// ViolationPhoneNotArray means a person's phone is present but not a sequence.
	ViolationPhoneNotArray ViolationKind = "phone_not_array"

	// ViolationAddressIsArray means a person's address is a sequence.
	ViolationAddressIsArray ViolationKind = "address_is_array"
)

// String returns the string representation.
func (k ViolationKind) String() string {
	return string(k)
}

// Violation is the first rule failure found in a document.
// Index is the 1-based person index; zero for document-level violations.
type Violation struct {
	Kind  ViolationKind `json:"kind"`
	Index int           `json:"index,omitempty"`
	Field string        `json:"field,omitempty"`
}

// Message returns the human-readable description of the violation.
func (v Violation) Message() string {
	switch v.Kind {
	case ViolationMissingPeople:
		return `Missing "people" array`
	case ViolationPeopleNotArray:
		return `"people" must be an array`
	case ViolationMissingField:
		return fmt.Sprintf("Person %d missing %q", v.Index, v.Field)
	case ViolationPhoneNotArray:
		return fmt.Sprintf(`Person %d "phone" must be an array`, v.Index)
	case ViolationAddressIsArray:
		return fmt.Sprintf(`Person %d "address" should be an object`, v.Index)
	default:
		return "invalid document"
	}
}

// Error implements error.
func (v Violation) Error() string {
	return v.Message()
}

// ValidationResult is either Valid (Violation nil, Count set) or Invalid.
type ValidationResult struct {
	// Count is the number of person records. Only meaningful when valid.
	Count int

	// Violation is the first failing rule, nil when valid.
	Violation *Violation
}

// Valid reports whether no rule failed.
func (r ValidationResult) Valid() bool {
	return r.Violation == nil
}

// ValidResult returns a valid result for count records.
func ValidResult(count int) ValidationResult {
	return ValidationResult{Count: count}
}

// InvalidResult returns an invalid result carrying v.
func InvalidResult(v Violation) ValidationResult {
	return ValidationResult{Violation: &v}
}
