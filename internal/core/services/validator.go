package services

import (
	"fmt"

	"github.com/custodia-labs/ycard/internal/core/domain"
)

// CheckDocument applies the yCard structural rules in order and stops at the
// first violation:
//
//  1. people is present
//  2. people is a sequence
//  3. for each person, in order: uid, name, surname, email are non-blank,
//     phone (if present) is a sequence, address (if present) is not a sequence
//
// It has no side effects.
func CheckDocument(doc *domain.Document) domain.ValidationResult {
	people := doc.People()
	if !people.Present() {
		return domain.InvalidResult(domain.Violation{Kind: domain.ViolationMissingPeople})
	}
	if !people.IsSequence() {
		return domain.InvalidResult(domain.Violation{Kind: domain.ViolationPeopleNotArray})
	}

	for i, person := range people.Items {
		if v := checkPerson(person, i+1); v != nil {
			return domain.InvalidResult(*v)
		}
	}

	return domain.ValidResult(len(people.Items))
}

func checkPerson(person *domain.Node, index int) *domain.Violation {
	for _, field := range domain.RequiredFields {
		if !person.Get(field).NonBlank() {
			return &domain.Violation{Kind: domain.ViolationMissingField, Index: index, Field: field}
		}
	}

	if phone := person.Get(domain.KeyPhone); phone.Present() && !phone.IsSequence() {
		return &domain.Violation{Kind: domain.ViolationPhoneNotArray, Index: index}
	}

	if address := person.Get(domain.KeyAddress); address.Present() && address.IsSequence() {
		return &domain.Violation{Kind: domain.ViolationAddressIsArray, Index: index}
	}

	return nil
}

// Validator runs the structural rules and records each outcome in an activity log.
type Validator struct {
	log *ActivityLog
}

// NewValidator creates a validator writing to log.
func NewValidator(log *ActivityLog) *Validator {
	if log == nil {
		log = NewActivityLog()
	}
	return &Validator{log: log}
}

// Validate checks doc and appends exactly one log entry describing the result.
func (v *Validator) Validate(doc *domain.Document) domain.ValidationResult {
	result := CheckDocument(doc)
	v.log.Append(validationCategory(result), ValidationMessage(result))
	return result
}

// ValidationMessage returns the log message for a validation result.
func ValidationMessage(result domain.ValidationResult) string {
	if result.Valid() {
		return fmt.Sprintf("Validation passed! Found %d people", result.Count)
	}
	return "Validation failed: " + result.Violation.Message()
}

func validationCategory(result domain.ValidationResult) domain.LogCategory {
	if result.Valid() {
		return domain.LogSuccess
	}
	return domain.LogError
}
