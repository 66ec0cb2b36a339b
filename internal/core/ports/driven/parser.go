package driven

import "github.com/custodia-labs/ycard/internal/core/domain"

// DocumentParser converts raw text into a normalised document.
// On malformed syntax it returns *domain.ParseError carrying a human-readable
// diagnostic. Parsing has no side effects.
type DocumentParser interface {
	Parse(text string) (*domain.Document, error)
}
