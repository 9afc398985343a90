package apperr

import (
	"errors"

	"github.com/google/uuid"
)

// Kind classifies a failure so callers can branch on the class of error
// without parsing messages.
type Kind int

const (
	// KindInternal is a storage or transport failure not attributable to
	// caller input. It is the zero value so an unclassified error defaults
	// to the generic case.
	KindInternal Kind = iota
	// KindInvalidValue is malformed input: a bad identifier, a negative price.
	KindInvalidValue
	// KindInvalidRange is a structurally inconsistent range: start >= end,
	// min_calls >= max_calls.
	KindInvalidRange
	// KindNotFound means a referenced entity does not exist or is archived.
	KindNotFound
	// KindOutOfBounds means a rate card period exceeds its contract period.
	KindOutOfBounds
	// KindOverlapConflict means a rate card period collides with a sibling.
	KindOverlapConflict
)

// Error is a classified failure with enough context (field, conflicting
// record) for the caller to render a precise message.
type Error struct {
	Kind       Kind
	Field      string
	ConflictID uuid.UUID
	Message    string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewField attaches the offending field name to the failure.
func NewField(kind Kind, field, message string) *Error {
	return &Error{Kind: kind, Field: field, Message: message}
}

// NewConflict reports an overlap against a specific sibling record.
func NewConflict(field, message string, conflictID uuid.UUID) *Error {
	return &Error{Kind: KindOverlapConflict, Field: field, ConflictID: conflictID, Message: message}
}

// KindOf extracts the kind from an error chain. Anything that is not an
// *apperr.Error is reported as internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
