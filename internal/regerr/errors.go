// Package regerr defines the error taxonomy shared by every registration
// operation. All errors carry the owner, category, and the name or slot that
// caused them so a failed setup can be reported without further context.
//
// Callers match on the kind with errors.Is against the exported sentinels:
//
//	if errors.Is(err, regerr.ErrDuplicateName) { ... }
package regerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is a machine-readable error classifier.
type Kind string

const (
	KindInvalidPhase    Kind = "invalid_phase"
	KindDuplicateName   Kind = "duplicate_name"
	KindMissingResource Kind = "missing_resource"
	KindOutOfRange      Kind = "out_of_range"
	KindValidation      Kind = "validation"
)

// Sentinels for errors.Is matching. They are never returned directly.
var (
	ErrInvalidPhase    = errors.New("registration outside loading phase")
	ErrDuplicateName   = errors.New("duplicate registration name")
	ErrMissingResource = errors.New("missing resource")
	ErrOutOfRange      = errors.New("out of range")
	ErrValidation      = errors.New("invalid registration")
)

var sentinels = map[Kind]error{
	KindInvalidPhase:    ErrInvalidPhase,
	KindDuplicateName:   ErrDuplicateName,
	KindMissingResource: ErrMissingResource,
	KindOutOfRange:      ErrOutOfRange,
	KindValidation:      ErrValidation,
}

// NoSlot marks an Error that does not concern a specific slot.
const NoSlot = -1

// Error is the single error type produced by the registration core.
type Error struct {
	Kind     Kind
	Owner    string
	Category string
	Name     string
	// Slot is the offending slot, or NoSlot.
	Slot    int
	Message string

	// Internal holds an underlying collaborator error, if any.
	Internal error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: owner %q, category %q", e.Kind, e.Owner, e.Category)
	if e.Name != "" {
		fmt.Fprintf(&b, ", name %q", e.Name)
	}
	if e.Slot != NoSlot {
		fmt.Fprintf(&b, ", slot %d", e.Slot)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Internal != nil {
		fmt.Fprintf(&b, " (internal: %v)", e.Internal)
	}
	return b.String()
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Internal
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	return sentinels[e.Kind] == target
}

// --- Constructors ---

// InvalidPhase is returned when a mutating call happens outside the owner's
// loading phase.
func InvalidPhase(owner, category, name, phase string) *Error {
	return &Error{
		Kind:     KindInvalidPhase,
		Owner:    owner,
		Category: category,
		Name:     name,
		Slot:     NoSlot,
		Message:  fmt.Sprintf("owner is %s, registration is only allowed while loading", phase),
	}
}

// DuplicateName is returned when (owner, category, name) is already taken.
func DuplicateName(owner, category, name string) *Error {
	return &Error{
		Kind:     KindDuplicateName,
		Owner:    owner,
		Category: category,
		Name:     name,
		Slot:     NoSlot,
		Message:  "name already registered by this owner",
	}
}

// MissingResource is returned when no asset was loaded under path.
func MissingResource(owner, category, name, path string, internal error) *Error {
	return &Error{
		Kind:     KindMissingResource,
		Owner:    owner,
		Category: category,
		Name:     name,
		Slot:     NoSlot,
		Message:  fmt.Sprintf("no asset loaded at %q", path),
		Internal: internal,
	}
}

// OutOfRange is returned when a slot falls outside its category's valid range.
func OutOfRange(owner, category, name string, slot int, message string) *Error {
	return &Error{
		Kind:     KindOutOfRange,
		Owner:    owner,
		Category: category,
		Name:     name,
		Slot:     slot,
		Message:  message,
	}
}

// Invalid is returned for composite registrations that fail validation, such
// as linking to a target that is already claimed.
func Invalid(owner, category, name string, slot int, message string) *Error {
	return &Error{
		Kind:     KindValidation,
		Owner:    owner,
		Category: category,
		Name:     name,
		Slot:     slot,
		Message:  message,
	}
}

// KindOf returns the Kind of err, or "" when err is not a registration error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
