// Package dterr implements the "expected failures" error category from
// spec.md section 7: flow-control conditions that bubble up to the request
// shell as structured data rather than indicating a bug. Grounded on the
// teacher's pkg/ability/errors.go sentinel-error list, generalized from
// plain errors.New sentinels to a structured *Error carrying a Code plus
// per-code payload, because spec.md requires ParseFailed to carry a
// (span, expected) pair and VariableBindingInvalid to carry (name, value) —
// data a sentinel error cannot hold without a type assertion anti-pattern.
package dterr

import "fmt"

// Code identifies which expected-failure condition occurred.
type Code int

const (
	// ActionIllegal: the action was not present in the computed legal set.
	ActionIllegal Code = iota
	// ParseFailed: card-text parsing failed at a specific token span.
	ParseFailed
	// VariableBindingInvalid: a {directive} variable substitution failed.
	VariableBindingInvalid
	// CatalogMissing: deserialization resolved to an identity absent from
	// the catalog.
	CatalogMissing
	// SaveNotQuiescent: a save was attempted while the battle has a pending
	// prompt, a non-empty stack, or other in-flight resolution state that
	// the save format does not capture.
	SaveNotQuiescent
	// SaveVersionUnsupported: a save document's Version field does not match
	// any version this build of the engine knows how to load.
	SaveVersionUnsupported
)

func (c Code) String() string {
	switch c {
	case ActionIllegal:
		return "ActionIllegal"
	case ParseFailed:
		return "ParseFailed"
	case VariableBindingInvalid:
		return "VariableBindingInvalid"
	case CatalogMissing:
		return "CatalogMissing"
	case SaveNotQuiescent:
		return "SaveNotQuiescent"
	case SaveVersionUnsupported:
		return "SaveVersionUnsupported"
	default:
		return "UnknownCode"
	}
}

// Span identifies a token range in card text, used by ParseFailed.
type Span struct {
	Start  int
	Length int
}

// Error is the structured expected-failure type returned to the external
// request shell. It is deliberately not created via errors.New: each Code
// has a distinct payload shape, attached via the typed constructors below.
type Error struct {
	Code Code
	// Message is a human-readable summary.
	Message string
	// Span is populated only for ParseFailed.
	Span Span
	// Expected lists the alternatives the parser was trying when it failed
	// (ParseFailed only) — the "nearest matching alternative from the
	// choice set at that position" spec.md section 4.C's diagnostics
	// describe.
	Expected []string
	// Name/Value are populated for VariableBindingInvalid; Name also
	// carries the missing identity for CatalogMissing.
	Name  string
	Value string
}

func (e *Error) Error() string {
	switch e.Code {
	case ParseFailed:
		return fmt.Sprintf("%s at %d..%d: %s (expected one of %v)",
			e.Code, e.Span.Start, e.Span.Start+e.Span.Length, e.Message, e.Expected)
	case VariableBindingInvalid:
		return fmt.Sprintf("%s: variable %q has invalid value %q: %s", e.Code, e.Name, e.Value, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// NewActionIllegal reports that an action was not in the legal-action set.
func NewActionIllegal(message string) *Error {
	return &Error{Code: ActionIllegal, Message: message}
}

// NewParseFailed reports a card-text parse failure at span, suggesting the
// alternatives the grammar was trying at that position.
func NewParseFailed(span Span, message string, expected ...string) *Error {
	return &Error{Code: ParseFailed, Message: message, Span: span, Expected: expected}
}

// NewVariableBindingInvalid reports that a {directive} variable could not be
// bound to a valid value.
func NewVariableBindingInvalid(name, value, message string) *Error {
	return &Error{Code: VariableBindingInvalid, Message: message, Name: name, Value: value}
}

// NewCatalogMissing reports that a saved/serialized identity is absent from
// the running process's card catalog.
func NewCatalogMissing(identity string) *Error {
	return &Error{Code: CatalogMissing, Message: "identity not found in catalog", Name: identity}
}

// NewSaveNotQuiescent reports that a battle cannot be snapshotted in its
// current state.
func NewSaveNotQuiescent(message string) *Error {
	return &Error{Code: SaveNotQuiescent, Message: message}
}

// NewSaveVersionUnsupported reports that a save document's version is not
// one this build knows how to load.
func NewSaveVersionUnsupported(version int) *Error {
	return &Error{Code: SaveVersionUnsupported, Message: fmt.Sprintf("unsupported save version %d", version)}
}

// Is supports errors.Is comparisons by Code, ignoring payload differences.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == other.Code
}
