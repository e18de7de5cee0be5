package cardtext

import (
	"strconv"
	"strings"

	"github.com/dreamtides/dtengine/dterr"
)

// BindingKind classifies what a BindingValue substitutes.
type BindingKind int

const (
	BindInt BindingKind = iota
	BindText
)

// BindingValue is one per-card value substituted into a {placeholder} before
// grammar parsing runs, per spec.md section 4.C's variable-binding pass.
type BindingValue struct {
	Kind BindingKind
	Int  int
	Text string
}

// IntBinding is a convenience constructor for a numeric binding.
func IntBinding(n int) BindingValue { return BindingValue{Kind: BindInt, Int: n} }

// TextBinding is a convenience constructor for a subtype/word binding.
func TextBinding(s string) BindingValue { return BindingValue{Kind: BindText, Text: s} }

// variablePlaceholders lists the per-card directive names substituted by
// BindVariables. Other directive forms ({cardtype: ...}, {dissolve},
// {reclaim}, {foresee(n: N)}, and so on) are fixed grammar vocabulary handled
// directly by the parser, not per-card variables.
var variablePlaceholders = []string{"e", "cards", "s", "subtype"}

// BindVariables substitutes {e}, {cards}, {s}, and {subtype} placeholders in
// text from vars, returning the concrete text the lexer/parser will consume.
// A placeholder present in text with no corresponding entry in vars is a
// VariableBindingInvalid failure (spec.md section 7).
func BindVariables(text string, vars map[string]BindingValue) (string, error) {
	for _, name := range variablePlaceholders {
		placeholder := "{" + name + "}"
		if !strings.Contains(text, placeholder) {
			continue
		}
		value, ok := vars[name]
		if !ok {
			return "", dterr.NewVariableBindingInvalid(name, "", "no binding supplied for this placeholder")
		}
		var rendered string
		switch value.Kind {
		case BindInt:
			rendered = strconv.Itoa(value.Int)
		case BindText:
			rendered = value.Text
		default:
			return "", dterr.NewVariableBindingInvalid(name, value.Text, "unrecognized binding kind")
		}
		text = strings.ReplaceAll(text, placeholder, rendered)
	}
	return text, nil
}
