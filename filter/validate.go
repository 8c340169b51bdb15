package filter

import (
	"math"
	"slices"
	"strings"
)

// ValidateCondition reports whether a condition is well-formed against the
// schema: its field exists, its operator is declared on that field (not
// merely legal for the type), and its value has the shape the field's type
// requires. Invalid conditions are dropped silently by callers before
// evaluation; they are never surfaced as user-facing errors.
func (s *Schema) ValidateCondition(c Condition) bool {
	def, ok := s.Lookup(c.Field)
	if !ok {
		return false
	}
	if !slices.Contains(def.Operators, c.Operator) {
		return false
	}

	switch def.Type {
	case TypeText, TypeSingleSelect:
		return c.Value.Kind == KindString && strings.TrimSpace(c.Value.Str) != ""
	case TypeNumber:
		return c.Value.Kind == KindNumber &&
			!math.IsNaN(c.Value.Num) && !math.IsInf(c.Value.Num, 0)
	case TypeDate:
		// Presence and shape only. Whether the strings parse as dates is
		// the evaluator's problem; it fails closed on garbage.
		return c.Value.Kind == KindDateRange
	case TypeAmount:
		return c.Value.Kind == KindAmountRange &&
			c.Value.Amounts.Min <= c.Value.Amounts.Max
	case TypeMultiSelect:
		return c.Value.Kind == KindStringList && len(c.Value.List) > 0
	case TypeBoolean:
		return c.Value.Kind == KindBool
	default:
		return false
	}
}
