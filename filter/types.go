package filter

import (
	"encoding/json"
)

// FieldType identifies the semantic type of a field. The set is closed:
// adding a type means adding an evaluator and extending the dispatch in
// evaluate(), which the compiler will point out.
type FieldType string

const (
	TypeText         FieldType = "text"
	TypeNumber       FieldType = "number"
	TypeDate         FieldType = "date"
	TypeAmount       FieldType = "amount"
	TypeSingleSelect FieldType = "singleSelect"
	TypeMultiSelect  FieldType = "multiSelect"
	TypeBoolean      FieldType = "boolean"
)

// Operator is a comparison operator. Which operators are legal depends on
// the field type; see OperatorsFor.
type Operator string

const (
	OpEquals         Operator = "equals"
	OpContains       Operator = "contains"
	OpStartsWith     Operator = "startsWith"
	OpEndsWith       Operator = "endsWith"
	OpNotContains    Operator = "notContains"
	OpGreaterThan    Operator = "greaterThan"
	OpLessThan       Operator = "lessThan"
	OpGreaterOrEqual Operator = "greaterThanOrEqual"
	OpLessOrEqual    Operator = "lessThanOrEqual"
	OpBetween        Operator = "between"
	OpIs             Operator = "is"
	OpIsNot          Operator = "isNot"
	OpIn             Operator = "in"
	OpNotIn          Operator = "notIn"
)

// OperatorsFor returns the full operator set legal for a field type. A
// FieldDefinition may declare any subset of this.
func OperatorsFor(t FieldType) []Operator {
	switch t {
	case TypeText:
		return []Operator{OpEquals, OpContains, OpStartsWith, OpEndsWith, OpNotContains}
	case TypeNumber:
		return []Operator{OpEquals, OpGreaterThan, OpLessThan, OpGreaterOrEqual, OpLessOrEqual}
	case TypeDate, TypeAmount:
		return []Operator{OpBetween}
	case TypeSingleSelect:
		return []Operator{OpIs, OpIsNot}
	case TypeMultiSelect:
		return []Operator{OpIn, OpNotIn}
	case TypeBoolean:
		return []Operator{OpIs}
	default:
		return nil
	}
}

// ValueKind tags the shape held by a FilterValue.
type ValueKind int

const (
	KindAbsent ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindDateRange
	KindAmountRange
	KindStringList
)

// DateRange bounds a date filter. From and To are calendar dates in
// YYYY-MM-DD form with no time component.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// AmountRange bounds an amount filter, inclusive on both ends.
type AmountRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterValue is a closed variant over the shapes a condition value can
// take. Kind selects which field is meaningful; the rest are zero. The
// shape a condition needs is determined by the field's type, not stored
// alongside the value.
type FilterValue struct {
	Kind    ValueKind
	Str     string
	Num     float64
	Bool    bool
	Dates   DateRange
	Amounts AmountRange
	List    []string
}

// StringValue wraps a string for text and single-select conditions.
func StringValue(s string) FilterValue {
	return FilterValue{Kind: KindString, Str: s}
}

// NumberValue wraps a number for number conditions.
func NumberValue(n float64) FilterValue {
	return FilterValue{Kind: KindNumber, Num: n}
}

// BoolValue wraps a boolean for boolean conditions.
func BoolValue(b bool) FilterValue {
	return FilterValue{Kind: KindBool, Bool: b}
}

// DateRangeValue wraps a from/to date pair for date conditions.
func DateRangeValue(from, to string) FilterValue {
	return FilterValue{Kind: KindDateRange, Dates: DateRange{From: from, To: to}}
}

// AmountRangeValue wraps a min/max pair for amount conditions.
func AmountRangeValue(min, max float64) FilterValue {
	return FilterValue{Kind: KindAmountRange, Amounts: AmountRange{Min: min, Max: max}}
}

// ListValue wraps selected options for multi-select conditions.
func ListValue(items ...string) FilterValue {
	return FilterValue{Kind: KindStringList, List: items}
}

// MarshalJSON writes the underlying shape as plain JSON: a string, a
// number, a bool, an array of strings, a {from,to} object, a {min,max}
// object, or null for the absent kind.
func (v FilterValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindString:
		return json.Marshal(v.Str)
	case KindNumber:
		return json.Marshal(v.Num)
	case KindBool:
		return json.Marshal(v.Bool)
	case KindDateRange:
		return json.Marshal(v.Dates)
	case KindAmountRange:
		return json.Marshal(v.Amounts)
	case KindStringList:
		list := v.List
		if list == nil {
			list = []string{}
		}
		return json.Marshal(list)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON sniffs the shape of the stored value. Anything it does not
// recognize decodes to the absent kind rather than erroring, so corrupt
// persisted state degrades to a condition that validates false.
func (v *FilterValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*v = FilterValue{}
		return nil
	}

	switch val := raw.(type) {
	case string:
		*v = StringValue(val)
	case float64:
		*v = NumberValue(val)
	case bool:
		*v = BoolValue(val)
	case []any:
		list := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				*v = FilterValue{}
				return nil
			}
			list = append(list, s)
		}
		*v = FilterValue{Kind: KindStringList, List: list}
	case map[string]any:
		if from, to, ok := dateRangeShape(val); ok {
			*v = DateRangeValue(from, to)
			return nil
		}
		if min, max, ok := amountRangeShape(val); ok {
			*v = AmountRangeValue(min, max)
			return nil
		}
		*v = FilterValue{}
	default:
		*v = FilterValue{}
	}
	return nil
}

func dateRangeShape(m map[string]any) (from, to string, ok bool) {
	fromVal, hasFrom := m["from"]
	toVal, hasTo := m["to"]
	if !hasFrom || !hasTo {
		return "", "", false
	}
	from, fromOK := fromVal.(string)
	to, toOK := toVal.(string)
	return from, to, fromOK && toOK
}

func amountRangeShape(m map[string]any) (min, max float64, ok bool) {
	minVal, hasMin := m["min"]
	maxVal, hasMax := m["max"]
	if !hasMin || !hasMax {
		return 0, 0, false
	}
	min, minOK := minVal.(float64)
	max, maxOK := maxVal.(float64)
	return min, max, minOK && maxOK
}

// Condition is one (field, operator, value) filter rule. The engine never
// mutates conditions; they are input data owned by the caller.
type Condition struct {
	ID       string      `json:"id"`
	Field    string      `json:"field"`
	Operator Operator    `json:"operator"`
	Value    FilterValue `json:"value"`
}

// FilterState is the ordered list of active conditions, combined with AND.
// An empty state passes every record. Order has no effect on evaluation
// but is preserved for display stability.
type FilterState []Condition

// DecodeState parses persisted filter state. Corrupt or missing input
// decodes to an empty state, never an error, so stale persisted filters
// cannot take down filtering.
func DecodeState(data []byte) FilterState {
	if len(data) == 0 {
		return FilterState{}
	}
	var state FilterState
	if err := json.Unmarshal(data, &state); err != nil {
		return FilterState{}
	}
	return state
}

// Encode serializes filter state for persistence.
func (s FilterState) Encode() ([]byte, error) {
	if s == nil {
		s = FilterState{}
	}
	return json.Marshal(s)
}
