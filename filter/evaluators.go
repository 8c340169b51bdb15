package filter

import (
	"encoding/json"
	"strings"
	"time"
)

// evaluate dispatches to the evaluator for a field type. Every evaluator
// fails closed: a nil record value, an operator the type does not know, or
// a filter value of the wrong shape all return false, never an error. A
// malformed condition must behave as "matches nothing", not crash the
// whole result set.
func evaluate(t FieldType, recordValue any, op Operator, value FilterValue) bool {
	if recordValue == nil {
		return false
	}
	switch t {
	case TypeText:
		return evaluateText(recordValue, op, value)
	case TypeNumber:
		return evaluateNumber(recordValue, op, value)
	case TypeDate:
		return evaluateDate(recordValue, op, value)
	case TypeAmount:
		return evaluateAmount(recordValue, op, value)
	case TypeSingleSelect:
		return evaluateSingleSelect(recordValue, op, value)
	case TypeMultiSelect:
		return evaluateMultiSelect(recordValue, op, value)
	case TypeBoolean:
		return evaluateBoolean(recordValue, op, value)
	default:
		return false
	}
}

// evaluateText compares case-insensitively; both operands are lowercased
// first. An empty record value fails every operator.
func evaluateText(recordValue any, op Operator, value FilterValue) bool {
	s, ok := recordValue.(string)
	if !ok || s == "" || value.Kind != KindString {
		return false
	}

	record := strings.ToLower(s)
	target := strings.ToLower(value.Str)

	switch op {
	case OpEquals:
		return record == target
	case OpContains:
		return strings.Contains(record, target)
	case OpStartsWith:
		return strings.HasPrefix(record, target)
	case OpEndsWith:
		return strings.HasSuffix(record, target)
	case OpNotContains:
		return !strings.Contains(record, target)
	default:
		return false
	}
}

func evaluateNumber(recordValue any, op Operator, value FilterValue) bool {
	n, ok := toNumber(recordValue)
	if !ok || value.Kind != KindNumber {
		return false
	}

	switch op {
	case OpEquals:
		return n == value.Num
	case OpGreaterThan:
		return n > value.Num
	case OpLessThan:
		return n < value.Num
	case OpGreaterOrEqual:
		return n >= value.Num
	case OpLessOrEqual:
		return n <= value.Num
	default:
		return false
	}
}

// evaluateDate matches a timestamp against a calendar-date window. From is
// widened to the start of its day and To to the last millisecond of its
// day, so a record on either boundary date matches inclusively.
func evaluateDate(recordValue any, op Operator, value FilterValue) bool {
	if op != OpBetween || value.Kind != KindDateRange {
		return false
	}
	ts, ok := toTime(recordValue)
	if !ok {
		return false
	}

	from, err := time.ParseInLocation("2006-01-02", value.Dates.From, time.UTC)
	if err != nil {
		return false
	}
	to, err := time.ParseInLocation("2006-01-02", value.Dates.To, time.UTC)
	if err != nil {
		return false
	}
	dayEnd := to.Add(24*time.Hour - time.Millisecond)

	ts = ts.UTC()
	return !ts.Before(from) && !ts.After(dayEnd)
}

func evaluateAmount(recordValue any, op Operator, value FilterValue) bool {
	if op != OpBetween || value.Kind != KindAmountRange {
		return false
	}
	n, ok := toNumber(recordValue)
	if !ok {
		return false
	}
	return n >= value.Amounts.Min && n <= value.Amounts.Max
}

// evaluateSingleSelect compares exactly (case-sensitive, the options are a
// closed domain). An empty record value fails both operators: absence is
// never "not equal to X", so isNot on a missing value is false too.
func evaluateSingleSelect(recordValue any, op Operator, value FilterValue) bool {
	s, ok := recordValue.(string)
	if !ok || s == "" || value.Kind != KindString {
		return false
	}

	switch op {
	case OpIs:
		return s == value.Str
	case OpIsNot:
		return s != value.Str
	default:
		return false
	}
}

// evaluateMultiSelect tests set overlap: in matches when at least one
// selected option appears in the record's set, notIn when none does. A
// non-sequence record value fails both.
func evaluateMultiSelect(recordValue any, op Operator, value FilterValue) bool {
	items, ok := toStringSlice(recordValue)
	if !ok || value.Kind != KindStringList {
		return false
	}

	overlap := false
	for _, selected := range value.List {
		for _, item := range items {
			if item == selected {
				overlap = true
				break
			}
		}
		if overlap {
			break
		}
	}

	switch op {
	case OpIn:
		return overlap
	case OpNotIn:
		return !overlap
	default:
		return false
	}
}

func evaluateBoolean(recordValue any, op Operator, value FilterValue) bool {
	b, ok := recordValue.(bool)
	if !ok || op != OpIs || value.Kind != KindBool {
		return false
	}
	return b == value.Bool
}

// toNumber widens the numeric types a record realistically carries. Values
// arriving through encoding/json are float64 already; the rest covers
// records built in Go code.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// toTime accepts a time.Time or a string in RFC 3339 or bare-date form.
// String timestamps are how records survive a JSON round trip.
func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		if t == "" {
			return time.Time{}, false
		}
		if ts, err := time.Parse(time.RFC3339, t); err == nil {
			return ts, true
		}
		if ts, err := time.ParseInLocation("2006-01-02", t, time.UTC); err == nil {
			return ts, true
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func toStringSlice(v any) ([]string, bool) {
	switch items := v.(type) {
	case []string:
		return items, true
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
