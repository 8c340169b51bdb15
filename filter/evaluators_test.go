package filter

import (
	"testing"
	"time"
)

// TestEvaluateText verifies case-insensitive text matching across the text
// operator set, plus the fail-closed paths.
func TestEvaluateText(t *testing.T) {
	testCases := []struct {
		name   string
		record any
		op     Operator
		value  FilterValue
		want   bool
	}{
		{"EqualsIgnoresCase", "Engineering", OpEquals, StringValue("engineering"), true},
		{"EqualsMismatch", "Engineering", OpEquals, StringValue("Sales"), false},
		{"ContainsIgnoresCase", "Engineering", OpContains, StringValue("GINE"), true},
		{"ContainsMiss", "Engineering", OpContains, StringValue("xyz"), false},
		{"StartsWith", "Alice Jensen", OpStartsWith, StringValue("ali"), true},
		{"EndsWith", "Alice Jensen", OpEndsWith, StringValue("JENSEN"), true},
		{"NotContainsHit", "Alice Jensen", OpNotContains, StringValue("bob"), true},
		{"NotContainsMiss", "Alice Jensen", OpNotContains, StringValue("jensen"), false},
		{"EmptyRecordFailsEverything", "", OpNotContains, StringValue("x"), false},
		{"NonStringRecord", 42, OpEquals, StringValue("42"), false},
		{"WrongValueShape", "Engineering", OpEquals, NumberValue(1), false},
		{"UnknownOperator", "Engineering", OpBetween, StringValue("x"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := evaluateText(tc.record, tc.op, tc.value); got != tc.want {
				t.Errorf("evaluateText(%v, %s, %+v) = %v, want %v",
					tc.record, tc.op, tc.value, got, tc.want)
			}
		})
	}
}

// TestEvaluateNumber verifies the numeric comparisons and type widening.
func TestEvaluateNumber(t *testing.T) {
	testCases := []struct {
		name   string
		record any
		op     Operator
		value  FilterValue
		want   bool
	}{
		{"Equals", 42.0, OpEquals, NumberValue(42), true},
		{"EqualsInt", 42, OpEquals, NumberValue(42), true},
		{"EqualsInt64", int64(7), OpEquals, NumberValue(7), true},
		{"GreaterThan", 43.0, OpGreaterThan, NumberValue(42), true},
		{"GreaterThanEqualFails", 42.0, OpGreaterThan, NumberValue(42), false},
		{"LessThan", 41.0, OpLessThan, NumberValue(42), true},
		{"GreaterOrEqualBoundary", 42.0, OpGreaterOrEqual, NumberValue(42), true},
		{"LessOrEqualBoundary", 42.0, OpLessOrEqual, NumberValue(42), true},
		{"NonNumericRecord", "42", OpEquals, NumberValue(42), false},
		{"WrongValueShape", 42.0, OpEquals, StringValue("42"), false},
		{"UnknownOperator", 42.0, OpContains, NumberValue(42), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := evaluateNumber(tc.record, tc.op, tc.value); got != tc.want {
				t.Errorf("evaluateNumber(%v, %s, %+v) = %v, want %v",
					tc.record, tc.op, tc.value, got, tc.want)
			}
		})
	}
}

// TestEvaluateDate verifies the between window is inclusive of both
// boundary days: from is widened to day start, to to the day's last
// millisecond.
func TestEvaluateDate(t *testing.T) {
	sameDay := DateRangeValue("2024-03-15", "2024-03-15")

	testCases := []struct {
		name   string
		record any
		op     Operator
		value  FilterValue
		want   bool
	}{
		{"SameDayMidnight", "2024-03-15T00:00:00Z", OpBetween, sameDay, true},
		{"SameDayNoon", "2024-03-15T12:30:00Z", OpBetween, sameDay, true},
		{"SameDayLastSecond", "2024-03-15T23:59:59Z", OpBetween, sameDay, true},
		{"DayBefore", "2024-03-14T23:59:59Z", OpBetween, sameDay, false},
		{"DayAfter", "2024-03-16T00:00:00Z", OpBetween, sameDay, false},
		{"BareDateRecord", "2024-03-15", OpBetween, sameDay, true},
		{"TimeValueRecord", time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC), OpBetween, sameDay, true},
		{"WiderRange", "2024-03-10T09:00:00Z", OpBetween, DateRangeValue("2024-03-01", "2024-03-31"), true},
		{"UnparseableRecord", "not-a-date", OpBetween, sameDay, false},
		{"UnparseableBounds", "2024-03-15T00:00:00Z", OpBetween, DateRangeValue("soon", "later"), false},
		{"WrongOperator", "2024-03-15T00:00:00Z", OpEquals, sameDay, false},
		{"WrongValueShape", "2024-03-15T00:00:00Z", OpBetween, StringValue("2024-03-15"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := evaluateDate(tc.record, tc.op, tc.value); got != tc.want {
				t.Errorf("evaluateDate(%v, %s, %+v) = %v, want %v",
					tc.record, tc.op, tc.value, got, tc.want)
			}
		})
	}
}

// TestEvaluateAmount verifies inclusive boundaries on both ends.
func TestEvaluateAmount(t *testing.T) {
	window := AmountRangeValue(100000, 100000)

	testCases := []struct {
		name   string
		record any
		op     Operator
		value  FilterValue
		want   bool
	}{
		{"ExactBoundary", 100000.0, OpBetween, window, true},
		{"JustAbove", 100001.0, OpBetween, window, false},
		{"JustBelow", 99999.0, OpBetween, window, false},
		{"InsideRange", 90000.0, OpBetween, AmountRangeValue(80000, 120000), true},
		{"IntRecord", 90000, OpBetween, AmountRangeValue(80000, 120000), true},
		{"NonNumericRecord", "100000", OpBetween, window, false},
		{"WrongOperator", 100000.0, OpEquals, window, false},
		{"WrongValueShape", 100000.0, OpBetween, NumberValue(100000), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := evaluateAmount(tc.record, tc.op, tc.value); got != tc.want {
				t.Errorf("evaluateAmount(%v, %s, %+v) = %v, want %v",
					tc.record, tc.op, tc.value, got, tc.want)
			}
		})
	}
}

// TestEvaluateSingleSelect verifies exact matching and the deliberate
// policy that an empty value fails isNot too: absence is never treated as
// "not equal to something".
func TestEvaluateSingleSelect(t *testing.T) {
	testCases := []struct {
		name   string
		record any
		op     Operator
		value  FilterValue
		want   bool
	}{
		{"IsMatch", "Engineering", OpIs, StringValue("Engineering"), true},
		{"IsCaseSensitive", "Engineering", OpIs, StringValue("engineering"), false},
		{"IsNotMatch", "Sales", OpIsNot, StringValue("Engineering"), true},
		{"IsNotSameValue", "Engineering", OpIsNot, StringValue("Engineering"), false},
		{"EmptyFailsIs", "", OpIs, StringValue("Engineering"), false},
		{"EmptyFailsIsNot", "", OpIsNot, StringValue("Engineering"), false},
		{"NonStringRecord", 3, OpIs, StringValue("3"), false},
		{"WrongValueShape", "Engineering", OpIs, ListValue("Engineering"), false},
		{"UnknownOperator", "Engineering", OpEquals, StringValue("Engineering"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := evaluateSingleSelect(tc.record, tc.op, tc.value); got != tc.want {
				t.Errorf("evaluateSingleSelect(%v, %s, %+v) = %v, want %v",
					tc.record, tc.op, tc.value, got, tc.want)
			}
		})
	}
}

// TestEvaluateMultiSelect verifies the intersection semantics: in matches
// on any overlap, notIn on no overlap.
func TestEvaluateMultiSelect(t *testing.T) {
	skills := []string{"React", "Go"}

	testCases := []struct {
		name   string
		record any
		op     Operator
		value  FilterValue
		want   bool
	}{
		{"InOverlap", skills, OpIn, ListValue("Go", "Rust"), true},
		{"InNoOverlap", skills, OpIn, ListValue("Rust", "Java"), false},
		{"NotInNoOverlap", skills, OpNotIn, ListValue("Rust", "Java"), true},
		{"NotInOverlap", skills, OpNotIn, ListValue("Go"), false},
		{"AnySliceRecord", []any{"React", "Go"}, OpIn, ListValue("Go"), true},
		{"EmptyRecordSliceIn", []string{}, OpIn, ListValue("Go"), false},
		{"EmptyRecordSliceNotIn", []string{}, OpNotIn, ListValue("Go"), true},
		{"NonSequenceRecord", "Go", OpIn, ListValue("Go"), false},
		{"MixedSequenceRecord", []any{"Go", 1}, OpIn, ListValue("Go"), false},
		{"WrongValueShape", skills, OpIn, StringValue("Go"), false},
		{"UnknownOperator", skills, OpContains, ListValue("Go"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := evaluateMultiSelect(tc.record, tc.op, tc.value); got != tc.want {
				t.Errorf("evaluateMultiSelect(%v, %s, %+v) = %v, want %v",
					tc.record, tc.op, tc.value, got, tc.want)
			}
		})
	}
}

// TestEvaluateBoolean verifies exact equality under the single is
// operator.
func TestEvaluateBoolean(t *testing.T) {
	testCases := []struct {
		name   string
		record any
		op     Operator
		value  FilterValue
		want   bool
	}{
		{"TrueMatches", true, OpIs, BoolValue(true), true},
		{"FalseMatches", false, OpIs, BoolValue(false), true},
		{"Mismatch", true, OpIs, BoolValue(false), false},
		{"NonBoolRecord", "true", OpIs, BoolValue(true), false},
		{"WrongValueShape", true, OpIs, StringValue("true"), false},
		{"UnknownOperator", true, OpEquals, BoolValue(true), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := evaluateBoolean(tc.record, tc.op, tc.value); got != tc.want {
				t.Errorf("evaluateBoolean(%v, %s, %+v) = %v, want %v",
					tc.record, tc.op, tc.value, got, tc.want)
			}
		})
	}
}

// TestEvaluateNilRecordValue verifies the universal null rule: no value
// satisfies no filter, for every field type.
func TestEvaluateNilRecordValue(t *testing.T) {
	conditions := []struct {
		fieldType FieldType
		op        Operator
		value     FilterValue
	}{
		{TypeText, OpContains, StringValue("x")},
		{TypeNumber, OpEquals, NumberValue(1)},
		{TypeDate, OpBetween, DateRangeValue("2024-01-01", "2024-12-31")},
		{TypeAmount, OpBetween, AmountRangeValue(0, 1)},
		{TypeSingleSelect, OpIsNot, StringValue("x")},
		{TypeMultiSelect, OpNotIn, ListValue("x")},
		{TypeBoolean, OpIs, BoolValue(false)},
	}

	for _, c := range conditions {
		t.Run(string(c.fieldType), func(t *testing.T) {
			if evaluate(c.fieldType, nil, c.op, c.value) {
				t.Errorf("evaluate(%s, nil, %s) = true, want false", c.fieldType, c.op)
			}
		})
	}
}

// TestEvaluateUnknownFieldType verifies dispatch fails closed on a type it
// has no evaluator for.
func TestEvaluateUnknownFieldType(t *testing.T) {
	if evaluate(FieldType("uuid"), "x", OpEquals, StringValue("x")) {
		t.Error("evaluate with unknown field type should return false")
	}
}
