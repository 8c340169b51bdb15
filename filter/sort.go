package filter

import (
	"sort"
	"strings"
)

// SortSpec orders records by one field.
type SortSpec struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// Sort returns the records stably ordered by the spec's field, comparing
// by the field's declared type. Records missing the field sort last
// regardless of direction. The input slice is never reordered; an unknown
// field yields a copy in the original order.
func (e *Engine) Sort(records []Record, spec SortSpec) []Record {
	out := make([]Record, len(records))
	copy(out, records)

	def, ok := e.schema.Lookup(spec.Field)
	if !ok {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		vi := e.schema.Resolve(out[i], spec.Field)
		vj := e.schema.Resolve(out[j], spec.Field)

		cmp, iOK, jOK := compareValues(def.Type, vi, vj)
		if !iOK || !jOK {
			// Missing values go last either direction.
			return iOK && !jOK
		}
		if spec.Descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

// compareValues orders two record values of one field type. iOK/jOK report
// whether each value was present and of a usable shape.
func compareValues(t FieldType, a, b any) (cmp int, aOK, bOK bool) {
	switch t {
	case TypeText, TypeSingleSelect:
		sa, okA := a.(string)
		sb, okB := b.(string)
		return strings.Compare(strings.ToLower(sa), strings.ToLower(sb)), okA, okB
	case TypeNumber, TypeAmount:
		na, okA := toNumber(a)
		nb, okB := toNumber(b)
		switch {
		case na < nb:
			return -1, okA, okB
		case na > nb:
			return 1, okA, okB
		default:
			return 0, okA, okB
		}
	case TypeDate:
		ta, okA := toTime(a)
		tb, okB := toTime(b)
		return ta.Compare(tb), okA, okB
	case TypeBoolean:
		ba, okA := a.(bool)
		bb, okB := b.(bool)
		switch {
		case !ba && bb:
			return -1, okA, okB
		case ba && !bb:
			return 1, okA, okB
		default:
			return 0, okA, okB
		}
	case TypeMultiSelect:
		la, okA := toStringSlice(a)
		lb, okB := toStringSlice(b)
		return strings.Compare(
			strings.ToLower(strings.Join(la, ",")),
			strings.ToLower(strings.Join(lb, ",")),
		), okA, okB
	default:
		return 0, false, false
	}
}
