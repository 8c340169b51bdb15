package filter

import "strings"

// Record is an opaque data row. The engine only ever reaches into it
// through dotted field-key paths or a per-field accessor, so any
// JSON-shaped map works.
type Record map[string]any

// Accessor extracts a field's value from a record, overriding the default
// dotted-path resolution for that field.
type Accessor func(Record) any

// FieldDefinition describes one filterable field.
//
// Operators declares which operators are legal for this field and may be a
// subset of OperatorsFor(Type). Every entry must belong to the type's
// operator set; that invariant is a design-time contract enforced by tests,
// not checked at runtime.
type FieldDefinition struct {
	Key       string     `json:"key"`
	Label     string     `json:"label"`
	Type      FieldType  `json:"type"`
	Operators []Operator `json:"operators"`
	// Options is the closed value domain for single- and multi-select
	// fields.
	Options []string `json:"options,omitempty"`
	// Accessor, when set, replaces path resolution for this field.
	Accessor Accessor `json:"-"`
}

// Schema is the immutable field registry. It is built once at startup and
// only read afterwards, so concurrent use needs no locking.
type Schema struct {
	fields map[string]FieldDefinition
	keys   []string
}

// NewSchema builds a schema from field definitions, preserving declaration
// order. A duplicate key replaces the earlier definition but keeps its
// position.
func NewSchema(defs []FieldDefinition) *Schema {
	s := &Schema{
		fields: make(map[string]FieldDefinition, len(defs)),
		keys:   make([]string, 0, len(defs)),
	}
	for _, def := range defs {
		if _, exists := s.fields[def.Key]; !exists {
			s.keys = append(s.keys, def.Key)
		}
		s.fields[def.Key] = def
	}
	return s
}

// Lookup returns the definition for a field key. A miss is an expected
// outcome, not an error: persisted filter state may reference fields that
// have since been removed or renamed.
func (s *Schema) Lookup(key string) (FieldDefinition, bool) {
	def, ok := s.fields[key]
	return def, ok
}

// FieldKeys returns the field keys in declaration order.
func (s *Schema) FieldKeys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Fields returns the definitions in declaration order.
func (s *Schema) Fields() []FieldDefinition {
	defs := make([]FieldDefinition, 0, len(s.keys))
	for _, key := range s.keys {
		defs = append(defs, s.fields[key])
	}
	return defs
}

// Resolve extracts the value a condition on key should test. A field with
// a custom accessor gets its result verbatim; otherwise the key is walked
// as a dotted path into the record. Missing values resolve to nil, never
// an error.
func (s *Schema) Resolve(r Record, key string) any {
	if def, ok := s.fields[key]; ok && def.Accessor != nil {
		return def.Accessor(r)
	}
	return resolvePath(r, key)
}

// resolvePath walks a dotted key segment by segment, short-circuiting to
// nil on the first absent or non-map intermediate. Depth is unbounded even
// though current schemas nest one level at most.
func resolvePath(r Record, key string) any {
	var current any = map[string]any(r)
	for _, segment := range strings.Split(key, ".") {
		m, ok := asMap(current)
		if !ok {
			return nil
		}
		current, ok = m[segment]
		if !ok || current == nil {
			return nil
		}
	}
	return current
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Record:
		return m, true
	default:
		return nil, false
	}
}
