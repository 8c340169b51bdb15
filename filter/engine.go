package filter

// Engine applies filter conditions to record sets. It holds only the
// immutable schema and no per-call state, so a single engine is safe for
// concurrent use from any number of goroutines.
type Engine struct {
	schema *Schema
}

// NewEngine creates an engine over a fully constructed schema. The schema
// must not be mutated after this point.
func NewEngine(schema *Schema) *Engine {
	return &Engine{schema: schema}
}

// Schema returns the engine's field registry.
func (e *Engine) Schema() *Schema {
	return e.schema
}

// ValidateCondition reports whether a condition is well-formed for this
// engine's schema. Callers run this before persisting or applying a
// condition; Apply assumes its input already passed.
func (e *Engine) ValidateCondition(c Condition) bool {
	return e.schema.ValidateCondition(c)
}

// Apply filters records by a list of conditions combined with AND. The
// result is always a fresh slice in the input's relative order; the source
// is never mutated. An empty condition list passes everything. Malformed
// leftovers the caller failed to validate away degrade to "matches
// nothing" for the records they touch — Apply never panics on bad filter
// state.
func (e *Engine) Apply(records []Record, conditions []Condition) []Record {
	out := make([]Record, 0, len(records))
	if len(conditions) == 0 {
		out = append(out, records...)
		return out
	}

	for _, r := range records {
		if e.matches(r, conditions) {
			out = append(out, r)
		}
	}
	return out
}

func (e *Engine) matches(r Record, conditions []Condition) bool {
	for _, c := range conditions {
		if !e.matchesCondition(r, c) {
			return false
		}
	}
	return true
}

// matchesCondition tests one record against one condition: unknown field
// rejects, a nil resolved value rejects, otherwise the field type's
// evaluator decides.
func (e *Engine) matchesCondition(r Record, c Condition) bool {
	def, ok := e.schema.Lookup(c.Field)
	if !ok {
		return false
	}
	value := e.schema.Resolve(r, c.Field)
	if value == nil {
		return false
	}
	return evaluate(def.Type, value, c.Operator, c.Value)
}
