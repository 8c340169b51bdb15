// Package employee provides the sample record domain: the employee
// profile shape, its filterable field schema, and a deterministic
// sample-data generator.
package employee

import (
	"strings"

	"fieldfilter/filter"
)

// Address is the one nested object on an employee profile.
type Address struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Employee is one profile record. JoinDate is an RFC 3339 timestamp kept
// as a string so a record survives a JSON round trip unchanged.
type Employee struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Department string   `json:"department"`
	Role       string   `json:"role"`
	Salary     float64  `json:"salary"`
	Age        int      `json:"age"`
	JoinDate   string   `json:"joinDate"`
	Active     bool     `json:"active"`
	Skills     []string `json:"skills"`
	Address    Address  `json:"address"`
}

// Record converts the employee to the opaque map shape the filter engine
// works on. Keys mirror the JSON tags so the same field keys work against
// records decoded straight from JSON.
func (e Employee) Record() filter.Record {
	return filter.Record{
		"id":         e.ID,
		"name":       e.Name,
		"email":      e.Email,
		"department": e.Department,
		"role":       e.Role,
		"salary":     e.Salary,
		"age":        e.Age,
		"joinDate":   e.JoinDate,
		"active":     e.Active,
		"skills":     e.Skills,
		"address": map[string]any{
			"city":    e.Address.City,
			"state":   e.Address.State,
			"country": e.Address.Country,
		},
	}
}

// Records converts a slice of employees.
func Records(employees []Employee) []filter.Record {
	out := make([]filter.Record, 0, len(employees))
	for _, e := range employees {
		out = append(out, e.Record())
	}
	return out
}

// Value domains for the select fields.
var (
	Departments = []string{"Engineering", "Sales", "Marketing", "Finance", "HR", "Operations"}
	Roles       = []string{"Junior", "Mid", "Senior", "Staff", "Manager", "Director"}
	SkillSet    = []string{"Go", "React", "Python", "SQL", "Kubernetes", "Terraform", "Rust", "TypeScript"}
	Countries   = []string{"USA", "Canada", "Germany", "India", "Brazil", "Japan"}
)

// Fields returns the employee field schema. The "location" field shows the
// custom-accessor path: it has no slot of its own on the record and is
// assembled from the nested address instead.
func Fields() []filter.FieldDefinition {
	return []filter.FieldDefinition{
		{
			Key:       "name",
			Label:     "Name",
			Type:      filter.TypeText,
			Operators: filter.OperatorsFor(filter.TypeText),
		},
		{
			Key:       "email",
			Label:     "Email",
			Type:      filter.TypeText,
			Operators: []filter.Operator{filter.OpContains, filter.OpStartsWith, filter.OpEndsWith},
		},
		{
			Key:       "department",
			Label:     "Department",
			Type:      filter.TypeSingleSelect,
			Operators: filter.OperatorsFor(filter.TypeSingleSelect),
			Options:   Departments,
		},
		{
			Key:       "role",
			Label:     "Role",
			Type:      filter.TypeSingleSelect,
			Operators: filter.OperatorsFor(filter.TypeSingleSelect),
			Options:   Roles,
		},
		{
			Key:       "salary",
			Label:     "Salary",
			Type:      filter.TypeAmount,
			Operators: filter.OperatorsFor(filter.TypeAmount),
		},
		{
			Key:       "age",
			Label:     "Age",
			Type:      filter.TypeNumber,
			Operators: filter.OperatorsFor(filter.TypeNumber),
		},
		{
			Key:       "joinDate",
			Label:     "Join Date",
			Type:      filter.TypeDate,
			Operators: filter.OperatorsFor(filter.TypeDate),
		},
		{
			Key:       "active",
			Label:     "Active",
			Type:      filter.TypeBoolean,
			Operators: filter.OperatorsFor(filter.TypeBoolean),
		},
		{
			Key:       "skills",
			Label:     "Skills",
			Type:      filter.TypeMultiSelect,
			Operators: filter.OperatorsFor(filter.TypeMultiSelect),
			Options:   SkillSet,
		},
		{
			Key:       "address.city",
			Label:     "City",
			Type:      filter.TypeText,
			Operators: []filter.Operator{filter.OpEquals, filter.OpContains, filter.OpStartsWith},
		},
		{
			Key:       "address.country",
			Label:     "Country",
			Type:      filter.TypeSingleSelect,
			Operators: filter.OperatorsFor(filter.TypeSingleSelect),
			Options:   Countries,
		},
		{
			Key:       "location",
			Label:     "Location",
			Type:      filter.TypeText,
			Operators: []filter.Operator{filter.OpEquals, filter.OpContains},
			Accessor:  locationAccessor,
		},
	}
}

// Schema builds the immutable employee schema.
func Schema() *filter.Schema {
	return filter.NewSchema(Fields())
}

// locationAccessor assembles "City, Country" from the nested address.
func locationAccessor(r filter.Record) any {
	address, ok := r["address"].(map[string]any)
	if !ok {
		return nil
	}
	city, _ := address["city"].(string)
	country, _ := address["country"].(string)

	parts := make([]string, 0, 2)
	if city != "" {
		parts = append(parts, city)
	}
	if country != "" {
		parts = append(parts, country)
	}
	if len(parts) == 0 {
		return nil
	}
	return strings.Join(parts, ", ")
}
