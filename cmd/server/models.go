package main

import (
	"time"

	"fieldfilter/filter"
	"fieldfilter/filterstore"
)

// API request and response models

// FieldResponse describes one filterable field for the filter-builder UI.
type FieldResponse struct {
	Key       string            `json:"key"`
	Label     string            `json:"label"`
	Type      filter.FieldType  `json:"type"`
	Operators []filter.Operator `json:"operators"`
	Options   []string          `json:"options,omitempty"`
}

// FieldsResponse lists the field schema.
type FieldsResponse struct {
	Fields []FieldResponse `json:"fields"`
}

// EmployeesResponse returns the unfiltered record set.
type EmployeesResponse struct {
	Employees []filter.Record `json:"employees"`
	Total     int             `json:"total"`
}

// FilterRequest applies conditions (ANDed) and an optional sort.
type FilterRequest struct {
	Conditions filter.FilterState `json:"conditions"`
	Sort       *filter.SortSpec   `json:"sort,omitempty"`
}

// FilterResponse carries the filtered records plus bookkeeping the UI
// shows: how many conditions were silently dropped as invalid and how long
// evaluation took.
type FilterResponse struct {
	Employees      []filter.Record `json:"employees"`
	Total          int             `json:"total"`
	Matched        int             `json:"matched"`
	Dropped        int             `json:"dropped"`
	EvaluationTime string          `json:"evaluationTime"`
}

// ValidateResponse reports one condition's validity.
type ValidateResponse struct {
	Valid bool `json:"valid"`
}

// SaveFilterRequest creates or updates a saved filter.
type SaveFilterRequest struct {
	Name       string             `json:"name"`
	Conditions filter.FilterState `json:"conditions"`
}

// SavedFilterResponse is one persisted filter.
type SavedFilterResponse struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Conditions filter.FilterState `json:"conditions"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// SavedFiltersResponse lists persisted filters.
type SavedFiltersResponse struct {
	Filters []SavedFilterResponse `json:"filters"`
}

func toSavedFilterResponse(f *filterstore.SavedFilter) SavedFilterResponse {
	conditions := f.Conditions
	if conditions == nil {
		conditions = filter.FilterState{}
	}
	return SavedFilterResponse{
		ID:         f.ID,
		Name:       f.Name,
		Conditions: conditions,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}
