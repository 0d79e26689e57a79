package models

import (
	"strings"
	"time"
)

// Ticket is one row of the ticket table. The view layer never creates or
// deletes tickets; it only decides visibility and grouping for rows the
// server handed us.
type Ticket struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`   // machine value, e.g. "open"
	Priority  string    `json:"priority"` // machine value, e.g. "high"
	Company   string    `json:"company"`
	Assigned  string    `json:"assigned"` // assignee display name, may be empty
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatusLabel returns the display label for the ticket's status value.
func (t Ticket) StatusLabel() string { return Label(t.Status) }

// PriorityLabel returns the display label for the ticket's priority value.
func (t Ticket) PriorityLabel() string { return Label(t.Priority) }

// Label converts a machine value like "in_progress" to a display label
// like "In Progress". Empty values stay empty.
func Label(value string) string {
	if value == "" {
		return ""
	}
	words := strings.FieldsFunc(value, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ViewFilters is the filter payload persisted with a saved view. Only
// status and priority selections travel over the wire; other filter
// dimensions are reserved and never serialized.
type ViewFilters struct {
	Status   []string `json:"status"`
	Priority []string `json:"priority"`
}

// View is a named, persisted combination of filter selections, a grouping
// field, and a sort specification. Views are owned by the remote store;
// clients hold a read-only cached list.
type View struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description,omitempty"`
	Filters       ViewFilters `json:"filters"`
	GroupingField string      `json:"grouping_field,omitempty"`
	SortField     string      `json:"sort_field,omitempty"`
	SortDirection string      `json:"sort_direction"`
	IsDefault     bool        `json:"is_default"`
	CreatedAt     time.Time   `json:"created_at,omitzero"`
}

// ViewRequest is the creation payload for POST /api/tickets/views.
type ViewRequest struct {
	Name          string      `json:"name"`
	Description   string      `json:"description,omitempty"`
	Filters       ViewFilters `json:"filters"`
	GroupingField string      `json:"grouping_field,omitempty"`
	SortField     string      `json:"sort_field,omitempty"`
	SortDirection string      `json:"sort_direction"`
	IsDefault     bool        `json:"is_default"`
}
