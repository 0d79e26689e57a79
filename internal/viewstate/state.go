package viewstate

import "sort"

// GroupField selects the ticket attribute used to bucket rows under
// synthetic group headers. At most one field is active at a time.
type GroupField string

const (
	GroupNone     GroupField = ""
	GroupStatus   GroupField = "status"
	GroupPriority GroupField = "priority"
	GroupCompany  GroupField = "company"
	GroupAssigned GroupField = "assigned"
)

// GroupFields lists the selectable grouping fields in display order.
var GroupFields = []GroupField{GroupStatus, GroupPriority, GroupCompany, GroupAssigned}

// ParseGroupField maps a stored grouping_field value to a GroupField.
// Unknown or empty values mean no grouping.
func ParseGroupField(s string) GroupField {
	switch GroupField(s) {
	case GroupStatus, GroupPriority, GroupCompany, GroupAssigned:
		return GroupField(s)
	}
	return GroupNone
}

// Label returns the display label for a grouping field.
func (f GroupField) Label() string {
	switch f {
	case GroupStatus:
		return "Status"
	case GroupPriority:
		return "Priority"
	case GroupCompany:
		return "Company"
	case GroupAssigned:
		return "Assigned"
	}
	return "None"
}

// Set is a set of filter values.
type Set map[string]struct{}

// NewSet builds a set from values.
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

func (s Set) Empty() bool { return len(s) == 0 }

func (s Set) Add(v string)    { s[v] = struct{}{} }
func (s Set) Remove(v string) { delete(s, v) }

// Toggle adds v if absent, removes it if present.
func (s Set) Toggle(v string) {
	if s.Has(v) {
		delete(s, v)
	} else {
		s[v] = struct{}{}
	}
}

// Values returns the set members in ascending order.
func (s Set) Values() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// FilterState holds the active filter selections for one ticket table.
//
// Companies, AssignedUsers and Search are reserved dimensions: they are
// tracked and reset alongside the rest of the state but are never applied
// by the filter predicate and never persisted to saved views.
type FilterState struct {
	Statuses   Set
	Priorities Set

	Companies     Set
	AssignedUsers Set
	Search        string
}

// NewFilterState returns an empty filter state.
func NewFilterState() FilterState {
	return FilterState{
		Statuses:      NewSet(),
		Priorities:    NewSet(),
		Companies:     NewSet(),
		AssignedUsers: NewSet(),
	}
}

// Reset empties every filter dimension.
func (f *FilterState) Reset() {
	*f = NewFilterState()
}

// SortSpec is the sort specification persisted with saved views. It is
// stored and resent on save but never applied to the rendered row order.
type SortSpec struct {
	Field     string
	Direction string // "asc" or "desc"
}

// DefaultSortDirection is used when a saved view carries no direction.
const DefaultSortDirection = "asc"
