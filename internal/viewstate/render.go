package viewstate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tcarver/tix/internal/models"
)

// UnspecifiedGroup is the bucket for rows whose grouping field has no
// resolvable value.
const UnspecifiedGroup = "Unspecified"

// State is the input to Render: active filters, the grouping selection,
// and per-group collapse flags.
type State struct {
	Filters   FilterState
	Grouping  GroupField
	Collapsed map[string]bool
}

// Plan is the deterministic output of one render pass. Filtering is
// non-destructive: every input row appears in the plan, hidden or not,
// in its original relative order.
type Plan struct {
	// Hidden is parallel to the input rows; true marks a row as
	// filtered-hidden. Hidden rows keep their group membership.
	Hidden []bool

	// Groups holds the ordered bucket structure, nil when no grouping
	// field is active. Buckets are ordered ascending by key.
	Groups []Group

	Visible int
	Total   int
}

// Group is one bucket of rows under a synthetic header.
type Group struct {
	Key       string
	Rows      []int // indices into the input rows, original order preserved
	Visible   int   // visible members only; hidden members stay bucketed
	Collapsed bool
}

// InfoText is the visible/total summary published to the table info line.
func (p Plan) InfoText() string {
	return fmt.Sprintf("Showing %d of %d tickets", p.Visible, p.Total)
}

// Render computes row visibility and grouping structure for the given
// state. It is pure: the same state and rows always produce the same plan,
// and group structure is regenerated from scratch on every call.
func Render(s State, rows []models.Ticket) Plan {
	p := Plan{
		Hidden: make([]bool, len(rows)),
		Total:  len(rows),
	}

	for i, row := range rows {
		if rowVisible(s.Filters, row) {
			p.Visible++
		} else {
			p.Hidden[i] = true
		}
	}

	if s.Grouping == GroupNone {
		return p
	}

	// Bucket all rows, visible and filtered-hidden alike, so a later
	// filter change never needs to regroup from outside the plan.
	buckets := make(map[string]*Group)
	for i, row := range rows {
		key := GroupValue(s.Grouping, row)
		g, ok := buckets[key]
		if !ok {
			g = &Group{Key: key, Collapsed: s.Collapsed[key]}
			buckets[key] = g
		}
		g.Rows = append(g.Rows, i)
		if !p.Hidden[i] {
			g.Visible++
		}
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p.Groups = make([]Group, 0, len(keys))
	for _, k := range keys {
		p.Groups = append(p.Groups, *buckets[k])
	}
	return p
}

// rowVisible is the filter predicate. A row is visible iff no status
// filter is active or its status is in the active set, and no priority
// filter is active or its priority label loosely matches one of the
// active priority filters (case-insensitive substring).
func rowVisible(f FilterState, t models.Ticket) bool {
	if !f.Statuses.Empty() && !f.Statuses.Has(t.Status) {
		return false
	}
	if !f.Priorities.Empty() && !priorityMatches(f.Priorities, t.PriorityLabel()) {
		return false
	}
	return true
}

func priorityMatches(wanted Set, label string) bool {
	label = strings.ToLower(label)
	for w := range wanted {
		if strings.Contains(label, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

// GroupValue resolves the bucket key for a row under the given grouping
// field, using the field's display value. Rows without a resolvable value
// fall into the Unspecified bucket.
func GroupValue(field GroupField, t models.Ticket) string {
	var v string
	switch field {
	case GroupStatus:
		v = t.StatusLabel()
	case GroupPriority:
		v = t.PriorityLabel()
	case GroupCompany:
		v = t.Company
	case GroupAssigned:
		v = t.Assigned
	}
	if v == "" {
		return UnspecifiedGroup
	}
	return v
}
