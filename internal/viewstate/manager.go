package viewstate

import (
	"context"
	"fmt"

	"github.com/tcarver/tix/internal/models"
)

// ViewStore is the remote saved-view collection the manager synchronizes
// with. The portal REST client satisfies it; tests substitute a fake.
type ViewStore interface {
	ListViews(ctx context.Context) ([]models.View, error)
	GetView(ctx context.Context, id int64) (*models.View, error)
	CreateView(ctx context.Context, req models.ViewRequest) (*models.View, error)
	DeleteView(ctx context.Context, id int64) error
}

// ConfirmFunc asks for approval of a destructive action. It is injected so
// an interactive caller can wire a real prompt and tests can simulate both
// accept and decline.
type ConfirmFunc func(prompt string) bool

// Option configures a Manager.
type Option func(*Manager)

// WithConfirm sets the confirmation capability gating destructive actions.
func WithConfirm(fn ConfirmFunc) Option {
	return func(m *Manager) { m.confirm = fn }
}

// WithLogger sets the sink for abandoned-action diagnostics.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(m *Manager) { m.logf = logf }
}

// WithSeedStatuses pre-selects status filters before any interaction, the
// way server-rendered default filters take effect before any script runs.
func WithSeedStatuses(statuses ...string) Option {
	return func(m *Manager) {
		for _, s := range statuses {
			m.filters.Statuses.Add(s)
		}
	}
}

// Manager owns the filter/grouping state for one ticket table and keeps a
// remote view store in sync. It is bound to a single table and must only
// be used from one goroutine; remote calls are issued from UI events and
// the last response to resolve wins.
type Manager struct {
	store   ViewStore
	confirm ConfirmFunc
	logf    func(format string, args ...any)

	rows      []models.Ticket
	filters   FilterState
	grouping  GroupField
	collapsed map[string]bool
	sort      SortSpec

	views   []models.View
	current *models.View
}

// New creates a manager bound to the given store. By default destructive
// actions are approved, for callers that present their own confirmation
// before invoking the manager; use WithConfirm to gate them here.
func New(store ViewStore, opts ...Option) *Manager {
	m := &Manager{
		store:     store,
		confirm:   func(string) bool { return true },
		logf:      func(string, ...any) {},
		filters:   NewFilterState(),
		collapsed: map[string]bool{},
		sort:      SortSpec{Direction: DefaultSortDirection},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetRows replaces the table rows the manager renders over.
func (m *Manager) SetRows(rows []models.Ticket) {
	m.rows = rows
}

// Rows returns the managed rows in their original order.
func (m *Manager) Rows() []models.Ticket { return m.rows }

// Filters exposes the live filter state for control rendering.
func (m *Manager) Filters() *FilterState { return &m.filters }

// Plan recomputes row visibility and grouping structure from the current
// state. Group headers are regenerated from scratch on every call.
func (m *Manager) Plan() Plan {
	return Render(State{
		Filters:   m.filters,
		Grouping:  m.grouping,
		Collapsed: m.collapsed,
	}, m.rows)
}

// InfoText returns the visible/total summary for the info line.
func (m *Manager) InfoText() string { return m.Plan().InfoText() }

// ToggleStatus flips one status filter value.
func (m *Manager) ToggleStatus(value string) { m.filters.Statuses.Toggle(value) }

// TogglePriority flips one priority filter value.
func (m *Manager) TogglePriority(value string) { m.filters.Priorities.Toggle(value) }

// Grouping returns the active grouping field, GroupNone when flat.
func (m *Manager) Grouping() GroupField { return m.grouping }

// SetGrouping switches the grouping field. Collapse state is discarded:
// grouping is destructive-then-rebuild, so stale headers cannot survive.
func (m *Manager) SetGrouping(field GroupField) {
	m.grouping = field
	m.collapsed = map[string]bool{}
}

// RemoveGrouping restores the flat row order.
func (m *Manager) RemoveGrouping() { m.SetGrouping(GroupNone) }

// ToggleGroup collapses or expands one group. Presentation only; the
// filter state is untouched.
func (m *Manager) ToggleGroup(key string) {
	m.collapsed[key] = !m.collapsed[key]
}

// Sort returns the tracked sort specification.
func (m *Manager) Sort() SortSpec { return m.sort }

// Views returns the cached saved-view list.
func (m *Manager) Views() []models.View { return m.views }

// CurrentView returns the applied view, nil when none is active.
func (m *Manager) CurrentView() *models.View { return m.current }

// SetViews replaces the cached view list without touching the store.
// Asynchronous callers fetch on their own goroutine and hand the result
// to the owning goroutine, which applies it here.
func (m *Manager) SetViews(views []models.View) {
	m.views = views
}

// LoadViews refreshes the cached view list. On failure the previous list
// is kept and the error is logged; an empty selector is not fatal.
func (m *Manager) LoadViews(ctx context.Context) error {
	views, err := m.store.ListViews(ctx)
	if err != nil {
		m.logf("loading views: %v", err)
		return fmt.Errorf("loading views: %w", err)
	}
	m.SetViews(views)
	return nil
}

// DefaultView returns the view to auto-apply after the initial list load:
// the one view carrying the default flag, or nil when none or several do.
func (m *Manager) DefaultView() *models.View {
	var def *models.View
	for i := range m.views {
		if !m.views[i].IsDefault {
			continue
		}
		if def != nil {
			return nil
		}
		def = &m.views[i]
	}
	return def
}

// ApplyDefaultView applies the default-flagged view from the cached list.
// It is a no-op unless exactly one view carries the default flag.
func (m *Manager) ApplyDefaultView(ctx context.Context) error {
	def := m.DefaultView()
	if def == nil {
		return nil
	}
	return m.ApplyView(ctx, def.ID)
}

// Apply adopts a fetched view: status and priority filters are replaced
// wholesale from the stored payload (missing keys mean empty sets, not a
// merge), the view's grouping and sort spec are adopted, and the view
// becomes current.
func (m *Manager) Apply(view *models.View) {
	m.filters.Statuses = NewSet(view.Filters.Status...)
	m.filters.Priorities = NewSet(view.Filters.Priority...)
	m.SetGrouping(ParseGroupField(view.GroupingField))

	m.sort = SortSpec{Field: view.SortField, Direction: view.SortDirection}
	if m.sort.Direction == "" {
		m.sort.Direction = DefaultSortDirection
	}

	m.current = view
}

// ApplyView fetches one saved view and applies it. On failure nothing
// changes.
func (m *Manager) ApplyView(ctx context.Context, id int64) error {
	view, err := m.store.GetView(ctx, id)
	if err != nil {
		m.logf("applying view %d: %v", id, err)
		return fmt.Errorf("applying view %d: %w", id, err)
	}
	m.Apply(view)
	return nil
}

// ClearView resets all local state: filters, grouping, collapse flags,
// sort, and the current-view reference. Rows are never removed.
func (m *Manager) ClearView() {
	m.filters.Reset()
	m.SetGrouping(GroupNone)
	m.sort = SortSpec{Direction: DefaultSortDirection}
	m.current = nil
}

// ViewRequest serializes the current state into a creation payload. Only
// the status and priority selections are serialized; reserved dimensions
// stay local.
func (m *Manager) ViewRequest(name, description string, isDefault bool) models.ViewRequest {
	return models.ViewRequest{
		Name:        name,
		Description: description,
		Filters: models.ViewFilters{
			Status:   m.filters.Statuses.Values(),
			Priority: m.filters.Priorities.Values(),
		},
		GroupingField: string(m.grouping),
		SortField:     m.sort.Field,
		SortDirection: m.sort.Direction,
		IsDefault:     isDefault,
	}
}

// SaveView persists the current state under a name. On success the cached
// list is refreshed.
func (m *Manager) SaveView(ctx context.Context, name, description string, isDefault bool) error {
	req := m.ViewRequest(name, description, isDefault)

	if _, err := m.store.CreateView(ctx, req); err != nil {
		m.logf("saving view %q: %v", name, err)
		return fmt.Errorf("saving view %q: %w", name, err)
	}

	if err := m.LoadViews(ctx); err != nil {
		// The view was created; a stale selector is acceptable.
		m.logf("refreshing views after save: %v", err)
	}
	return nil
}

// DeleteCurrentView deletes the applied view after confirmation. Without
// a current view no request is issued and nothing changes; a declined
// confirmation likewise leaves everything untouched.
func (m *Manager) DeleteCurrentView(ctx context.Context) error {
	if m.current == nil {
		return nil
	}
	if !m.confirm(fmt.Sprintf("Delete view %q?", m.current.Name)) {
		return nil
	}

	id := m.current.ID
	if err := m.store.DeleteView(ctx, id); err != nil {
		m.logf("deleting view %d: %v", id, err)
		return fmt.Errorf("deleting view %d: %w", id, err)
	}

	m.ClearCurrentView()
	if err := m.LoadViews(ctx); err != nil {
		m.logf("refreshing views after delete: %v", err)
	}
	return nil
}

// ClearCurrentView drops the current-view reference, leaving filters and
// grouping as they are. Used after the store confirms a deletion.
func (m *Manager) ClearCurrentView() {
	m.current = nil
}
