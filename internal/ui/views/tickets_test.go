package views

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcarver/tix/internal/models"
	"github.com/tcarver/tix/internal/viewstate"
)

// fakeSource is an in-memory portal API double.
type fakeSource struct {
	tickets []models.Ticket
	views   []models.View

	created []models.ViewRequest
	deleted []int64
}

func (f *fakeSource) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	return f.tickets, nil
}

func (f *fakeSource) ListViews(ctx context.Context) ([]models.View, error) {
	return f.views, nil
}

func (f *fakeSource) GetView(ctx context.Context, id int64) (*models.View, error) {
	for i := range f.views {
		if f.views[i].ID == id {
			view := f.views[i]
			return &view, nil
		}
	}
	return nil, fmt.Errorf("view %d: 404", id)
}

func (f *fakeSource) CreateView(ctx context.Context, req models.ViewRequest) (*models.View, error) {
	f.created = append(f.created, req)
	view := models.View{
		ID:            int64(len(f.views) + 1),
		Name:          req.Name,
		Filters:       req.Filters,
		GroupingField: req.GroupingField,
		IsDefault:     req.IsDefault,
	}
	f.views = append(f.views, view)
	return &view, nil
}

func (f *fakeSource) DeleteView(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	for i := range f.views {
		if f.views[i].ID == id {
			f.views = append(f.views[:i], f.views[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("view %d: 404", id)
}

func sampleTickets() []models.Ticket {
	return []models.Ticket{
		{ID: 1, Title: "Printer offline", Status: "open", Priority: "high", Company: "Acme"},
		{ID: 2, Title: "Password reset", Status: "closed", Priority: "low", Company: "Globex"},
		{ID: 3, Title: "VPN flaky", Status: "open", Priority: "medium", Company: "Acme"},
	}
}

func newTestView(src *fakeSource) (*TicketView, *viewstate.Manager) {
	mgr := viewstate.New(src)
	v := NewTicketView(src, mgr)
	v.Update(ticketsLoadedMsg{tickets: src.tickets})
	return v, mgr
}

func Test_Commands_LeaveManagerUntouched_UntilUpdateApplies(t *testing.T) {
	t.Parallel()

	src := &fakeSource{
		tickets: sampleTickets(),
		views: []models.View{{
			ID:      7,
			Name:    "Open only",
			Filters: models.ViewFilters{Status: []string{"open"}},
		}},
	}
	v, mgr := newTestView(src)

	// Running the fetch command must not change the manager: the view
	// renderer reads it concurrently while commands are in flight.
	msg := v.loadViews()
	assert.Empty(t, mgr.Views())

	model, cmd := v.Update(msg)
	require.Same(t, v, model)
	assert.Nil(t, cmd)
	require.Len(t, mgr.Views(), 1)

	applyMsg := v.fetchView(7)()
	assert.Nil(t, mgr.CurrentView())
	assert.True(t, mgr.Filters().Statuses.Empty())

	v.Update(applyMsg)
	require.NotNil(t, mgr.CurrentView())
	assert.Equal(t, "Open only", mgr.CurrentView().Name)
	assert.True(t, mgr.Filters().Statuses.Has("open"))
}

func Test_DefaultView_IsFetchedOnce_OnFirstListLoad(t *testing.T) {
	t.Parallel()

	src := &fakeSource{
		tickets: sampleTickets(),
		views:   []models.View{{ID: 3, Name: "Home", IsDefault: true}},
	}
	v, mgr := newTestView(src)

	_, cmd := v.Update(v.loadViews())
	require.NotNil(t, cmd)

	v.Update(cmd())
	require.NotNil(t, mgr.CurrentView())
	assert.Equal(t, "Home", mgr.CurrentView().Name)

	// A refresh must not re-apply the default over the user's state.
	mgr.ClearView()
	_, cmd = v.Update(v.loadViews())
	assert.Nil(t, cmd)
	assert.Nil(t, mgr.CurrentView())
}

func Test_DefaultView_NotFetched_When_NoneFlagged(t *testing.T) {
	t.Parallel()

	src := &fakeSource{
		tickets: sampleTickets(),
		views:   []models.View{{ID: 1, Name: "Plain"}},
	}
	v, mgr := newTestView(src)

	_, cmd := v.Update(v.loadViews())

	assert.Nil(t, cmd)
	assert.Nil(t, mgr.CurrentView())
}

func Test_VisibleLines_SkipsHiddenRows_When_Flat(t *testing.T) {
	t.Parallel()

	src := &fakeSource{tickets: sampleTickets()}
	v, mgr := newTestView(src)

	mgr.ToggleStatus("open")
	lines := v.visibleLines()

	require.Len(t, lines, 2)
	assert.Equal(t, 0, lines[0].rowIdx)
	assert.Equal(t, 2, lines[1].rowIdx)
	for _, line := range lines {
		assert.False(t, line.isHeader)
	}
}

func Test_VisibleLines_EmitsHeadersAndMembers_When_Grouped(t *testing.T) {
	t.Parallel()

	src := &fakeSource{tickets: sampleTickets()}
	v, mgr := newTestView(src)

	mgr.SetGrouping(viewstate.GroupCompany)
	lines := v.visibleLines()

	require.Len(t, lines, 5)
	assert.True(t, lines[0].isHeader)
	assert.Equal(t, "Acme", lines[0].groupKey)
	assert.Equal(t, 2, lines[0].count)
	assert.Equal(t, 0, lines[1].rowIdx)
	assert.Equal(t, 2, lines[2].rowIdx)
	assert.True(t, lines[3].isHeader)
	assert.Equal(t, "Globex", lines[3].groupKey)
	assert.Equal(t, 1, lines[4].rowIdx)
}

func Test_VisibleLines_KeepsHeader_When_GroupCollapsed(t *testing.T) {
	t.Parallel()

	src := &fakeSource{tickets: sampleTickets()}
	v, mgr := newTestView(src)

	mgr.SetGrouping(viewstate.GroupCompany)
	mgr.ToggleGroup("Acme")
	lines := v.visibleLines()

	require.Len(t, lines, 3)
	assert.True(t, lines[0].isHeader)
	assert.True(t, lines[0].collapsed)
	assert.Equal(t, 2, lines[0].count)
	assert.True(t, lines[1].isHeader)
	assert.Equal(t, 1, lines[2].rowIdx)
}

func Test_SaveCommand_SerializesState_BeforeRunning(t *testing.T) {
	t.Parallel()

	src := &fakeSource{tickets: sampleTickets()}
	v, mgr := newTestView(src)

	mgr.ToggleStatus("open")
	v.saveName.SetValue("Mine")
	v.saveDefault = true

	cmd := v.saveView()
	require.NotNil(t, cmd)

	// Mutating the manager after the command is built must not leak
	// into the persisted payload.
	mgr.ToggleStatus("closed")

	msg := cmd()
	require.IsType(t, viewSavedMsg{}, msg)
	require.Len(t, src.created, 1)
	assert.Equal(t, "Mine", src.created[0].Name)
	assert.Equal(t, []string{"open"}, src.created[0].Filters.Status)
	assert.True(t, src.created[0].IsDefault)

	v.Update(msg)
	assert.False(t, v.saving)
	require.Len(t, mgr.Views(), 1)
}

func Test_SaveForm_Closes_When_NameBlank(t *testing.T) {
	t.Parallel()

	src := &fakeSource{tickets: sampleTickets()}
	v, _ := newTestView(src)

	v.saving = true
	v.saveName.SetValue("   ")

	assert.Nil(t, v.saveView())
	assert.False(t, v.saving)
	assert.Empty(t, src.created)
}

func Test_DeleteConfirm_IssuesDelete_OnlyOnYes(t *testing.T) {
	t.Parallel()

	src := &fakeSource{
		tickets: sampleTickets(),
		views:   []models.View{{ID: 9, Name: "Doomed"}},
	}
	v, mgr := newTestView(src)
	v.Update(v.loadViews())
	v.Update(v.fetchView(9)())
	require.NotNil(t, mgr.CurrentView())

	v.confirmingDelete = true
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	assert.False(t, v.confirmingDelete)
	assert.Nil(t, cmd)
	assert.Empty(t, src.deleted)

	v.confirmingDelete = true
	_, cmd = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	require.NotNil(t, cmd)
	assert.NotNil(t, mgr.CurrentView(), "current view stays until the store confirms")

	v.Update(cmd())
	assert.Equal(t, []int64{9}, src.deleted)
	assert.Nil(t, mgr.CurrentView())
	assert.Empty(t, mgr.Views())
}

func Test_Truncate_CutsByRunes_When_TitleMultibyte(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "long…", truncate("longer", 5))
	assert.Equal(t, "héllø wö…", truncate("héllø wörld", 9))
	assert.Equal(t, "チケット…", truncate("チケット一覧画面", 5))
}
