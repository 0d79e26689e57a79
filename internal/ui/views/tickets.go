package views

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tcarver/tix/internal/models"
	"github.com/tcarver/tix/internal/ui/keys"
	"github.com/tcarver/tix/internal/ui/styles"
	"github.com/tcarver/tix/internal/viewstate"
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// Source is the slice of the portal API the view needs: the ticket
// listing plus the saved-view store. The api.Client satisfies it.
type Source interface {
	ListTickets(ctx context.Context) ([]models.Ticket, error)
	viewstate.ViewStore
}

// tableLine is one display line of the rendered table: either a synthetic
// group header or a visible ticket row.
type tableLine struct {
	isHeader  bool
	groupKey  string
	collapsed bool
	count     int
	rowIdx    int
}

// TicketView shows the ticket table with filtering, grouping and saved
// views. The manager is owned by the update loop: commands only talk to
// the remote source and hand results back as messages, and every manager
// mutation happens in Update.
type TicketView struct {
	src    Source
	mgr    *viewstate.Manager
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	// UI state
	cursor  int
	scrollY int

	// Distinct filter options derived from the loaded rows
	statusOptions   []string
	priorityOptions []string

	// Filter panel state
	filterOpen   bool
	filterCursor int

	// Grouping dropdown state
	groupingOpen bool
	groupCursor  int

	// Views dropdown state
	viewsOpen  bool
	viewCursor int

	// Save view form
	saving       bool
	saveName     textinput.Model
	saveDesc     textinput.Model
	saveDefault  bool
	saveFocusIdx int // 0=name, 1=description, 2=default, 3=save

	// Delete confirmation
	confirmingDelete bool

	// Default view auto-apply runs once after the first view list load
	defaultApplied bool

	statusText string
}

// NewTicketView creates the ticket table view
func NewTicketView(src Source, mgr *viewstate.Manager) *TicketView {
	saveName := textinput.New()
	saveName.Placeholder = "View name"
	saveName.CharLimit = 100

	saveDesc := textinput.New()
	saveDesc.Placeholder = "Description (optional)"
	saveDesc.CharLimit = 200

	return &TicketView{
		src:      src,
		mgr:      mgr,
		styles:   styles.NewStyles(),
		keys:     keys.DefaultKeyMap(),
		saveName: saveName,
		saveDesc: saveDesc,
	}
}

// Init initializes the view
func (v *TicketView) Init() tea.Cmd {
	return tea.Batch(v.loadTickets, v.loadViews)
}

type ticketsLoadedMsg struct {
	tickets []models.Ticket
}

type viewsLoadedMsg struct {
	views []models.View
}

type viewAppliedMsg struct {
	view *models.View
}

type viewSavedMsg struct {
	views []models.View
}

type viewDeletedMsg struct {
	views []models.View
}

type errMsg struct {
	err error
}

func (v *TicketView) loadTickets() tea.Msg {
	tickets, err := v.src.ListTickets(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return ticketsLoadedMsg{tickets: tickets}
}

func (v *TicketView) loadViews() tea.Msg {
	views, err := v.src.ListViews(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return viewsLoadedMsg{views: views}
}

func (v *TicketView) fetchView(id int64) tea.Cmd {
	return func() tea.Msg {
		view, err := v.src.GetView(context.Background(), id)
		if err != nil {
			return errMsg{err}
		}
		return viewAppliedMsg{view: view}
	}
}

func (v *TicketView) saveView() tea.Cmd {
	name := strings.TrimSpace(v.saveName.Value())
	if name == "" {
		v.saving = false
		return nil
	}
	// Serialize the state on the update goroutine; the command only
	// carries the finished payload to the store.
	req := v.mgr.ViewRequest(name, strings.TrimSpace(v.saveDesc.Value()), v.saveDefault)

	return func() tea.Msg {
		if _, err := v.src.CreateView(context.Background(), req); err != nil {
			return errMsg{err}
		}
		views, err := v.src.ListViews(context.Background())
		if err != nil {
			// The view exists; a stale selector is acceptable.
			return viewSavedMsg{}
		}
		return viewSavedMsg{views: views}
	}
}

func (v *TicketView) deleteView(id int64) tea.Cmd {
	return func() tea.Msg {
		if err := v.src.DeleteView(context.Background(), id); err != nil {
			return errMsg{err}
		}
		views, err := v.src.ListViews(context.Background())
		if err != nil {
			return viewDeletedMsg{}
		}
		return viewDeletedMsg{views: views}
	}
}

// Update handles messages
func (v *TicketView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		inputWidth := clamp(styles.ContentWidth(v.width)-10, 20, 50)
		v.saveName.Width = inputWidth
		v.saveDesc.Width = inputWidth
		return v, nil

	case ticketsLoadedMsg:
		v.mgr.SetRows(msg.tickets)
		v.statusOptions = distinct(msg.tickets, func(t models.Ticket) string { return t.Status })
		v.priorityOptions = distinct(msg.tickets, func(t models.Ticket) string { return t.Priority })
		v.clampCursor()
		return v, nil

	case viewsLoadedMsg:
		v.mgr.SetViews(msg.views)
		if !v.defaultApplied {
			v.defaultApplied = true
			if def := v.mgr.DefaultView(); def != nil {
				return v, v.fetchView(def.ID)
			}
		}
		return v, nil

	case viewAppliedMsg:
		v.mgr.Apply(msg.view)
		v.cursor = 0
		v.scrollY = 0
		v.statusText = ""
		return v, nil

	case viewSavedMsg:
		if msg.views != nil {
			v.mgr.SetViews(msg.views)
		}
		v.saving = false
		v.saveName.Reset()
		v.saveDesc.Reset()
		v.saveDefault = false
		v.statusText = "View saved"
		return v, nil

	case viewDeletedMsg:
		if msg.views != nil {
			v.mgr.SetViews(msg.views)
		}
		v.mgr.ClearCurrentView()
		v.statusText = "View deleted"
		return v, nil

	case errMsg:
		v.statusText = msg.err.Error()
		return v, nil

	case tea.KeyMsg:
		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}
		if v.saving {
			return v.updateSaveForm(msg)
		}
		if v.filterOpen {
			return v.updateFilterPanel(msg)
		}
		if v.groupingOpen {
			return v.updateGroupingPanel(msg)
		}
		if v.viewsOpen {
			return v.updateViewsPanel(msg)
		}
		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *TicketView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.visibleLines())-1 {
			v.cursor++
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter), key.Matches(msg, v.keys.Toggle):
		// Enter on a group header flips its collapse state
		lines := v.visibleLines()
		if v.cursor < len(lines) && lines[v.cursor].isHeader {
			v.mgr.ToggleGroup(lines[v.cursor].groupKey)
			v.clampCursor()
		}
		return v, nil

	case key.Matches(msg, v.keys.Filter):
		v.filterOpen = true
		v.filterCursor = 0
		return v, nil

	case key.Matches(msg, v.keys.Group):
		v.groupingOpen = true
		v.groupCursor = v.currentGroupIndex()
		return v, nil

	case key.Matches(msg, v.keys.Views):
		v.viewsOpen = true
		v.viewCursor = 0
		return v, nil

	case key.Matches(msg, v.keys.Save):
		v.saving = true
		v.saveFocusIdx = 0
		v.saveName.Focus()
		v.saveDesc.Blur()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Delete):
		if v.mgr.CurrentView() != nil {
			v.confirmingDelete = true
		}
		return v, nil

	case key.Matches(msg, v.keys.Clear):
		v.mgr.ClearView()
		v.cursor = 0
		v.scrollY = 0
		v.statusText = ""
		return v, nil

	case key.Matches(msg, v.keys.Refresh):
		return v, tea.Batch(v.loadTickets, v.loadViews)
	}

	return v, nil
}

// filterOptionCount is the number of selectable rows in the filter panel:
// all status options followed by all priority options.
func (v *TicketView) filterOptionCount() int {
	return len(v.statusOptions) + len(v.priorityOptions)
}

func (v *TicketView) updateFilterPanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Filter):
		v.filterOpen = false
		v.clampCursor()
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.filterCursor > 0 {
			v.filterCursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.filterCursor < v.filterOptionCount()-1 {
			v.filterCursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter), key.Matches(msg, v.keys.Toggle):
		if v.filterCursor < len(v.statusOptions) {
			v.mgr.ToggleStatus(v.statusOptions[v.filterCursor])
		} else if i := v.filterCursor - len(v.statusOptions); i < len(v.priorityOptions) {
			v.mgr.TogglePriority(v.priorityOptions[i])
		}
		v.clampCursor()
		return v, nil
	}

	return v, nil
}

func (v *TicketView) updateGroupingPanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := len(viewstate.GroupFields) + 1 // +1 for "None"

	switch {
	case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Group):
		v.groupingOpen = false
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.groupCursor > 0 {
			v.groupCursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.groupCursor < options-1 {
			v.groupCursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if v.groupCursor == 0 {
			v.mgr.RemoveGrouping()
		} else {
			v.mgr.SetGrouping(viewstate.GroupFields[v.groupCursor-1])
		}
		v.groupingOpen = false
		v.cursor = 0
		v.scrollY = 0
		return v, nil
	}

	return v, nil
}

func (v *TicketView) updateViewsPanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := len(v.mgr.Views()) + 1 // +1 for "None"

	switch {
	case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Views):
		v.viewsOpen = false
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.viewCursor > 0 {
			v.viewCursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.viewCursor < options-1 {
			v.viewCursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		v.viewsOpen = false
		if v.viewCursor == 0 {
			v.mgr.ClearView()
			v.cursor = 0
			v.scrollY = 0
			return v, nil
		}
		return v, v.fetchView(v.mgr.Views()[v.viewCursor-1].ID)
	}

	return v, nil
}

func (v *TicketView) updateSaveForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.saving = false
		return v, nil

	case msg.String() == "ctrl+s":
		return v, v.saveView()

	case key.Matches(msg, v.keys.Tab):
		v.saveFocusIdx = (v.saveFocusIdx + 1) % 4
		v.updateSaveFocus()
		return v, nil

	case msg.String() == "shift+tab":
		v.saveFocusIdx = (v.saveFocusIdx + 3) % 4
		v.updateSaveFocus()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		switch v.saveFocusIdx {
		case 0, 1:
			v.saveFocusIdx++
			v.updateSaveFocus()
			return v, nil
		case 2:
			v.saveDefault = !v.saveDefault
			return v, nil
		case 3:
			return v, v.saveView()
		}

	case key.Matches(msg, v.keys.Toggle):
		if v.saveFocusIdx == 2 {
			v.saveDefault = !v.saveDefault
			return v, nil
		}
	}

	var cmd tea.Cmd
	switch v.saveFocusIdx {
	case 0:
		v.saveName, cmd = v.saveName.Update(msg)
	case 1:
		v.saveDesc, cmd = v.saveDesc.Update(msg)
	}
	return v, cmd
}

func (v *TicketView) updateSaveFocus() {
	v.saveName.Blur()
	v.saveDesc.Blur()
	switch v.saveFocusIdx {
	case 0:
		v.saveName.Focus()
	case 1:
		v.saveDesc.Focus()
	}
}

func (v *TicketView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.confirmingDelete = false
		if cur := v.mgr.CurrentView(); cur != nil {
			return v, v.deleteView(cur.ID)
		}
		return v, nil
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

// visibleLines flattens the current render plan into display lines:
// group headers followed by their visible, non-collapsed member rows.
func (v *TicketView) visibleLines() []tableLine {
	plan := v.mgr.Plan()

	var lines []tableLine
	if plan.Groups == nil {
		for i := range v.mgr.Rows() {
			if !plan.Hidden[i] {
				lines = append(lines, tableLine{rowIdx: i})
			}
		}
		return lines
	}

	for _, g := range plan.Groups {
		lines = append(lines, tableLine{
			isHeader:  true,
			groupKey:  g.Key,
			collapsed: g.Collapsed,
			count:     g.Visible,
		})
		if g.Collapsed {
			continue
		}
		for _, idx := range g.Rows {
			if !plan.Hidden[idx] {
				lines = append(lines, tableLine{rowIdx: idx, groupKey: g.Key})
			}
		}
	}
	return lines
}

func (v *TicketView) clampCursor() {
	if n := len(v.visibleLines()); v.cursor >= n {
		v.cursor = max(0, n-1)
	}
}

func (v *TicketView) currentGroupIndex() int {
	for i, f := range viewstate.GroupFields {
		if f == v.mgr.Grouping() {
			return i + 1
		}
	}
	return 0
}

func (v *TicketView) ensureVisible() {
	availableHeight := max(v.height-10, 1)
	if v.cursor < v.scrollY {
		v.scrollY = v.cursor
	} else if v.cursor >= v.scrollY+availableHeight {
		v.scrollY = v.cursor - availableHeight + 1
	}
}

// truncate shortens s to at most width runes, ending in an ellipsis when
// anything was cut. Slicing by rune keeps multibyte titles intact.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

func distinct(tickets []models.Ticket, field func(models.Ticket) string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, t := range tickets {
		val := field(t)
		if val == "" {
			continue
		}
		if _, ok := seen[val]; !ok {
			seen[val] = struct{}{}
			out = append(out, val)
		}
	}
	sort.Strings(out)
	return out
}

// View renders the view
func (v *TicketView) View() string {
	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}
	if v.saving {
		return v.renderSaveForm()
	}

	var b strings.Builder

	b.WriteString(v.renderHeader())
	b.WriteString("\n")

	if v.filterOpen {
		b.WriteString(v.renderFilterPanel())
		b.WriteString("\n")
	}
	if v.groupingOpen {
		b.WriteString(v.renderGroupingPanel())
		b.WriteString("\n")
	}
	if v.viewsOpen {
		b.WriteString(v.renderViewsPanel())
		b.WriteString("\n")
	}

	b.WriteString(v.renderTable())
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *TicketView) renderHeader() string {
	s := v.styles

	title := s.Title.Render("Tickets")
	if view := v.mgr.CurrentView(); view != nil {
		title += s.TitleMuted.Render(" — " + view.Name)
	}
	if g := v.mgr.Grouping(); g != viewstate.GroupNone {
		title += s.TitleMuted.Render("  [grouped by " + g.Label() + "]")
	}

	info := s.Info.Render(v.mgr.InfoText())
	if v.statusText != "" {
		info += s.ErrorText.Render("  " + v.statusText)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, info)
}

func (v *TicketView) renderFilterPanel() string {
	s := v.styles
	filters := v.mgr.Filters()

	var items []string
	items = append(items, s.PanelSection.Render("Status"))
	for i, opt := range v.statusOptions {
		items = append(items, v.renderCheckbox(models.Label(opt), filters.Statuses.Has(opt), v.filterCursor == i))
	}
	items = append(items, s.PanelSection.Render("Priority"))
	for i, opt := range v.priorityOptions {
		cursor := v.filterCursor == len(v.statusOptions)+i
		items = append(items, v.renderCheckbox(models.Label(opt), filters.Priorities.Has(opt), cursor))
	}

	return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}

func (v *TicketView) renderCheckbox(label string, checked, selected bool) string {
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	item := box + " " + label
	if selected {
		return v.styles.PanelCursor.Render(item)
	}
	return v.styles.PanelItem.Render(item)
}

func (v *TicketView) renderGroupingPanel() string {
	s := v.styles

	var items []string
	items = append(items, s.PanelSection.Render("Group by"))

	options := append([]string{"None"}, groupLabels()...)
	for i, opt := range options {
		marker := "  "
		if (i == 0 && v.mgr.Grouping() == viewstate.GroupNone) || (i > 0 && viewstate.GroupFields[i-1] == v.mgr.Grouping()) {
			marker = "● "
		}
		itemStyle := s.PanelItem
		if v.groupCursor == i {
			itemStyle = s.PanelCursor
		}
		items = append(items, itemStyle.Render(marker+opt))
	}

	return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}

func groupLabels() []string {
	out := make([]string, len(viewstate.GroupFields))
	for i, f := range viewstate.GroupFields {
		out[i] = f.Label()
	}
	return out
}

func (v *TicketView) renderViewsPanel() string {
	s := v.styles

	var items []string
	items = append(items, s.PanelSection.Render("Saved views"))

	noneStyle := s.PanelItem
	if v.viewCursor == 0 {
		noneStyle = s.PanelCursor
	}
	items = append(items, noneStyle.Render("None"))

	for i, view := range v.mgr.Views() {
		label := view.Name
		if view.IsDefault {
			label += " (default)"
		}
		itemStyle := s.PanelItem
		if v.viewCursor == i+1 {
			itemStyle = s.PanelCursor
		}
		items = append(items, itemStyle.Render(label))
	}

	if len(v.mgr.Views()) == 0 {
		items = append(items, s.TitleMuted.Render("No saved views"))
	}

	return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}

func (v *TicketView) renderTable() string {
	s := v.styles
	rows := v.mgr.Rows()
	lines := v.visibleLines()

	if len(rows) == 0 {
		return s.TitleMuted.Render("No tickets loaded. Press 'r' to refresh.")
	}
	if len(lines) == 0 {
		return s.TitleMuted.Render("All tickets are filtered out.")
	}

	contentWidth := styles.ContentWidth(v.width)
	titleWidth := clamp(contentWidth-52, 16, 60)

	header := s.TableHeader.Render(fmt.Sprintf("%-5s %-*s %-12s %-10s %-14s %-10s",
		"ID", titleWidth, "Title", "Status", "Priority", "Company", "Assigned"))

	availableHeight := max(v.height-10, 1)
	endIdx := min(v.scrollY+availableHeight, len(lines))

	items := []string{header}
	for i := v.scrollY; i < endIdx; i++ {
		line := lines[i]
		selected := i == v.cursor
		if line.isHeader {
			items = append(items, v.renderGroupHeader(line, selected))
		} else {
			items = append(items, v.renderTicketRow(rows[line.rowIdx], titleWidth, selected, line.groupKey != ""))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (v *TicketView) renderGroupHeader(line tableLine, selected bool) string {
	s := v.styles

	arrow := "▾"
	if line.collapsed {
		arrow = "▸"
	}
	text := fmt.Sprintf("%s %s %s", arrow, line.groupKey, s.GroupCount.Render(fmt.Sprintf("(%d)", line.count)))

	if selected {
		return s.GroupSelected.Render(text)
	}
	return s.GroupHeader.Render(text)
}

func (v *TicketView) renderTicketRow(t models.Ticket, titleWidth int, selected, indented bool) string {
	s := v.styles

	title := truncate(t.Title, titleWidth)

	statusStyle := lipgloss.NewStyle().Foreground(styles.StatusColor(t.Status))
	priorityStyle := lipgloss.NewStyle().Foreground(styles.PriorityColor(t.Priority))

	indent := ""
	if indented {
		indent = "  "
	}

	row := fmt.Sprintf("%s%-5d %-*s %s %s %-14s %-10s",
		indent,
		t.ID,
		titleWidth, title,
		statusStyle.Render(fmt.Sprintf("%-12s", t.StatusLabel())),
		priorityStyle.Render(fmt.Sprintf("%-10s", t.PriorityLabel())),
		t.Company,
		t.Assigned,
	)

	if selected {
		return s.RowSelected.Render(row)
	}
	return s.Row.Render(row)
}

func (v *TicketView) renderSaveForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	nameStyle := s.Input
	descStyle := s.Input
	defaultStyle := s.PanelItem
	btnStyle := s.Button

	switch v.saveFocusIdx {
	case 0:
		nameStyle = s.InputFocused
	case 1:
		descStyle = s.InputFocused
	case 2:
		defaultStyle = s.PanelCursor
	case 3:
		btnStyle = s.ButtonFocused
	}

	checkbox := "[ ]"
	if v.saveDefault {
		checkbox = "[x]"
	}

	inputWidth := clamp(contentWidth-6, 20, 50)

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Save View"),
		"",
		"Name:",
		nameStyle.Width(inputWidth).Render(v.saveName.View()),
		"",
		"Description:",
		descStyle.Width(inputWidth).Render(v.saveDesc.View()),
		"",
		defaultStyle.Render(checkbox+" Apply by default"),
		"",
		btnStyle.Render(" Save "),
		"",
		s.TitleMuted.Render("Tab: next • Space: toggle • Ctrl+S: save • Esc: cancel"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TicketView) renderDeleteConfirm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	name := ""
	if view := v.mgr.CurrentView(); view != nil {
		name = view.Name
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render("Delete View?"),
		"",
		s.TitleMuted.Render(fmt.Sprintf("The saved view %q will be removed for everyone.", name)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TicketView) renderHelp() string {
	return v.styles.Help.Render(
		fmt.Sprintf("%s filters • %s group • %s views • %s save • %s delete • %s clear • %s refresh • %s collapse • %s quit",
			v.styles.HelpKey.Render("f"),
			v.styles.HelpKey.Render("g"),
			v.styles.HelpKey.Render("v"),
			v.styles.HelpKey.Render("s"),
			v.styles.HelpKey.Render("d"),
			v.styles.HelpKey.Render("c"),
			v.styles.HelpKey.Render("r"),
			v.styles.HelpKey.Render("↵"),
			v.styles.HelpKey.Render("q"),
		),
	)
}
