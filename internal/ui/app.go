package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tcarver/tix/internal/ui/views"
	"github.com/tcarver/tix/internal/viewstate"
)

// App is the root bubbletea model. The portal exposes one manager-bound
// table per screen; App owns that screen and forwards everything to it.
type App struct {
	ticketView *views.TicketView
	width      int
	height     int
}

// NewApp creates a new application bound to a ticket source and a view
// manager.
func NewApp(src views.Source, mgr *viewstate.Manager) *App {
	return &App{
		ticketView: views.NewTicketView(src, mgr),
	}
}

func (a *App) Init() tea.Cmd {
	return a.ticketView.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = size.Width
		a.height = size.Height
	}

	_, cmd := a.ticketView.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	return a.ticketView.View()
}
