package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"github.com/tcarver/tix/internal/api"
	"github.com/tcarver/tix/internal/config"
	"github.com/tcarver/tix/internal/ui"
	"github.com/tcarver/tix/internal/viewstate"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	apiURL := flag.String("api-url", "", "portal API base URL")
	apiKey := flag.String("api-key", "", "portal API key")
	tenant := flag.String("tenant", "", "tenant identifier")
	showVersion := flag.BoolP("version", "v", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("tix %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *apiURL != "" {
		cfg.APIURL = *apiURL
	}
	if *apiKey != "" {
		cfg.APIKey = *apiKey
	}
	if *tenant != "" {
		cfg.Tenant = *tenant
	}

	// Stdout belongs to the TUI, so diagnostics go to a file when
	// TIX_DEBUG is set and are dropped otherwise.
	if os.Getenv("TIX_DEBUG") != "" {
		f, err := tea.LogToFile("tix-debug.log", "tix")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	client := api.NewClient(cfg.APIURL, cfg.APIKey, cfg.Tenant)
	mgr := viewstate.New(client,
		viewstate.WithSeedStatuses(cfg.DefaultStatuses...),
		viewstate.WithLogger(log.Printf),
	)

	app := ui.NewApp(client, mgr)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}
