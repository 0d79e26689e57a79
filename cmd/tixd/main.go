package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/tcarver/tix/internal/server"
	"github.com/tcarver/tix/internal/store"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	addr := flag.String("addr", ":8917", "listen address")
	dbPath := flag.String("db", "", "database path (default: XDG data dir)")
	seed := flag.Bool("seed", false, "insert sample tickets into an empty database")
	showVersion := flag.BoolP("version", "v", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("tixd %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	st, err := store.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if *seed {
		if err := st.Seed(); err != nil {
			fmt.Fprintf(os.Stderr, "Error seeding database: %v\n", err)
			os.Exit(1)
		}
	}

	srv := server.New(st)
	if err := srv.ListenAndServe(*addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error running server: %v\n", err)
		os.Exit(1)
	}
}
