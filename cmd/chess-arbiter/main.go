// chess-arbiter is a command-line client for the chess rule engine. Games
// are stored as move logs and replayed through the engine on every command.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-arbiter/internal/config"
	"github.com/lgbarn/chess-arbiter/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-arbiter version %s\n", programVersion)
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := buildConfig()
	if err != nil {
		fatal(err)
	}
	setupLogFile(cfg)
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	var badgerLog io.Writer
	if cfg.Verbosity >= config.Commentary {
		badgerLog = cfg.LogFile
	}
	store, err := storage.Open(cfg.Storage, badgerLog)
	if err != nil {
		fatal(err)
	}
	cfg.Logf(config.Commentary, "Database: %s\n", describeStore(cfg.Storage))

	err = run(cfg, store, flag.Args())
	if cerr := store.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fatal(err)
	}
}

func describeStore(s *config.StorageConfig) string {
	if s.InMemory {
		return "in memory"
	}
	return s.Dir
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-arbiter [options] command [arguments]\n\n")
	fmt.Fprintf(os.Stderr, "Plays and checks chess games stored as coordinate move logs.\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	for _, name := range commandOrder {
		fmt.Fprintf(os.Stderr, "  %-28s %s\n", name+" "+commands[name].args, commands[name].summary)
	}
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMoves are given as origin and destination squares, e.g. e2e4 or e1g1.\n")
	fmt.Fprintf(os.Stderr, "Pawns reaching the last rank always become queens.\n")
}
