// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-arbiter/internal/config"
	"github.com/lgbarn/chess-arbiter/internal/storage"
)

var (
	// Storage options
	dbDir      = flag.String("db", getenv("CHESS_ARBITER_DB", ""), "Game database directory (env CHESS_ARBITER_DB; default: platform data dir)")
	inMemory   = flag.Bool("memory", false, "Use a throwaway in-memory database")
	syncWrites = flag.Bool("sync", getenb("CHESS_ARBITER_SYNC", false), "Flush every database write to disk (env CHESS_ARBITER_SYNC)")

	// Output options
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	unicodeBoard = flag.Bool("unicode", false, "Draw pieces with chess glyphs")
	noCoords     = flag.Bool("nocoords", false, "Don't print board coordinates")
	noCaptures   = flag.Bool("nocaptures", false, "Don't print captured pieces")

	// Logging
	logFile   = flag.String("l", "", "Write log messages to this file (default: stderr)")
	appendLog = flag.String("L", "", "Append log messages to this file")
	verbosity = flag.Int("v", getenvInt("CHESS_ARBITER_VERBOSITY", config.Summary), "Verbosity: 0 silent, 1 summary, 2 commentary")
	quiet     = flag.Bool("s", false, "Silent mode: same as -v 0")

	// verify
	workers  = flag.Int("workers", 0, "Number of verify workers (0 = one per CPU)")
	failFast = flag.Bool("failfast", false, "Stop verify at the first broken game")

	// Misc
	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("h", false, "Show help")
)

// buildConfig turns the parsed flags into a Config. The database directory
// falls back to the platform default when neither -db nor the environment
// names one.
func buildConfig() (*config.Config, error) {
	dir := *dbDir
	if dir == "" && !*inMemory {
		d, err := storage.DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	level := *verbosity
	if *quiet {
		level = config.Silent
	}

	cfg := config.NewConfigBuilder().
		WithStorageDir(dir).
		WithInMemoryStorage(*inMemory).
		WithSyncWrites(*syncWrites).
		WithJSONOutput(*jsonOutput).
		WithUnicode(*unicodeBoard).
		WithCoordinates(!*noCoords).
		WithWorkers(*workers).
		WithVerbosity(level).
		Build()
	cfg.Output.ShowCaptures = !*noCaptures
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}
