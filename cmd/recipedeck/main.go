// RecipeDeck — a terminal client for a shared recipe collection.
//
// Usage:
//
//	recipedeck [-api-url URL] [-verbose] [-quiet]
package main

import (
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/recipedeck/internal/controller"
	"github.com/hammamikhairi/recipedeck/internal/display"
	"github.com/hammamikhairi/recipedeck/internal/logger"
	"github.com/hammamikhairi/recipedeck/internal/remote"
	"github.com/hammamikhairi/recipedeck/internal/session"
	"github.com/hammamikhairi/recipedeck/internal/storage"
)

func main() {
	_ = godotenv.Load()

	apiURL := flag.String("api-url", envOr("RECIPEDECK_API_URL", "http://localhost:5000"), "base URL of the recipe API")
	stateFile := flag.String("state-file", defaultStatePath(), "file holding the persisted session")
	logFile := flag.String("log-file", ".recipedeck/recipedeck.log", "file to write logs to (use \"stderr\" to log to console)")
	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the TUI stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Redirect Go's default log package to the same output so stray
	// library logging doesn't corrupt the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	// Wire dependencies. The repository authenticates logins and the
	// session store supplies its bearer token, so wiring is two-step.
	kv := storage.NewFileStore(*stateFile, log)
	repo := remote.New(*apiURL, log)
	sessions := session.NewStore(kv, repo, log)
	repo.SetTokenSource(sessions)

	sessions.Restore()

	ctrl := controller.New(sessions, log)

	fmt.Println(display.RenderBanner())

	if err := display.Run(display.NewModel(ctrl, repo, sessions, log)); err != nil {
		log.Error("display: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// defaultStatePath keeps the session file next to the logs, under a
// dot-directory in the working directory.
func defaultStatePath() string {
	return filepath.Join(".recipedeck", "session.json")
}
