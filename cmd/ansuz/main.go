// Command ansuz is a file-backed note manager: documents with
// structured metadata stored as Markdown files in a corpus directory.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/halvard/ansuz/internal"
	"github.com/halvard/ansuz/internal/storage"
	"github.com/halvard/ansuz/internal/store"
)

func main() {
	cmd := &cli.Command{
		Name:  "ansuz",
		Usage: "Manage a directory of Markdown documents with structured metadata, tags, search, and export",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "Corpus directory",
				DefaultText: "~/.ansuz",
				Value:       internal.DefaultCorpusDir(),
				Sources:     cli.EnvVars("ANSUZ_DIR"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug output",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Suppress non-error output",
			},
		},
		Commands: []*cli.Command{
			createCommand(),
			viewCommand(),
			listCommand(),
			searchCommand(),
			editCommand(),
			deleteCommand(),
			tagCommand(),
			exportCommand(),
			serveCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the per-invocation logger from the global verbosity
// flags. Verbosity is threaded explicitly; nothing reads it ambiently.
func newLogger(cmd *cli.Command) *slog.Logger {
	level := slog.LevelInfo
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	if cmd.Bool("quiet") {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openStore ensures the corpus directory exists and builds the store.
func openStore(cmd *cli.Command) (*store.Store, storage.Provider, error) {
	dir := cmd.String("dir")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create corpus dir: %w", err)
	}
	fs, err := storage.NewFS(dir)
	if err != nil {
		return nil, nil, err
	}
	return store.New(fs, newLogger(cmd)), fs, nil
}

// confirm prompts on stderr and reads a yes/no answer from stdin.
func confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
