// Package main provides a CLI tool for database migrations.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/newsroom/news-api/internal/config"
	"github.com/newsroom/news-api/internal/database"
	"github.com/newsroom/news-api/internal/observability"
)

var errNoAction = errors.New("no action specified")

// schema is the part of database.Migrator the actions drive.
type schema interface {
	Up() error
	Down() error
	Reset() error
	Steps(n int) error
	Force(version int) error
	Version() (uint, bool, error)
	Source() string
}

// options holds the parsed command line.
type options struct {
	up, down, reset, version bool
	steps                    int
	force                    int
	path                     string
	embedded                 bool
}

// action is one migration command selected from the flags.
type action struct {
	name string
	run  func(schema) error
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseOptions(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.BoolVar(&opts.up, "up", false, "Run all pending migrations")
	fs.BoolVar(&opts.down, "down", false, "Roll back all migrations")
	fs.IntVar(&opts.steps, "steps", 0, "Run N migration steps (positive=up, negative=down)")
	fs.BoolVar(&opts.version, "version", false, "Print the current migration version")
	fs.BoolVar(&opts.reset, "reset", false, "Roll back all migrations and re-apply them, leaving empty tables")
	fs.IntVar(&opts.force, "force", -1, "Force set migration version (use to recover from failed migrations)")
	fs.StringVar(&opts.path, "path", "", "Read migrations from this directory instead of the configured source")
	fs.BoolVar(&opts.embedded, "embedded", false, "Use the migrations compiled into this binary, ignoring any configured path")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

// selectAction returns the single action requested by opts.
func selectAction(opts options) (action, error) {
	var chosen []action
	if opts.up {
		chosen = append(chosen, action{"up", func(s schema) error { return s.Up() }})
	}
	if opts.down {
		chosen = append(chosen, action{"down", func(s schema) error { return s.Down() }})
	}
	if opts.steps != 0 {
		n := opts.steps
		chosen = append(chosen, action{fmt.Sprintf("steps %d", n), func(s schema) error { return s.Steps(n) }})
	}
	if opts.reset {
		chosen = append(chosen, action{"reset", func(s schema) error { return s.Reset() }})
	}
	if opts.version {
		chosen = append(chosen, action{"version", func(schema) error { return nil }})
	}
	if opts.force >= 0 {
		v := opts.force
		chosen = append(chosen, action{fmt.Sprintf("force %d", v), func(s schema) error { return s.Force(v) }})
	}

	switch len(chosen) {
	case 0:
		return action{}, errNoAction
	case 1:
		return chosen[0], nil
	default:
		names := make([]string, len(chosen))
		for i, a := range chosen {
			names[i] = a.name
		}
		return action{}, fmt.Errorf("specify only one action at a time, got: %s", strings.Join(names, ", "))
	}
}

// migrationDir picks the directory handed to database.NewMigrator. An empty
// result selects the embedded migrations.
func migrationDir(opts options, configured string) (string, error) {
	if opts.embedded {
		if opts.path != "" {
			return "", fmt.Errorf("-embedded and -path are mutually exclusive")
		}
		return "", nil
	}
	if opts.path != "" {
		return opts.path, nil
	}
	return configured, nil
}

// execute runs a against s and reports the resulting version.
func execute(a action, s schema, logger zerolog.Logger) error {
	logger.Info().
		Str("action", a.name).
		Str("source", s.Source()).
		Msg("running migration action")
	if err := a.run(s); err != nil {
		return fmt.Errorf("migrate %s: %w", a.name, err)
	}
	printVersion(s, logger)
	return nil
}

func run(args []string) error {
	opts, err := parseOptions(args, os.Stderr)
	if err != nil {
		return err
	}

	act, err := selectAction(opts)
	if errors.Is(err, errNoAction) {
		fmt.Fprintln(os.Stderr, "Please specify one of: -up, -down, -steps N, -version, -reset, -force V")
		return err
	}
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dir, err := migrationDir(opts, cfg.Database.MigrationPath)
	if err != nil {
		return err
	}

	logger := observability.NewLogger(observability.LoggingConfig{
		Level:      "info",
		Format:     "console",
		Output:     "stdout",
		TimeFormat: time.RFC3339,
	})
	logger = logger.With().Str("component", "migrate").Logger()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.New(ctx, &cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	migrator, err := database.NewMigrator(db, dir, logger)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		if closeErr := migrator.Close(); closeErr != nil {
			logger.Error().Err(closeErr).Msg("failed to close migrator")
		}
	}()

	return execute(act, migrator, logger)
}

func printVersion(s schema, logger zerolog.Logger) {
	v, dirty, err := s.Version()
	if err != nil {
		logger.Warn().Err(err).Msg("could not determine migration version")
		return
	}
	logger.Info().
		Uint("version", v).
		Bool("dirty", dirty).
		Str("source", s.Source()).
		Msg("current migration version")
}
