// Command seed recreates development data in the news database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/newsroom/news-api/internal/config"
	"github.com/newsroom/news-api/internal/database"
	"github.com/newsroom/news-api/internal/observability"
	"github.com/newsroom/news-api/internal/seed"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	defaults := seed.DefaultGenerateOptions()

	fixtures := flag.Bool("fixtures", false, "Load the small fixed dataset used by the test suite")
	seedValue := flag.Int64("seed", defaults.Seed, "Random seed for generated data")
	numTopics := flag.Int("topics", defaults.Topics, "Number of topics to generate")
	numUsers := flag.Int("users", defaults.Users, "Number of users to generate")
	numArticles := flag.Int("articles", defaults.Articles, "Number of articles to generate")
	maxComments := flag.Int("max-comments", defaults.MaxCommentsPerItem, "Maximum comments per generated article")
	maxDays := flag.Int("max-days", defaults.MaxDays, "Spread generated timestamps over this many past days")
	reset := flag.Bool("reset", false, "Roll back and re-apply all migrations before seeding")
	migrationsPath := flag.String("path", "", "Override the migrations directory path")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.NewLogger(observability.LoggingConfig{
		Level:      "info",
		Format:     "console",
		Output:     "stdout",
		TimeFormat: time.RFC3339,
	})
	logger = logger.With().Str("component", "seed").Logger()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := database.New(ctx, &cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if *reset {
		migrationDir := cfg.Database.MigrationPath
		if *migrationsPath != "" {
			migrationDir = *migrationsPath
		}
		migrator, err := database.NewMigrator(db, migrationDir, logger)
		if err != nil {
			return fmt.Errorf("create migrator: %w", err)
		}
		resetErr := migrator.Reset()
		if closeErr := migrator.Close(); closeErr != nil {
			logger.Error().Err(closeErr).Msg("failed to close migrator")
		}
		if resetErr != nil {
			return fmt.Errorf("reset schema: %w", resetErr)
		}
	}

	var ds seed.Dataset
	if *fixtures {
		logger.Info().Msg("loading fixture dataset")
		ds = seed.Fixtures()
	} else {
		opts := seed.GenerateOptions{
			Seed:               *seedValue,
			Topics:             *numTopics,
			Users:              *numUsers,
			Articles:           *numArticles,
			MaxCommentsPerItem: *maxComments,
			MaxDays:            *maxDays,
		}
		logger.Info().
			Int64("seed", opts.Seed).
			Int("topics", opts.Topics).
			Int("users", opts.Users).
			Int("articles", opts.Articles).
			Msg("generating dataset")
		ds = seed.Generate(opts)
	}

	if err := seed.NewSeeder(db, logger).Seed(ctx, ds); err != nil {
		return fmt.Errorf("seed database: %w", err)
	}
	return nil
}
