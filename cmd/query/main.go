// Command query is an interactive SQL prompt against the news database.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/newsroom/news-api/internal/config"
	"github.com/newsroom/news-api/internal/database"
	"github.com/newsroom/news-api/internal/observability"
)

var (
	dbURL     string
	statement string
	timeout   time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "query",
	Short: "Run SQL against the news database and print the rows as a table",
	Long: `query reads SQL statements from the terminal, runs each one against the
configured database and renders the result set as a table. After every
statement it asks whether to run another one.

Use --command to run a single statement without prompting.`,
	SilenceUsage: true,
	RunE:         runQuery,
}

func init() {
	rootCmd.Flags().StringVar(&dbURL, "db", "", "Database connection URL (defaults to the service configuration)")
	rootCmd.Flags().StringVarP(&statement, "command", "c", "", "Run one statement and exit")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Per-statement timeout")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runQuery(cmd *cobra.Command, _ []string) error {
	if dbURL != "" {
		if err := os.Setenv(config.EnvPrefix+"_DATABASE_URL", dbURL); err != nil {
			return fmt.Errorf("set database url: %w", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.NewLogger(observability.LoggingConfig{
		Level:  "warn",
		Format: "console",
		Output: "stderr",
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, &cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	sess := &session{
		exec:    newExecutor(db),
		in:      cmd.InOrStdin(),
		out:     cmd.OutOrStdout(),
		timeout: timeout,
	}
	if statement != "" {
		return sess.runOnce(ctx, statement)
	}
	return sess.loop(ctx)
}
