package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/newsroom/news-api/internal/database"
)

var errNoInput = errors.New("no input")

// queryFunc runs one statement and returns its materialized result.
type queryFunc func(ctx context.Context, sql string) (*resultSet, error)

// resultSet is a fully materialized query result.
type resultSet struct {
	Columns []string
	Rows    [][]string
	// Tag is the command tag for statements that return no rows, e.g. "DELETE 3".
	Tag string
}

// newExecutor returns a queryFunc that runs statements on db.
func newExecutor(db database.DBTX) queryFunc {
	return func(ctx context.Context, sql string) (*resultSet, error) {
		rows, err := db.Query(ctx, sql)
		if err != nil {
			return nil, err
		}
		return collect(rows)
	}
}

func collect(rows pgx.Rows) (*resultSet, error) {
	defer rows.Close()

	fields := rows.FieldDescriptions()
	rs := &resultSet{Columns: make([]string, len(fields))}
	for i, f := range fields {
		rs.Columns[i] = f.Name
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = formatValue(v)
		}
		rs.Rows = append(rs.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rs.Tag = rows.CommandTag().String()
	return rs, nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case time.Time:
		return val.Format(time.RFC3339)
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}

// session drives the prompt loop over in and out.
type session struct {
	exec    queryFunc
	in      io.Reader
	out     io.Writer
	timeout time.Duration

	scanner *bufio.Scanner
}

func (s *session) lines() *bufio.Scanner {
	if s.scanner == nil {
		s.scanner = bufio.NewScanner(s.in)
		s.scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	}
	return s.scanner
}

// ask prints prompt and returns the next trimmed line.
func (s *session) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, promptStyle.Render(prompt)+" ")
	sc := s.lines()
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", errNoInput
	}
	return strings.TrimSpace(sc.Text()), nil
}

// confirm asks a yes/no question. An empty answer counts as yes.
func (s *session) confirm(prompt string) (bool, error) {
	answer, err := s.ask(prompt + " (Y/n)")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// runOnce executes sql and prints the result or the error.
func (s *session) runOnce(ctx context.Context, sql string) error {
	sql = strings.TrimSpace(sql)
	if sql == "" {
		return nil
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	rs, err := s.exec(ctx, sql)
	if err != nil {
		fmt.Fprintln(s.out, errorStyle.Render("error: "+err.Error()))
		return err
	}
	fmt.Fprintln(s.out, render(rs))
	return nil
}

// loop keeps prompting until the operator declines another query or input ends.
// Statement errors are printed and do not end the session.
func (s *session) loop(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		sql, err := s.ask("Please enter your query:")
		if errors.Is(err, errNoInput) {
			return nil
		}
		if err != nil {
			return err
		}
		_ = s.runOnce(ctx, sql)

		again, err := s.confirm("Would you like to enter another query?")
		if errors.Is(err, errNoInput) {
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}
