package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	statements []string
	result     *resultSet
	err        error
}

func (f *fakeExec) run(_ context.Context, sql string) (*resultSet, error) {
	f.statements = append(f.statements, sql)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestSession(input string, exec *fakeExec) (*session, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &session{
		exec:    exec.run,
		in:      strings.NewReader(input),
		out:     out,
		timeout: time.Second,
	}, out
}

func topicsResult() *resultSet {
	return &resultSet{
		Columns: []string{"slug", "description"},
		Rows: [][]string{
			{"mitch", "The man, the Mitch, the legend"},
			{"cats", "Not dogs"},
		},
		Tag: "SELECT 2",
	}
}

func TestSession_Loop(t *testing.T) {
	t.Run("runs queries until declined", func(t *testing.T) {
		exec := &fakeExec{result: topicsResult()}
		sess, out := newTestSession("SELECT * FROM topics;\n\nSELECT 1;\nn\n", exec)

		require.NoError(t, sess.loop(context.Background()))

		assert.Equal(t, []string{"SELECT * FROM topics;", "SELECT 1;"}, exec.statements)
		assert.Contains(t, out.String(), "Please enter your query:")
		assert.Contains(t, out.String(), "Would you like to enter another query?")
		assert.Contains(t, out.String(), "mitch")
		assert.Contains(t, out.String(), "(2 rows)")
	})

	t.Run("errors do not end the session", func(t *testing.T) {
		exec := &fakeExec{err: errors.New(`relation "nope" does not exist`)}
		sess, out := newTestSession("SELECT * FROM nope;\ny\nSELECT 2;\nno\n", exec)

		require.NoError(t, sess.loop(context.Background()))

		assert.Len(t, exec.statements, 2)
		assert.Contains(t, out.String(), `error: relation "nope" does not exist`)
	})

	t.Run("end of input stops cleanly", func(t *testing.T) {
		exec := &fakeExec{result: topicsResult()}
		sess, _ := newTestSession("SELECT 1;\n", exec)

		require.NoError(t, sess.loop(context.Background()))
		assert.Equal(t, []string{"SELECT 1;"}, exec.statements)
	})

	t.Run("blank statement is skipped", func(t *testing.T) {
		exec := &fakeExec{result: topicsResult()}
		sess, _ := newTestSession("   \nn\n", exec)

		require.NoError(t, sess.loop(context.Background()))
		assert.Empty(t, exec.statements)
	})
}

func TestSession_RunOnce(t *testing.T) {
	exec := &fakeExec{err: errors.New("syntax error")}
	sess, out := newTestSession("", exec)

	err := sess.runOnce(context.Background(), "SELEC 1")
	require.Error(t, err)
	assert.Contains(t, out.String(), "syntax error")
}

func TestRender(t *testing.T) {
	t.Run("table with headers and rows", func(t *testing.T) {
		got := render(topicsResult())
		assert.Contains(t, got, "slug")
		assert.Contains(t, got, "description")
		assert.Contains(t, got, "Not dogs")
		assert.Contains(t, got, "(2 rows)")
	})

	t.Run("single row", func(t *testing.T) {
		got := render(&resultSet{Columns: []string{"count"}, Rows: [][]string{{"13"}}})
		assert.Contains(t, got, "(1 row)")
	})

	t.Run("statement without result set prints tag", func(t *testing.T) {
		got := render(&resultSet{Tag: "DELETE 3"})
		assert.Contains(t, got, "DELETE 3")
	})
}

func TestFormatValue(t *testing.T) {
	ts := time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "NULL"},
		{"time", ts, "2020-07-09T20:11:00Z"},
		{"bytes", []byte("raw"), "raw"},
		{"int", int32(100), "100"},
		{"string", "mitch", "mitch"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.in))
		})
	}
}
