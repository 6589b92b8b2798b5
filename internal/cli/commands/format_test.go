package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aka-chestnut/sql-formatter/pkg/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRun(stdin string) (*FormatRun, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &FormatRun{
		Options: format.DefaultOptions(),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Stdin:   strings.NewReader(stdin),
		Stdout:  &stdout,
		Stderr:  &stderr,
	}, &stdout, &stderr
}

func writeSQL(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "query.sql")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_Stdin(t *testing.T) {
	run, stdout, _ := newRun("select 1")
	require.NoError(t, run.Run(context.Background(), nil))
	assert.Equal(t, "SELECT\n  1\n", stdout.String())
}

func TestRun_FileToStdout(t *testing.T) {
	path := writeSQL(t, "select a from t")
	run, stdout, _ := newRun("")

	require.NoError(t, run.Run(context.Background(), []string{path}))
	assert.Equal(t, "SELECT\n  a\nFROM\n  t\n", stdout.String())
}

func TestRun_WriteInPlace(t *testing.T) {
	path := writeSQL(t, "select a from t")
	run, stdout, _ := newRun("")
	run.Write = true

	require.NoError(t, run.Run(context.Background(), []string{path}))
	assert.Empty(t, stdout.String())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n  a\nFROM\n  t\n", string(content))
}

func TestRun_CheckReportsDrift(t *testing.T) {
	path := writeSQL(t, "select a from t")
	run, _, stderr := newRun("")
	run.Check = true

	err := run.Run(context.Background(), []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 file(s)")
	assert.Contains(t, stderr.String(), "query.sql")
}

func TestRun_CheckPassesOnFormattedFile(t *testing.T) {
	path := writeSQL(t, "SELECT\n  a\nFROM\n  t\n")
	run, _, _ := newRun("")
	run.Check = true

	assert.NoError(t, run.Run(context.Background(), []string{path}))
}

func TestRun_CheckDoesNotRewrite(t *testing.T) {
	const original = "select a from t"
	path := writeSQL(t, original)
	run, _, _ := newRun("")
	run.Check = true

	_ = run.Run(context.Background(), []string{path})

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(content))
}

func TestRun_WatchRequiresFiles(t *testing.T) {
	run, _, _ := newRun("")
	run.Watch = true
	assert.Error(t, run.Run(context.Background(), nil))
}
