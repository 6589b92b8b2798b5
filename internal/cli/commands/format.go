package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aka-chestnut/sql-formatter/pkg/format"
	"github.com/charmbracelet/lipgloss"
)

var (
	cleanStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	driftStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// FormatRun executes one formatting invocation over stdin or a file list.
type FormatRun struct {
	Options format.Options
	Write   bool
	Check   bool
	Watch   bool

	Logger *slog.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run formats the given files, or stdin when none are given.
func (r *FormatRun) Run(ctx context.Context, files []string) error {
	if len(files) == 0 {
		if r.Watch {
			return fmt.Errorf("--watch requires file arguments")
		}
		return r.formatStdin()
	}
	if r.Watch {
		r.Write = true
		if err := r.formatFiles(files); err != nil {
			return err
		}
		return r.watchFiles(ctx, files)
	}
	return r.formatFiles(files)
}

func (r *FormatRun) formatStdin() error {
	query, err := io.ReadAll(r.Stdin)
	if err != nil {
		return err
	}
	out, err := format.Format(string(query), &r.Options)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.Stdout, out)
	return err
}

func (r *FormatRun) formatFiles(files []string) error {
	drifted := 0
	for _, path := range files {
		changed, err := r.formatFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if r.Check {
			if changed {
				drifted++
				fmt.Fprintln(r.Stderr, driftStyle.Render("✗ "+path))
			} else {
				fmt.Fprintln(r.Stderr, cleanStyle.Render("✓ "+path))
			}
		}
	}
	if r.Check && drifted > 0 {
		return fmt.Errorf("%d file(s) would be reformatted", drifted)
	}
	return nil
}

// formatFile formats one file and reports whether its content would change.
// The file is rewritten only in write mode and only when it changed.
func (r *FormatRun) formatFile(path string) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	out, err := format.Format(string(src), &r.Options)
	if err != nil {
		return false, err
	}
	out += "\n"
	changed := out != string(src)

	switch {
	case r.Check:
		return changed, nil
	case r.Write:
		if !changed {
			return false, nil
		}
		info, err := os.Stat(path)
		if err != nil {
			return false, err
		}
		if err := os.WriteFile(path, []byte(out), info.Mode()); err != nil {
			return false, err
		}
		r.Logger.Debug("rewrote file", "path", path)
		return true, nil
	default:
		_, err = io.WriteString(r.Stdout, out)
		return changed, err
	}
}
