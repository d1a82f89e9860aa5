// Package cli implements the daftar subcommands. Every command runs
// against a Context carrying the opened store and its collaborators;
// nothing reaches for globals.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daftar-app/daftar/internal/config"
	"github.com/daftar-app/daftar/internal/notifier"
	"github.com/daftar-app/daftar/internal/store"
)

type Context struct {
	Store    *store.Store
	Config   *config.Config
	Notifier *notifier.Notifier
	// DataDir is the directory holding the storage files; backups live
	// under it.
	DataDir string
}

// requireName is the onboarding gate: everything except init, name and
// tui refuses to run until a user name is recorded.
func (ctx *Context) requireName() error {
	if !ctx.Store.Onboarded() {
		return fmt.Errorf("no name set yet, run: daftar name <your name>")
	}
	return nil
}

func checkbox(done bool) string {
	if done {
		return "✓"
	}
	return "○"
}

func parsePositiveInt(s, what string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s: %q", what, s)
	}
	return n, nil
}

// joinNonEmpty joins parts with sep, skipping empty strings.
func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
