package cli

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daftar-app/daftar/internal/backup"
	"github.com/daftar-app/daftar/internal/logger"
	"github.com/daftar-app/daftar/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	// Automatic snapshot on dashboard startup. Skipped before
	// onboarding: there is nothing worth keeping yet.
	if ctx.Store.Onboarded() {
		mgr := backup.NewManager(ctx.Store, ctx.DataDir)
		if path, err := mgr.CreateBackup(); err != nil {
			logger.Warn("Automatic backup failed", "error", err)
		} else {
			logger.Debug("Automatic backup created", "path", filepath.Base(path))
		}
	}

	p := tea.NewProgram(tui.NewModel(ctx.Store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
