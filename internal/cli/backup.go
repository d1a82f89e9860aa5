package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/daftar-app/daftar/internal/backup"
)

type ExportCmd struct {
	Out string `short:"o" help:"Output file. Defaults to daftar-backup-<today>.json in the current directory."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	data, err := ctx.Store.Export()
	if err != nil {
		return err
	}

	out := c.Out
	if out == "" {
		out = fmt.Sprintf("daftar-backup-%s.json", ctx.Store.Today())
	}
	if err := os.WriteFile(out, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	fmt.Printf("Exported to: %s\n", out)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Backup file to import."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	if err := ctx.Store.Import(data); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Imported: %s\n", filepath.Base(c.File))
	return nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store, ctx.DataDir)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Printf("✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store, ctx.DataDir)
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.GetBackupDir())
		return nil
	}

	fmt.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), backup.MaxBackups)
	for _, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		timestamp := b.Timestamp.Format("2006-01-02 15:04:05")
		fmt.Printf("  %s  %s  (%.1f KB)\n", timestamp, filepath.Base(b.Path), sizeKB)
	}
	fmt.Printf("\nBackup directory: %s\n", mgr.GetBackupDir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store, ctx.DataDir)

	backupPath := c.BackupFile
	if !filepath.IsAbs(backupPath) {
		// Bare filenames resolve against the backup directory first.
		possible := filepath.Join(mgr.GetBackupDir(), c.BackupFile)
		if _, err := os.Stat(possible); err == nil {
			backupPath = possible
		}
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Printf("✓ Restored from: %s\n", filepath.Base(backupPath))
	return nil
}
