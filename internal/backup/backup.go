// Package backup manages JSON snapshots of the full persisted state:
// date-stamped export files with rotation, plus restore with a safety
// snapshot of the current state taken first.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/daftar-app/daftar/internal/logger"
	"github.com/daftar-app/daftar/internal/store"
)

const (
	// MaxBackups is the maximum number of snapshots to keep
	MaxBackups = 14
	// BackupDirName is the name of the backup directory
	BackupDirName = "backups"
	// BackupFilePrefix is the prefix for backup files
	BackupFilePrefix = "daftar-"
	// BackupFileSuffix is the suffix for backup files
	BackupFileSuffix = ".json"
)

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles snapshot operations against one store.
type Manager struct {
	store     *store.Store
	backupDir string
}

// NewManager creates a manager keeping its snapshots under
// <dataDir>/backups.
func NewManager(st *store.Store, dataDir string) *Manager {
	return &Manager{
		store:     st,
		backupDir: filepath.Join(dataDir, BackupDirName),
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

func (m *Manager) ensureBackupDir() error {
	return os.MkdirAll(m.backupDir, 0700)
}

// CreateBackup exports the current state into a new snapshot file and
// rotates old snapshots.
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

// createBackup writes a new snapshot. skipRotation prevents rotation
// from discarding the safety snapshot taken during a restore.
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := m.ensureBackupDir(); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	data, err := m.store.Export()
	if err != nil {
		return "", err
	}

	backupPath, err := m.uniquePath()
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(backupPath, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			// A failed rotation must not fail the backup itself.
			logger.Warn("Failed to rotate old backups", "error", err)
		}
	}

	return backupPath, nil
}

// uniquePath generates a timestamped snapshot filename, adding seconds
// and then a counter when snapshots land within the same minute.
func (m *Manager) uniquePath() (string, error) {
	timestamp := time.Now().Format("20060102-1504")
	backupPath := filepath.Join(m.backupDir, BackupFilePrefix+timestamp+BackupFileSuffix)
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return backupPath, nil
	}

	timestamp = time.Now().Format("20060102-150405")
	backupPath = filepath.Join(m.backupDir, BackupFilePrefix+timestamp+BackupFileSuffix)
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return backupPath, nil
	}

	for counter := 1; counter <= 100; counter++ {
		name := fmt.Sprintf("%s%s-%d%s", BackupFilePrefix, timestamp, counter, BackupFileSuffix)
		backupPath = filepath.Join(m.backupDir, name)
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			return backupPath, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique backup filename")
}

// ListBackups returns all available snapshots, newest first.
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, BackupFileSuffix) {
			continue
		}

		timestamp, ok := parseTimestamp(strings.TrimSuffix(strings.TrimPrefix(name, BackupFilePrefix), BackupFileSuffix))
		if !ok {
			continue
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

// parseTimestamp reads the timestamp portion of a snapshot filename,
// ignoring a trailing collision counter.
func parseTimestamp(s string) (time.Time, bool) {
	// A counter is the part after the last hyphen when it is all
	// digits and not a 4- or 6-digit time component.
	parts := strings.Split(s, "-")
	if len(parts) > 2 {
		last := parts[len(parts)-1]
		if len(last) != 4 && len(last) != 6 && isDigits(last) {
			s = strings.Join(parts[:len(parts)-1], "-")
		}
	}

	if t, err := time.Parse("20060102-1504", s); err == nil {
		return t, true
	}
	if t, err := time.Parse("20060102-150405", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

// rotateBackups removes old snapshots beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) <= MaxBackups {
		return nil
	}

	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}

	return nil
}

// RestoreBackup imports a snapshot file into the store. The current
// state is snapshotted first so a bad restore can be undone.
func (m *Manager) RestoreBackup(backupPath string) error {
	data, err := os.ReadFile(backupPath)
	if err != nil {
		return fmt.Errorf("backup file is not readable: %w", err)
	}

	if err := store.Verify(data); err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	safety, err := m.createBackup(true)
	if err != nil {
		return fmt.Errorf("failed to snapshot current state before restore: %w", err)
	}
	logger.Info("Created safety snapshot before restore", "path", filepath.Base(safety))

	return m.store.Import(data)
}
