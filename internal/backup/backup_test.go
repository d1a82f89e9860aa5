package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/daftar-app/daftar/internal/storage"
	"github.com/daftar-app/daftar/internal/store"
)

func testClock() time.Time {
	return time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
}

func newTestManager(t *testing.T) (*Manager, *store.Store, string) {
	t.Helper()
	dataDir := t.TempDir()
	st, err := store.Open(storage.NewFileStore(dataDir), testClock)
	if err != nil {
		t.Fatal(err)
	}
	return NewManager(st, dataDir), st, dataDir
}

func TestCreateBackup(t *testing.T) {
	m, st, dataDir := newTestManager(t)
	if err := st.SetUserName("Sara"); err != nil {
		t.Fatal(err)
	}

	path, err := m.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(path) != filepath.Join(dataDir, BackupDirName) {
		t.Errorf("backup written outside the backup dir: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Verify(data); err != nil {
		t.Errorf("snapshot does not verify: %v", err)
	}
}

func TestCreateBackupUniqueWithinMinute(t *testing.T) {
	m, _, _ := newTestManager(t)

	paths := map[string]bool{}
	for i := 0; i < 3; i++ {
		path, err := m.CreateBackup()
		if err != nil {
			t.Fatal(err)
		}
		if paths[path] {
			t.Fatalf("duplicate snapshot path %s", path)
		}
		paths[path] = true
	}
}

func TestListBackups(t *testing.T) {
	m, _, _ := newTestManager(t)

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 0 {
		t.Fatalf("fresh dir should list nothing, got %d", len(backups))
	}

	// Hand-placed files with known timestamps, plus noise to skip.
	writeSnapshot(t, m.GetBackupDir(), "daftar-20250308-0900.json")
	writeSnapshot(t, m.GetBackupDir(), "daftar-20250309-2100.json")
	writeSnapshot(t, m.GetBackupDir(), "daftar-20250309-2100-2.json")
	writeSnapshot(t, m.GetBackupDir(), "notes.txt")
	writeSnapshot(t, m.GetBackupDir(), "daftar-garbage.json")

	backups, err = m.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Error("snapshots should be sorted newest first")
		}
	}
	if filepath.Base(backups[len(backups)-1].Path) != "daftar-20250308-0900.json" {
		t.Errorf("oldest snapshot = %s", backups[len(backups)-1].Path)
	}
}

func TestRotation(t *testing.T) {
	m, _, _ := newTestManager(t)

	// 20 dated files, then one real backup triggers rotation.
	base := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 20; i++ {
		name := BackupFilePrefix + base.AddDate(0, 0, i).Format("20060102-1504") + BackupFileSuffix
		writeSnapshot(t, m.GetBackupDir(), name)
	}

	if _, err := m.CreateBackup(); err != nil {
		t.Fatal(err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != MaxBackups {
		t.Fatalf("expected %d snapshots after rotation, got %d", MaxBackups, len(backups))
	}
	// The newest survives, the oldest dated files are gone.
	oldest := backups[len(backups)-1].Timestamp
	if oldest.Before(base.AddDate(0, 0, 7)) {
		t.Errorf("rotation kept too-old snapshot %s", oldest)
	}
}

func TestRestoreBackup(t *testing.T) {
	m, st, _ := newTestManager(t)

	if err := st.SetUserName("Sara"); err != nil {
		t.Fatal(err)
	}
	if err := st.SetWater(5); err != nil {
		t.Fatal(err)
	}
	path, err := m.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	if err := st.SetUserName("Mallory"); err != nil {
		t.Fatal(err)
	}
	if err := st.SetWater(0); err != nil {
		t.Fatal(err)
	}

	if err := m.RestoreBackup(path); err != nil {
		t.Fatal(err)
	}
	if st.UserName() != "Sara" {
		t.Errorf("userName after restore = %q", st.UserName())
	}
	if st.TodayEntry().WaterCount != 5 {
		t.Errorf("water after restore = %d", st.TodayEntry().WaterCount)
	}

	// The restore took a safety snapshot of the Mallory state first.
	backups, err := m.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) < 2 {
		t.Fatalf("expected the original plus a safety snapshot, got %d", len(backups))
	}
}

func TestRestoreRejectsInvalidFile(t *testing.T) {
	m, st, _ := newTestManager(t)
	if err := st.SetUserName("Sara"); err != nil {
		t.Fatal(err)
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`{"userName":"Mallory"}`), 0600); err != nil {
		t.Fatal(err)
	}

	if err := m.RestoreBackup(bad); err == nil {
		t.Fatal("expected restore of a non-backup file to fail")
	}
	if err := m.RestoreBackup(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected restore of a missing file to fail")
	}
	if st.UserName() != "Sara" {
		t.Error("failed restore must not mutate the store")
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want string
	}{
		{"20250310-0930", true, "2025-03-10T09:30:00Z"},
		{"20250310-093045", true, "2025-03-10T09:30:45Z"},
		{"20250310-093045-3", true, "2025-03-10T09:30:45Z"},
		{"garbage", false, ""},
		{"20250310", false, ""},
	}
	for _, tt := range tests {
		got, ok := parseTimestamp(tt.in)
		if ok != tt.ok {
			t.Errorf("parseTimestamp(%q) ok = %v", tt.in, ok)
			continue
		}
		if ok && got.Format(time.RFC3339) != tt.want {
			t.Errorf("parseTimestamp(%q) = %s, want %s", tt.in, got.Format(time.RFC3339), tt.want)
		}
	}
}

func writeSnapshot(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(`{"habits":[]}`), 0600); err != nil {
		t.Fatal(err)
	}
}
