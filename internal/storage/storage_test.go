package storage

import (
	"path/filepath"
	"sort"
	"testing"
)

// newProviders returns each KV implementation backed by a temp
// location. Both must satisfy the same behavioral contract.
func newProviders(t *testing.T) map[string]KV {
	t.Helper()
	return map[string]KV{
		"file":   NewFileStore(t.TempDir()),
		"sqlite": NewSQLiteStore(filepath.Join(t.TempDir(), "daftar.db")),
	}
}

func TestKVRoundTrip(t *testing.T) {
	for name, kv := range newProviders(t) {
		t.Run(name, func(t *testing.T) {
			defer kv.Close()

			if _, ok, err := kv.Get("habits"); ok || err != nil {
				t.Fatalf("missing key: ok=%v err=%v", ok, err)
			}

			if err := kv.Set("habits", []byte(`[{"id":"h1"}]`)); err != nil {
				t.Fatal(err)
			}
			data, ok, err := kv.Get("habits")
			if err != nil || !ok {
				t.Fatalf("get after set: ok=%v err=%v", ok, err)
			}
			if string(data) != `[{"id":"h1"}]` {
				t.Errorf("value = %q", data)
			}

			// Overwrite.
			if err := kv.Set("habits", []byte(`[]`)); err != nil {
				t.Fatal(err)
			}
			data, _, _ = kv.Get("habits")
			if string(data) != `[]` {
				t.Errorf("overwritten value = %q", data)
			}
		})
	}
}

func TestKVDelete(t *testing.T) {
	for name, kv := range newProviders(t) {
		t.Run(name, func(t *testing.T) {
			defer kv.Close()

			if err := kv.Set("userName", []byte("Sara")); err != nil {
				t.Fatal(err)
			}
			if err := kv.Delete("userName"); err != nil {
				t.Fatal(err)
			}
			if _, ok, _ := kv.Get("userName"); ok {
				t.Error("key should be gone after delete")
			}

			// Deleting a missing key is not an error.
			if err := kv.Delete("userName"); err != nil {
				t.Errorf("delete of missing key: %v", err)
			}
		})
	}
}

func TestKVKeys(t *testing.T) {
	for name, kv := range newProviders(t) {
		t.Run(name, func(t *testing.T) {
			defer kv.Close()

			keys, err := kv.Keys()
			if err != nil {
				t.Fatal(err)
			}
			if len(keys) != 0 {
				t.Fatalf("fresh provider should have no keys, got %v", keys)
			}

			for _, key := range []string{KeyHabits, KeyDailyEntries, KeyUserName} {
				if err := kv.Set(key, []byte("x")); err != nil {
					t.Fatal(err)
				}
			}

			keys, err = kv.Keys()
			if err != nil {
				t.Fatal(err)
			}
			sort.Strings(keys)
			want := []string{KeyDailyEntries, KeyHabits, KeyUserName}
			sort.Strings(want)
			if len(keys) != len(want) {
				t.Fatalf("keys = %v, want %v", keys, want)
			}
			for i := range want {
				if keys[i] != want[i] {
					t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
				}
			}
		})
	}
}

func TestKVBinaryValues(t *testing.T) {
	for name, kv := range newProviders(t) {
		t.Run(name, func(t *testing.T) {
			defer kv.Close()

			value := []byte{0x00, 0xff, 0x10, 0x00}
			if err := kv.Set("blob", value); err != nil {
				t.Fatal(err)
			}
			data, ok, err := kv.Get("blob")
			if err != nil || !ok {
				t.Fatal("blob not stored")
			}
			if len(data) != len(value) {
				t.Errorf("blob = %v", data)
			}
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daftar.db")

	kv := NewSQLiteStore(path)
	if err := kv.Set("habits", []byte("[]")); err != nil {
		t.Fatal(err)
	}
	if err := kv.Close(); err != nil {
		t.Fatal(err)
	}

	reopened := NewSQLiteStore(path)
	defer reopened.Close()
	data, ok, err := reopened.Get("habits")
	if err != nil || !ok || string(data) != "[]" {
		t.Errorf("value lost across reopen: ok=%v err=%v data=%q", ok, err, data)
	}
}
