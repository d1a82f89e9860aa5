// Package storage provides the flat key/value persistence layer. Every
// top-level collection is stored as one independently written
// JSON-encoded value under a well-known key.
package storage

// Storage keys for the persisted collections. These names are an
// external contract: backup documents and older data use them verbatim.
const (
	KeyUserName          = "userName"
	KeyHabits            = "habits"
	KeyDailyEntries      = "dailyEntries"
	KeyHabitLogs         = "habitLogs"
	KeyCurrentWeight     = "currentWeight"
	KeyTargetWeight      = "targetWeight"
	KeyHeight            = "height"
	KeyAge               = "age"
	KeyActivityLevel     = "activityLevel"
	KeyReligiousHabits   = "religiousHabits"
	KeyReligiousLogs     = "religiousHabitLogs"
	KeyPeriodData        = "periodData"
	KeyCustomMasks       = "customMasks"
	KeyCustomRecipes     = "customRecipes"
)

// AllKeys lists every storage key the store reads or writes.
var AllKeys = []string{
	KeyUserName,
	KeyHabits,
	KeyDailyEntries,
	KeyHabitLogs,
	KeyCurrentWeight,
	KeyTargetWeight,
	KeyHeight,
	KeyAge,
	KeyActivityLevel,
	KeyReligiousHabits,
	KeyReligiousLogs,
	KeyPeriodData,
	KeyCustomMasks,
	KeyCustomRecipes,
}

type KV interface {
	// Get returns the raw value for key. The second return is false
	// when the key has never been written.
	Get(key string) ([]byte, bool, error)
	// Set writes the raw value for key, replacing any previous value.
	Set(key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
	// Keys returns every key currently stored.
	Keys() ([]string, error)
	Close() error
	// Path returns the filesystem location backing the provider.
	Path() string
}
