package cli

import (
	"fmt"
	"time"

	"github.com/daftar-app/daftar/internal/backup"
	"github.com/daftar-app/daftar/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable (the store loaded, probe a write-free read)
	if _, err := ctx.Store.Export(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
	}

	// Check 2: data consistency
	result := validation.New().ValidateAll(ctx.Store)
	if result.HasConflicts() {
		fmt.Printf("⚠ Data validation: %d conflict(s)\n", len(result.Conflicts))
		for _, conflict := range result.Conflicts {
			fmt.Printf("   - %s\n", conflict.Description)
		}
	} else {
		fmt.Printf("✓ Data validation: OK\n")
	}

	// Check 3: backups present (warning only)
	backups, err := backup.NewManager(ctx.Store, ctx.DataDir).ListBackups()
	switch {
	case err != nil:
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	case len(backups) == 0:
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   no backups yet, run: daftar backup create\n")
	default:
		fmt.Printf("✓ Backups present: OK (%d, newest %s)\n",
			len(backups), backups[0].Timestamp.Format("2006-01-02 15:04"))
	}

	// Check 4: clock/timezone sanity
	if err := checkClockTimezone(ctx); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 5: notifier reachable (warning only)
	if ctx.Config.Notify.Enabled {
		if ctx.Notifier.Available() {
			fmt.Printf("✓ Notifier reachable: OK\n")
		} else {
			fmt.Printf("⚠ Notifier reachable: WARNING\n")
			fmt.Printf("   tray application not running; reminders will be skipped\n")
		}
	} else {
		fmt.Printf("⊘ Notifier: disabled in config\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkClockTimezone(ctx *Context) error {
	if ctx.Config.Timezone != "" && ctx.Config.Timezone != "Local" {
		if _, err := time.LoadLocation(ctx.Config.Timezone); err != nil {
			return fmt.Errorf("configured timezone %q is invalid: %w", ctx.Config.Timezone, err)
		}
	}

	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	return nil
}
