package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/daftar-app/daftar/internal/cli"
	"github.com/daftar-app/daftar/internal/config"
	"github.com/daftar-app/daftar/internal/constants"
	"github.com/daftar-app/daftar/internal/logger"
	"github.com/daftar-app/daftar/internal/notifier"
	"github.com/daftar-app/daftar/internal/storage"
	"github.com/daftar-app/daftar/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path"`
	Data    string `help:"Storage location override (directory, or a .db file for SQLite)." type:"path"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init  cli.InitCmd  `cmd:"" help:"Initialize the daftar config."`
	Name  cli.NameCmd  `cmd:"" help:"Set your display name."`
	Tui   cli.TuiCmd   `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Today cli.TodayCmd `cmd:"" help:"Show today's entry."`
	Day   cli.DayCmd   `cmd:"" help:"Show the entry for a date."`
	Month cli.MonthCmd `cmd:"" help:"Show a monthly summary."`

	Habit struct {
		Add  cli.HabitAddCmd  `cmd:"" help:"Add a new habit."`
		List cli.HabitListCmd `cmd:"" help:"List habits with today's status."`
		Done cli.HabitDoneCmd `cmd:"" help:"Mark a habit done (or undo) for today."`
	} `cmd:"" help:"Manage habits."`

	Azkar struct {
		List  cli.AzkarListCmd  `cmd:"" help:"List religious habits with today's counts."`
		Count cli.AzkarCountCmd `cmd:"" help:"Set or increment today's count for a habit."`
		Show  cli.AzkarShowCmd  `cmd:"" help:"Show a built-in azkar list and count a reading."`
	} `cmd:"" help:"Religious habits and azkar."`

	Mood    cli.MoodCmd    `cmd:"" help:"Record today's mood."`
	Water   cli.WaterCmd   `cmd:"" help:"Track water cups."`
	Task    cli.TaskCmd    `cmd:"" help:"Set or toggle one of today's three tasks."`
	Meal    cli.MealCmd    `cmd:"" help:"Log a meal."`
	Notes   cli.NotesCmd   `cmd:"" help:"Set today's notes."`
	Journal cli.JournalCmd `cmd:"" help:"Write today's journal."`

	Sport struct {
		Add    cli.SportAddCmd    `cmd:"" help:"Log an exercise."`
		Delete cli.SportDeleteCmd `cmd:"" help:"Remove an exercise from today."`
	} `cmd:"" help:"Exercise tracking."`

	Drink struct {
		Add    cli.DrinkAddCmd    `cmd:"" help:"Log a drink."`
		Delete cli.DrinkDeleteCmd `cmd:"" help:"Remove a drink from today."`
		List   cli.DrinkListCmd   `cmd:"" help:"Show drink presets."`
	} `cmd:"" help:"Drink tracking."`

	Weight  cli.WeightCmd  `cmd:"" help:"Record or show current weight."`
	Profile cli.ProfileCmd `cmd:"" help:"Set or show body metrics."`

	Period struct {
		Set    cli.PeriodSetCmd    `cmd:"" help:"Update cycle settings."`
		Status cli.PeriodStatusCmd `cmd:"" help:"Show the current cycle status."`
	} `cmd:"" help:"Cycle tracking."`

	Mask struct {
		List cli.MaskListCmd `cmd:"" help:"List self-care masks."`
		Add  cli.MaskAddCmd  `cmd:"" help:"Add a custom mask."`
	} `cmd:"" help:"Self-care masks."`

	Recipe struct {
		List cli.RecipeListCmd `cmd:"" help:"List recipes."`
		Add  cli.RecipeAddCmd  `cmd:"" help:"Add a custom recipe."`
	} `cmd:"" help:"Meal recipes."`

	Export cli.ExportCmd `cmd:"" help:"Export all data to a backup file."`
	Import cli.ImportCmd `cmd:"" help:"Import data from a backup file."`

	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a snapshot."`
		List    cli.BackupListCmd    `cmd:"" help:"List snapshots."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore a snapshot."`
	} `cmd:"" help:"Manage snapshots."`

	Advice struct {
		Calories cli.AdviceCaloriesCmd `cmd:"" help:"Estimate calories for a meal."`
		Vitamins cli.AdviceVitaminsCmd `cmd:"" help:"Get vitamin suggestions."`
		Henna    cli.AdviceHennaCmd    `cmd:"" help:"Get a natural henna recipe."`
		Diet     cli.AdviceDietCmd     `cmd:"" help:"Get a one-day diet plan."`
	} `cmd:"" help:"AI-assisted advice."`

	Key struct {
		Set    cli.KeySetCmd    `cmd:"" help:"Store the advisor API key."`
		Delete cli.KeyDeleteCmd `cmd:"" help:"Remove the advisor API key."`
	} `cmd:"" help:"Advisor API key."`

	Remind struct {
		Check cli.RemindCheckCmd `cmd:"" help:"Evaluate reminders once."`
		Watch cli.RemindWatchCmd `cmd:"" help:"Run the per-minute reminder loop."`
	} `cmd:"" help:"Habit reminders."`

	Doctor cli.DoctorCmd `cmd:"" help:"Run diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit & wellness journal"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	appCtx, cleanup, err := buildContext()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildContext() (*cli.Context, func(), error) {
	configPath := CLI.Config
	if configPath == "" {
		baseDir, err := config.DefaultBaseDir()
		if err != nil {
			return nil, nil, err
		}
		configPath = filepath.Join(baseDir, constants.AppName+".toml")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	dataPath := cfg.DataPath
	if CLI.Data != "" {
		dataPath = CLI.Data
	}

	// SQLite when the path names a database file, one json file per key
	// otherwise.
	var kv storage.KV
	var dataDir string
	if strings.HasSuffix(dataPath, ".db") {
		kv = storage.NewSQLiteStore(dataPath)
		dataDir = filepath.Dir(dataPath)
	} else {
		kv = storage.NewFileStore(dataPath)
		dataDir = dataPath
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: dataDir}); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	clock, err := buildClock(cfg.Timezone)
	if err != nil {
		return nil, nil, err
	}

	st, err := store.Open(kv, clock)
	if err != nil {
		kv.Close()
		return nil, nil, err
	}

	appCtx := &cli.Context{
		Store:    st,
		Config:   cfg,
		Notifier: notifier.New(),
		DataDir:  dataDir,
	}
	return appCtx, func() { kv.Close() }, nil
}

func buildClock(timezone string) (store.Clock, error) {
	if timezone == "" || timezone == "Local" {
		return time.Now, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return func() time.Time { return time.Now().In(loc) }, nil
}
