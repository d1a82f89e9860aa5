// Package tui is the interactive today-dashboard: tabs for the daily
// summary, habit checklist, azkar counters and cycle status, plus the
// first-run onboarding form.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/daftar-app/daftar/internal/store"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateHabits
	StateAzkar
	StateCycle
	StateOnboarding
)

// tabCount is the number of cycling tabs; onboarding sits outside the
// tab rotation.
const tabCount = 4

type Model struct {
	store *store.Store
	state SessionState
	keys  KeyMap
	help  help.Model

	habitCursor int
	azkarCursor int

	nameForm  *huh.Form
	nameValue string

	status   string
	quitting bool
	width    int
	height   int
}

func NewModel(st *store.Store) Model {
	m := Model{
		store: st,
		state: StateToday,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}

	if !st.Onboarded() {
		m.state = StateOnboarding
		m.nameForm = newNameForm(&m.nameValue)
	}

	return m
}

func newNameForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Welcome to daftar!").
				Description("What should we call you?").
				Value(value).
				Validate(func(s string) error {
					if s == "" {
						return errEmptyName
					}
					return nil
				}),
		),
	)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday:
		keys = append(keys, m.keys.Plus, m.keys.Minus, m.keys.Chia, m.keys.Mood)
	case StateHabits:
		keys = append(keys, m.keys.Up, m.keys.Down, m.keys.Enter)
	case StateAzkar:
		keys = append(keys, m.keys.Up, m.keys.Down, m.keys.Plus, m.keys.Minus)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{m.keys.Up, m.keys.Down, m.keys.Enter},
		{m.keys.Plus, m.keys.Minus, m.keys.Chia, m.keys.Mood},
	}
}

func (m Model) Init() tea.Cmd {
	if m.state == StateOnboarding {
		return m.nameForm.Init()
	}
	return nil
}
