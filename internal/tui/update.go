package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/daftar-app/daftar/internal/models"
)

var errEmptyName = errors.New("name cannot be empty")

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if m.state == StateOnboarding {
			return m.updateOnboarding(msg)
		}

		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
		default:
			return m.updateTab(msg)
		}
	}

	return m, nil
}

func (m Model) updateOnboarding(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.nameForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.nameForm = f
	}

	if m.nameForm.State == huh.StateCompleted {
		if err := m.store.SetUserName(m.nameValue); err != nil {
			m.status = err.Error()
			m.nameForm = newNameForm(&m.nameValue)
			return m, m.nameForm.Init()
		}
		m.state = StateToday
		return m, nil
	}
	if m.nameForm.State == huh.StateAborted {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m Model) updateTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateToday:
		m.updateToday(msg)
	case StateHabits:
		m.updateHabits(msg)
	case StateAzkar:
		m.updateAzkar(msg)
	}
	return m, nil
}

func (m *Model) updateToday(msg tea.KeyMsg) {
	entry := m.store.TodayEntry()
	switch {
	case key.Matches(msg, m.keys.Plus):
		m.report(m.store.SetWater(entry.WaterCount + 1))
	case key.Matches(msg, m.keys.Minus):
		m.report(m.store.SetWater(entry.WaterCount - 1))
	case key.Matches(msg, m.keys.Chia):
		m.report(m.store.ToggleChiaWater())
	case key.Matches(msg, m.keys.Mood):
		m.report(m.store.SetMood(nextMood(entry.Mood)))
	}
}

// nextMood cycles through the mood values, starting from unset.
func nextMood(current models.Mood) models.Mood {
	for i, mood := range models.Moods {
		if mood == current {
			return models.Moods[(i+1)%len(models.Moods)]
		}
	}
	return models.Moods[0]
}

func (m *Model) updateHabits(msg tea.KeyMsg) {
	habits := m.store.Habits()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.habitCursor > 0 {
			m.habitCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.habitCursor < len(habits)-1 {
			m.habitCursor++
		}
	case key.Matches(msg, m.keys.Enter):
		if m.habitCursor < len(habits) {
			habit := habits[m.habitCursor]
			log, ok := m.store.HabitLogForToday(habit.ID)
			done := ok && log.Done
			m.report(m.store.LogHabit(habit.ID, !done))
			if !done && m.store.AllHabitsDoneToday() {
				m.status = "All habits done today! 🎉"
			}
		}
	}
}

func (m *Model) updateAzkar(msg tea.KeyMsg) {
	habits := m.store.ReligiousHabits()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.azkarCursor > 0 {
			m.azkarCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.azkarCursor < len(habits)-1 {
			m.azkarCursor++
		}
	case key.Matches(msg, m.keys.Plus), key.Matches(msg, m.keys.Enter):
		m.adjustCount(habits, 1)
	case key.Matches(msg, m.keys.Minus):
		m.adjustCount(habits, -1)
	}
}

func (m *Model) adjustCount(habits []models.ReligiousHabit, delta int) {
	if m.azkarCursor >= len(habits) {
		return
	}
	habit := habits[m.azkarCursor]
	log, _ := m.store.ReligiousHabitLogForToday(habit.ID)
	m.report(m.store.SetReligiousCount(habit.ID, log.Count+delta))
}

// report surfaces a mutation error in the status line.
func (m *Model) report(err error) {
	if err != nil {
		m.status = err.Error()
	}
}
