package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/daftar-app/daftar/internal/constants"
	"github.com/daftar-app/daftar/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == StateOnboarding {
		return docStyle.Render(m.nameForm.View())
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateHabits:
		content = m.viewHabits()
	case StateAzkar:
		content = m.viewAzkar()
	case StateCycle:
		content = m.viewCycle()
	}

	sections := []string{m.viewTabs(), content}
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Habits", "Azkar", "Cycle"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	entry := m.store.TodayEntry()
	var b strings.Builder

	greeting := fmt.Sprintf("Hi %s — %s", m.store.UserName(), m.store.Today())
	b.WriteString(titleStyle.Render(greeting) + "\n\n")

	mood := string(entry.Mood)
	if mood == "" {
		mood = faintStyle.Render("not set (press m)")
	}
	b.WriteString("Mood: " + mood + "\n")

	water := waterGauge(entry.WaterCount, constants.DefaultWaterGoal)
	if entry.ChiaWater {
		water += " +chia"
	}
	b.WriteString("Water: " + water + "\n\n")

	b.WriteString("Tasks:\n")
	for _, t := range entry.Tasks {
		text := t.Text
		if text == "" {
			text = faintStyle.Render("(empty)")
		}
		line := fmt.Sprintf("  %s %s", checkboxGlyph(t.Done), text)
		if t.Done {
			line = doneStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	if len(entry.Exercises) > 0 {
		b.WriteString("\nExercises:\n")
		for _, ex := range entry.Exercises {
			b.WriteString(fmt.Sprintf("  %s — %d min\n", ex.Name, ex.DurationMin))
		}
	}
	if len(entry.Drinks) > 0 {
		b.WriteString("\nDrinks:\n")
		for _, d := range entry.Drinks {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", d.Timestamp, d.Icon, d.Name))
		}
	}

	return docStyle.Render(b.String())
}

func waterGauge(count, goal int) string {
	filled := count
	if filled > goal {
		filled = goal
	}
	gauge := strings.Repeat("💧", filled) + strings.Repeat("·", goal-filled)
	return fmt.Sprintf("%s %d/%d", gauge, count, goal)
}

func checkboxGlyph(done bool) string {
	if done {
		return "✓"
	}
	return "○"
}

func (m Model) viewHabits() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Habits") + "\n\n")

	for i, habit := range m.store.Habits() {
		log, ok := m.store.HabitLogForToday(habit.ID)
		done := ok && log.Done

		line := fmt.Sprintf("%s %s %s", checkboxGlyph(done), habit.Icon, habit.Name)
		if habit.Goal != "" {
			line += faintStyle.Render(" — " + habit.Goal)
		}

		switch {
		case i == m.habitCursor:
			line = selectedStyle.Render("> " + line)
		case done:
			line = "  " + doneStyle.Render(line)
		default:
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) viewAzkar() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Azkar & prayers") + "\n\n")

	for i, habit := range m.store.ReligiousHabits() {
		log, _ := m.store.ReligiousHabitLogForToday(habit.ID)

		line := fmt.Sprintf("%s %s", habit.Icon, habit.Name)
		if habit.HasCounter || log.Count > 0 {
			line += fmt.Sprintf("  [%d]", log.Count)
		}

		if i == m.azkarCursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) viewCycle() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Cycle") + "\n\n")

	status := m.store.CycleStatus()
	if status.Phase == models.PhaseUnknown {
		b.WriteString(faintStyle.Render("No period start recorded yet.\nSet one with: daftar period set --start YYYY-MM-DD\n"))
		return docStyle.Render(b.String())
	}

	b.WriteString(fmt.Sprintf("Cycle day %d — %s phase\n", status.CycleDay, status.Phase))
	b.WriteString(fmt.Sprintf("Next period: %s (in %d days)\n", status.NextPeriodStart, status.DaysUntilNext))
	b.WriteString(fmt.Sprintf("Estimated ovulation: %s\n", status.OvulationDate))

	period := m.store.PeriodData()
	b.WriteString(faintStyle.Render(fmt.Sprintf("\ncycle %d days, period %d days\n", period.CycleLength, period.PeriodLength)))

	return docStyle.Render(b.String())
}
