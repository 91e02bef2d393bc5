package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/tempo/internal/invoice"
)

// DatePicker is a month grid with a movable cursor. Weeks start on Monday.
type DatePicker struct {
	cursor   time.Time
	selected time.Time
	today    time.Time
	keys     DatePickerKeyMap
}

func NewDatePicker(selected time.Time) DatePicker {
	p := DatePicker{
		today: invoice.DateOnly(time.Now()),
		keys:  DefaultDatePickerKeyMap,
	}
	p.Reset(selected)

	return p
}

// Reset moves the cursor to selected, or to today when nothing is selected yet.
func (p *DatePicker) Reset(selected time.Time) {
	p.selected = selected

	if selected.IsZero() {
		p.cursor = p.today
		return
	}

	p.cursor = invoice.DateOnly(selected)
}

func (p DatePicker) Cursor() time.Time { return p.cursor }

// Update moves the cursor. It reports true when the cursor day was picked.
func (p DatePicker) Update(msg tea.KeyMsg) (DatePicker, bool) {
	switch {
	case key.Matches(msg, p.keys.Left):
		p.cursor = p.cursor.AddDate(0, 0, -1)
	case key.Matches(msg, p.keys.Right):
		p.cursor = p.cursor.AddDate(0, 0, 1)
	case key.Matches(msg, p.keys.Up):
		p.cursor = p.cursor.AddDate(0, 0, -7)
	case key.Matches(msg, p.keys.Down):
		p.cursor = p.cursor.AddDate(0, 0, 7)
	case key.Matches(msg, p.keys.PrevMonth):
		p.cursor = invoice.AddMonths(p.cursor, -1)
	case key.Matches(msg, p.keys.NextMonth):
		p.cursor = invoice.AddMonths(p.cursor, 1)
	case key.Matches(msg, p.keys.Pick):
		p.selected = p.cursor
		return p, true
	}

	return p, false
}

func (p DatePicker) View() string {
	var b strings.Builder

	year, month, _ := p.cursor.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, p.cursor.Location())
	last := first.AddDate(0, 1, -1)

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %d", month, year)))
	b.WriteString("\n")

	for _, d := range []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"} {
		b.WriteString(mutedStyle.Inherit(dayStyle).Render(d))
	}

	b.WriteString("\n")

	// Monday on or before the first of the month.
	offset := (int(first.Weekday()) + 6) % 7
	start := first.AddDate(0, 0, -offset)

	for week := 0; week < 6; week++ {
		weekStart := start.AddDate(0, 0, week*7)
		if weekStart.After(last) {
			break
		}

		for dow := 0; dow < 7; dow++ {
			day := weekStart.AddDate(0, 0, dow)
			b.WriteString(p.styleFor(day, month).Render(fmt.Sprintf("%2d", day.Day())))
		}

		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render("←→ day  ↑↓ week  [ ] month  enter pick"))

	return b.String()
}

func (p DatePicker) styleFor(day time.Time, month time.Month) lipgloss.Style {
	switch {
	case sameDay(day, p.cursor):
		return cursorDay
	case sameDay(day, p.selected):
		return selectedDay
	case day.Month() != month:
		return otherMonthDay
	case sameDay(day, p.today):
		return todayDay
	default:
		return dayStyle
	}
}

func sameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}

	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}
