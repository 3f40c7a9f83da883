package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"smallbrave/internal/challenge"
	"smallbrave/internal/dateutil"
	"smallbrave/internal/tracker"
)

// smallbrave theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconSprout  = "🌱"
	IconFlame   = "🔥"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconChat    = "💬"
	IconNote    = "📝"
	IconChart   = "📊"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconGood    = "🙂"
	IconNeutral = "😐"
	IconUncomf  = "😬"
)

var (
	cPrimary = lipgloss.Color("208") // orange
	cAccent  = lipgloss.Color("173") // terracotta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // amber
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(cPrimary)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// StreakText renders the streak count with its flame, "3 days streak".
func StreakText(count int) string {
	unit := "days"
	if count == 1 {
		unit = "day"
	}
	return fmt.Sprintf("%s %s %s streak", IconFlame, Good.Render(fmt.Sprintf("%d", count)), unit)
}

func FeelingIcon(f tracker.Feeling) string {
	switch f {
	case tracker.FeelingGood:
		return IconGood
	case tracker.FeelingNeutral:
		return IconNeutral
	case tracker.FeelingUncomfortable:
		return IconUncomf
	default:
		return ""
	}
}

func FeelingText(f tracker.Feeling) string {
	switch f {
	case tracker.FeelingGood:
		return Good.Render(IconGood + " Good")
	case tracker.FeelingNeutral:
		return Warn.Render(IconNeutral + " Neutral")
	case tracker.FeelingUncomfortable:
		return Bad.Render(IconUncomf + " Uncomfortable")
	default:
		return Muted.Render("—")
	}
}

func CategoryText(c challenge.Category) string {
	return H2.Render(c.Label())
}

// FormatDay renders a day key relative to now: Today, Yesterday, or a
// short date (with year only when it differs from the current one).
func FormatDay(cal dateutil.Calendar, key string, now time.Time) string {
	today := cal.DayKey(now)
	switch key {
	case today:
		return "Today"
	case cal.PrevDayKey(today):
		return "Yesterday"
	}
	d, err := cal.ParseKey(key)
	if err != nil {
		return key
	}
	if d.Year() != now.In(cal.Location()).Year() {
		return d.Format("Jan 2, 2006")
	}
	return d.Format("Jan 2")
}

// FormatWeekRange renders week bounds as "Jan 7 - 13", or
// "Jan 28 - Feb 3" across a month boundary.
func FormatWeekRange(cal dateutil.Calendar, weekStart, weekEnd string) string {
	start, err1 := cal.ParseKey(weekStart)
	end, err2 := cal.ParseKey(weekEnd)
	if err1 != nil || err2 != nil {
		return weekStart + " - " + weekEnd
	}
	if start.Month() == end.Month() {
		return fmt.Sprintf("%s %d - %d", start.Format("Jan"), start.Day(), end.Day())
	}
	return fmt.Sprintf("%s %d - %s %d", start.Format("Jan"), start.Day(), end.Format("Jan"), end.Day())
}
