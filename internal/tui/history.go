package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"smallbrave/internal/storage"
	"smallbrave/internal/tracker"
	"smallbrave/internal/ui"
)

// RunHistory opens a scrollable reflection browser.
func RunHistory(ctx context.Context, svc *tracker.Service, out io.Writer) error {
	m := historyModel{
		svc: svc,
		log: svc.Reflections(ctx),
		now: time.Now(),
	}
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}

type historyModel struct {
	svc *tracker.Service
	log []storage.Reflection
	now time.Time

	selected int
	height   int
}

func (m historyModel) Init() tea.Cmd {
	return nil
}

func (m historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.log)-1 {
				m.selected++
			}
		case "g":
			m.selected = 0
		case "G":
			if len(m.log) > 0 {
				m.selected = len(m.log) - 1
			}
		}
	}
	return m, nil
}

func (m historyModel) View() string {
	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconChat, "Your reflections") + "\n\n")

	if len(m.log) == 0 {
		b.WriteString(ui.Muted.Render("Nothing yet. Complete a challenge to start your story.") + "\n")
		b.WriteString("\n" + ui.Muted.Render("q quit") + "\n")
		return b.String()
	}

	rows := m.visibleRows()
	first, last := m.window(rows)
	cal := m.svc.Calendar()
	for i := first; i <= last; i++ {
		r := m.log[i]
		day := ui.FormatDay(cal, r.Date, m.now)
		line := fmt.Sprintf("%s  %s %s", ui.Muted.Render(day), ui.FeelingIcon(tracker.Feeling(r.Feeling)), r.ChallengeText)
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	sel := m.log[m.selected]
	body := ui.FeelingText(tracker.Feeling(sel.Feeling))
	if strings.TrimSpace(sel.Note) != "" {
		body += "\n“" + sel.Note + "”"
	}
	b.WriteString("\n" + ui.Panel.Render(body) + "\n")
	b.WriteString(ui.Muted.Render("↑/↓ move · g/G first/last · q quit") + "\n")
	return b.String()
}

// visibleRows returns how many list rows fit given the fixed chrome.
func (m historyModel) visibleRows() int {
	rows := m.height - 9
	if rows < 5 {
		rows = 5
	}
	return rows
}

func (m historyModel) window(rows int) (first, last int) {
	first = 0
	if m.selected >= rows {
		first = m.selected - rows + 1
	}
	last = first + rows - 1
	if last >= len(m.log) {
		last = len(m.log) - 1
	}
	return first, last
}
