package tui

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"smallbrave/internal/tracker"
	"smallbrave/internal/ui"
)

// RunReflect drives the interactive completion flow: feeling pick,
// optional note, then one streak transition plus one log append.
func RunReflect(ctx context.Context, svc *tracker.Service, out io.Writer) error {
	m := newReflectModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}

type reflectStep int

const (
	stepFeeling reflectStep = iota
	stepNote
	stepSaving
	stepDone
)

type savedMsg struct {
	complete *tracker.CompleteResult
	saved    *tracker.SaveResult
}

type feelingOption struct {
	feeling tracker.Feeling
	label   string
}

type reflectModel struct {
	ctx context.Context
	svc *tracker.Service

	view     tracker.TodayView
	options  []feelingOption
	selected int
	note     textinput.Model

	step     reflectStep
	complete *tracker.CompleteResult
	saved    *tracker.SaveResult
}

func newReflectModel(ctx context.Context, svc *tracker.Service) reflectModel {
	note := textinput.New()
	note.Placeholder = "What happened? (optional, enter to save)"
	note.CharLimit = 280
	note.Width = 60

	return reflectModel{
		ctx:  ctx,
		svc:  svc,
		view: svc.Today(ctx, time.Now()),
		options: []feelingOption{
			{tracker.FeelingGood, ui.IconGood + "  It felt good"},
			{tracker.FeelingNeutral, ui.IconNeutral + "  Neutral"},
			{tracker.FeelingUncomfortable, ui.IconUncomf + "  Uncomfortable, but I did it"},
			{tracker.FeelingNone, "   Skip this question"},
		},
		note: note,
	}
}

func (m reflectModel) Init() tea.Cmd {
	return nil
}

func (m reflectModel) saveCmd() tea.Cmd {
	feeling := m.options[m.selected].feeling
	note := strings.TrimSpace(m.note.Value())
	return func() tea.Msg {
		now := time.Now()
		complete := m.svc.CompleteToday(m.ctx, now)
		saved := m.svc.SaveReflection(m.ctx, now, tracker.ReflectionInput{Feeling: feeling, Note: note})
		return savedMsg{complete: complete, saved: saved}
	}
}

func (m reflectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		m.complete = msg.complete
		m.saved = msg.saved
		m.step = stepDone
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
		switch m.step {
		case stepFeeling:
			switch msg.String() {
			case "q", "esc":
				return m, tea.Quit
			case "up", "k":
				if m.selected > 0 {
					m.selected--
				}
			case "down", "j":
				if m.selected < len(m.options)-1 {
					m.selected++
				}
			case "enter":
				m.step = stepNote
				return m, m.note.Focus()
			}
			return m, nil
		case stepNote:
			switch msg.String() {
			case "esc":
				m.note.Blur()
				m.step = stepFeeling
				return m, nil
			case "enter":
				m.step = stepSaving
				return m, m.saveCmd()
			}
			var cmd tea.Cmd
			m.note, cmd = m.note.Update(msg)
			return m, cmd
		case stepDone:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m reflectModel) View() string {
	var b strings.Builder

	b.WriteString(ui.Heading(ui.IconSprout, "Small Brave Moments") + "\n")
	b.WriteString(ui.Muted.Render(m.view.Day) + "\n\n")
	b.WriteString(ui.Panel.Render(ui.CategoryText(m.view.Challenge.Category)+"\n\n"+m.view.Challenge.Text) + "\n\n")

	switch m.step {
	case stepFeeling:
		if m.view.AlreadyDone {
			b.WriteString(ui.Muted.Render("Already completed today — this adds another reflection.") + "\n\n")
		}
		b.WriteString(ui.H2.Render("How did it feel?") + "\n")
		for i, opt := range m.options {
			line := "  " + opt.label
			if i == m.selected {
				line = ui.SelectedRow.Render("> " + opt.label)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n" + ui.Muted.Render("↑/↓ choose · enter next · q quit") + "\n")
	case stepNote:
		b.WriteString(ui.H2.Render("Anything to remember?") + "\n")
		b.WriteString(m.note.View() + "\n\n")
		b.WriteString(ui.Muted.Render("enter save · esc back") + "\n")
	case stepSaving:
		b.WriteString(ui.Muted.Render("Saving…") + "\n")
	case stepDone:
		if m.complete.AlreadyDone {
			b.WriteString(ui.Good.Render(ui.IconDone+" Reflection added.") + "\n")
		} else {
			b.WriteString(ui.Good.Render(ui.IconDone+" Completed!") + "  " + ui.StreakText(m.complete.Streak.Count) + "\n")
		}
		for _, w := range []string{m.complete.Warning, m.saved.Warning} {
			if w != "" {
				b.WriteString(ui.Warn.Render(ui.IconWarn+" "+w) + "\n")
			}
		}
		b.WriteString("\n" + ui.Muted.Render("press any key to close") + "\n")
	}

	return b.String()
}
