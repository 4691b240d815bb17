package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quorumlabs/boardroom/internal/event"
)

// Layout offsets for the viewport: header, status line, ranking line, help
// line, and the transcript border.
const chromeHeight = 6

// eventMsg delivers one bus event to the model.
type eventMsg struct{ event event.Event }

// sessionErrMsg reports that the background session stopped with an error.
type sessionErrMsg struct{ err error }

// Model is the bubbletea model for the session watcher.
type Model struct {
	sessionID  string
	topic      string
	totalTurns int

	turn     int
	phase    string
	ranking  []string
	lines    []string
	maxLines int
	done     bool
	err      error

	msgs <-chan tea.Msg

	spin  spinner.Model
	vp    viewport.Model
	ready bool
}

// NewModel creates a watcher model that consumes messages from msgs.
// maxLines bounds how much transcript the viewport retains.
func NewModel(msgs <-chan tea.Msg, maxLines int) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	if maxLines < 1 {
		maxLines = 500
	}
	return Model{
		msgs:     msgs,
		maxLines: maxLines,
		spin:     s,
	}
}

// Init starts the spinner and the event pump.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, waitForMsg(m.msgs))
}

// waitForMsg relays the next message from the channel into the program.
// A closed channel ends the pump.
func waitForMsg(msgs <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-msgs
		if !ok {
			return nil
		}
		return msg
	}
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		if !m.ready {
			m.vp = viewport.New(msg.Width-2, msg.Height-chromeHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width - 2
			m.vp.Height = msg.Height - chromeHeight
		}
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case eventMsg:
		m.applyEvent(msg.event)
		return m, waitForMsg(m.msgs)

	case sessionErrMsg:
		m.err = msg.err
		m.done = true
		return m, waitForMsg(m.msgs)
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// applyEvent folds one bus event into the model state.
func (m *Model) applyEvent(e event.Event) {
	switch e := e.(type) {
	case event.SessionStartedEvent:
		m.sessionID = e.SessionID
		m.topic = e.Topic
		m.totalTurns = e.TotalTurns

	case event.PhaseChangedEvent:
		m.phase = e.Phase
		m.appendLine(turnStyle.Render(fmt.Sprintf("── phase: %s ──", e.Phase)))

	case event.SpeakerSelectedEvent:
		m.turn = e.Turn
		m.ranking = e.Ranking

	case event.MessageRecordedEvent:
		prefix := turnStyle.Render(fmt.Sprintf("[%d]", e.Turn))
		m.appendLine(fmt.Sprintf("%s %s %s", prefix, speakerStyle.Render(e.AgentID+":"), e.Body))

	case event.MentionDetectedEvent:
		m.appendLine(mentionStyle.Render("    mentions: " + strings.Join(e.AgentIDs, ", ")))

	case event.SessionCompletedEvent:
		m.done = true
	}

	m.refreshViewport()
}

// appendLine adds a transcript line, trimming to the retention limit.
func (m *Model) appendLine(line string) {
	m.lines = append(m.lines, line)
	if len(m.lines) > m.maxLines {
		m.lines = m.lines[len(m.lines)-m.maxLines:]
	}
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.vp.SetContent(strings.Join(m.lines, "\n"))
	m.vp.GotoBottom()
}

// View renders the watcher.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("boardroom"))
	if m.topic != "" {
		b.WriteString("  ")
		b.WriteString(topicStyle.Render(m.topic))
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("session failed: " + m.err.Error()))
	case m.done:
		b.WriteString(doneStyle.Render(fmt.Sprintf("session complete (%d turns)", m.totalTurns)))
	default:
		b.WriteString(fmt.Sprintf("%s turn %d/%d %s", m.spin.View(), m.turn, m.totalTurns, phaseBadge(m.phase)))
	}
	b.WriteString("\n")

	if m.ready {
		b.WriteString(transcriptStyle.Render(m.vp.View()))
	} else {
		b.WriteString(strings.Join(m.lines, "\n"))
	}
	b.WriteString("\n")

	if len(m.ranking) > 0 {
		b.WriteString(rankingStyle.Render("next up: " + strings.Join(m.ranking, " > ")))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("q: quit  up/down: scroll"))
	return b.String()
}
