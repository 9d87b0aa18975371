package status

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "botanist/internal/modules/session/dto"
	apperrors "botanist/internal/platform/errors"
	"botanist/internal/ui/render"
	"botanist/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the read-only slice of the session use-case this view needs.
type Port interface {
	Status(ctx context.Context) (sessiondto.StatusOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type tickMsg time.Time

type loadedMsg struct {
	out sessiondto.StatusOutput
	err error
}

// markerChangedMsg arrives when the marker file is created, rewritten or removed.
type markerChangedMsg struct{}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Refresh}, {k.Help, k.Quit}}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model redraws the active session every second and whenever the marker
// changes on disk. It never mutates the session.
type Model struct {
	port    Port
	changes <-chan struct{}
	keys    keyMap
	help    help.Model
	status  sessiondto.StatusOutput
	active  bool
	err     error
	width   int
}

// New builds the view. changes may be nil when no watcher is running.
func New(port Port, changes <-chan struct{}) Model {
	return Model{port: port, changes: changes, keys: defaultKeys(), help: help.New()}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), tick(), m.waitForChange())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadCmd()
		}

	case tickMsg:
		return m, tea.Batch(m.loadCmd(), tick())

	case markerChangedMsg:
		return m, tea.Batch(m.loadCmd(), m.waitForChange())

	case loadedMsg:
		m.err = nil
		switch {
		case msg.err == nil:
			m.active = true
			m.status = msg.out
		case errors.Is(msg.err, apperrors.ErrNotStarted):
			m.active = false
			m.status = sessiondto.StatusOutput{}
		default:
			m.err = msg.err
		}
	}
	return m, nil
}

func (m Model) View() string {
	var body string
	switch {
	case m.err != nil:
		body = theme.Danger.Render("Error: ") + m.err.Error()
	case !m.active:
		body = theme.Muted.Render("No active session. Run `botanist start` in another terminal.")
	default:
		body = render.Status(m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, theme.Pane.Render(body), m.help.View(m.keys))
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Status(context.Background())
		return loadedMsg{out: out, err: err}
	}
}

func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	changes := m.changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return markerChangedMsg{}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}
