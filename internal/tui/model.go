// Package tui provides the Bubble Tea guessing interface and a plain line-mode fallback.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/fhcli/internal/game"
)

// Model implements the Bubble Tea guessing UI for one round.
type Model struct {
	ctx     context.Context
	session *game.Session
	input   textinput.Model
	notice  string
	err     error
	quit    bool

	width  int
	height int
}

// NewModel constructs a guessing UI for session.
func NewModel(ctx context.Context, session *game.Session) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = placeholder(session.WordLength())
	// Digraph input such as "ae" for "ä" may be longer than the word.
	input.CharLimit = session.WordLength() * 2
	input.Width = tilesWidth(emptyTiles(session.WordLength()))
	input.Cursor.SetMode(cursor.CursorBlink)
	input.Focus()
	return &Model{
		ctx:     ctx,
		session: session,
		input:   input,
		notice:  remainingMessage(session),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.session.State() != game.Playing {
				return m, tea.Quit
			}
			return m, m.submit()
		}
	}
	if m.session.State() != game.Playing {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit() tea.Cmd {
	value := m.input.Value()
	m.input.Reset()
	_, err := m.session.Guess(m.ctx, value)
	if err == nil {
		m.notice = outcomeMessage(m.session)
		return nil
	}
	if m.session.State() == game.Won {
		// The round is decided; only recording the solution failed.
		zerolog.Ctx(m.ctx).Warn().Err(err).Msg("failed to record solved word")
		m.notice = outcomeMessage(m.session)
		return nil
	}
	notice, err := rejection(err)
	if err != nil {
		m.err = err
		return tea.Quit
	}
	m.notice = notice
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		titleStyle.Render(welcomeMessage),
		"",
		renderBoard(m.session),
		"",
	}
	if m.session.State() == game.Playing {
		sections = append(sections, m.input.View())
	}
	if m.notice != "" {
		style := footerStyle
		if m.session.State() == game.Playing && m.notice != remainingMessage(m.session) {
			style = noticeStyle
		}
		sections = append(sections, style.Render(m.notice))
	}
	content := strings.Join(sections, "\n")
	help := footerStyle.Render(m.helpLine())
	if m.width == 0 || m.height == 0 {
		return content + "\n" + help
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, help)
	return body + "\n" + footerLine
}

func (m *Model) helpLine() string {
	if m.session.State() != game.Playing {
		return "enter: quit"
	}
	return fmt.Sprintf("Guess %d/%d  enter: submit  esc: quit", len(m.session.Guesses())+1, m.session.MaxGuesses())
}

// Err returns the storage error that ended the UI, if any.
func (m *Model) Err() error {
	return m.err
}

// Run shows the guessing UI until the round ends or the player quits, then
// writes the outcome line to stdout.
func Run(ctx context.Context, session *game.Session) error {
	model := NewModel(ctx, session)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if model.err != nil {
		return model.err
	}
	if session.State() == game.Playing {
		return nil
	}
	for _, g := range session.Guesses() {
		fmt.Println(renderTiles(guessTiles(g)))
	}
	fmt.Println(outcomeMessage(session))
	return nil
}
