// Package tui provides a bubbletea front end for the game's prompts.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// promptModel asks a single question and records the answer
type promptModel struct {
	question  string
	input     textinput.Model
	answer    string
	submitted bool
	cancelled bool
	styles    promptStyles
}

type promptStyles struct {
	Question lipgloss.Style
	Help     lipgloss.Style
}

func newPromptModel(question string) promptModel {
	ti := textinput.New()
	ti.Placeholder = "type an answer and press enter"
	ti.CharLimit = 100
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "
	ti.Focus()

	return promptModel{
		question: strings.TrimSpace(question),
		input:    ti,
		styles: promptStyles{
			Question: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
			Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		},
	}
}

// Init initializes the prompt model
func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.answer = strings.TrimSpace(m.input.Value())
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the question and input line
func (m promptModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	return fmt.Sprintf("%s\n%s\n%s\n",
		m.styles.Question.Render(m.question),
		m.input.View(),
		m.styles.Help.Render("enter to submit • esc to skip"),
	)
}

// Prompter runs a small bubbletea program for every question. Pressing esc
// or ctrl+c answers with an empty string.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	logger *log.Logger
}

// NewPrompter creates a prompter reading keys from in and drawing to out
func NewPrompter(in io.Reader, out io.Writer, logger *log.Logger) *Prompter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Prompter{in: in, out: out, logger: logger.WithPrefix("tui")}
}

// Prompt asks question and returns the typed answer
func (p *Prompter) Prompt(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	program := tea.NewProgram(newPromptModel(question),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
		tea.WithContext(ctx),
	)
	final, err := program.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if errors.Is(err, tea.ErrProgramKilled) {
			return "", context.Canceled
		}
		return "", fmt.Errorf("run prompt: %w", err)
	}

	m, ok := final.(promptModel)
	if !ok {
		return "", fmt.Errorf("unexpected prompt model %T", final)
	}
	if m.cancelled {
		p.logger.Debug("Prompt cancelled", "question", m.question)
		return "", nil
	}
	return m.answer, nil
}
