package console

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	yellow     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimYellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	promptText = lipgloss.NewStyle().Bold(true)
)

// pageMsg starts a new page.
type pageMsg struct{ text string }

// textMsg appends to the current page.
type textMsg struct{ text string }

// askMsg shows a prompt; the typed line is sent on reply.
type askMsg struct {
	prompt string
	reply  chan<- string
}

// Screen is the bubbletea model behind the interactive stand. It shows
// whatever the Console sends and collects one line of input per question.
type Screen struct {
	body   string
	prompt string
	input  string
	reply  chan<- string
	height int
}

func NewScreen() Screen { return Screen{} }

func (s Screen) Init() tea.Cmd { return nil }

func (s Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.height = msg.Height
	case pageMsg:
		s.body = msg.text
	case textMsg:
		s.body += msg.text
	case askMsg:
		s.prompt, s.input, s.reply = msg.prompt, "", msg.reply
	case tea.KeyMsg:
		return s.updateKey(msg)
	}
	return s, nil
}

func (s Screen) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+d":
		return s, tea.Quit
	}
	if s.reply == nil {
		return s, nil
	}
	switch msg.Type {
	case tea.KeyEnter, tea.KeyCtrlJ:
		s.body += s.prompt + s.input + "\n"
		s.reply <- s.input
		s.prompt, s.input, s.reply = "", "", nil
	case tea.KeyBackspace:
		if r := []rune(s.input); len(r) > 0 {
			s.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		s.input += " "
	case tea.KeyRunes:
		s.input += string(msg.Runes)
	}
	return s, nil
}

func (s Screen) View() string {
	view := s.body
	if s.reply != nil {
		view += promptText.Render(s.prompt) + s.input + yellow.Render("█")
	}
	if s.height > 0 {
		lines := strings.Split(view, "\n")
		if len(lines) > s.height {
			view = strings.Join(lines[len(lines)-s.height:], "\n")
		}
	}
	return view
}
