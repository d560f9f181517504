package console

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func update(t *testing.T, s Screen, msgs ...tea.Msg) Screen {
	t.Helper()
	for _, msg := range msgs {
		m, _ := s.Update(msg)
		s = m.(Screen)
	}
	return s
}

func TestScreenAnswersQuestion(t *testing.T) {
	reply := make(chan string, 1)
	s := update(t, NewScreen(),
		pageMsg{text: "Week #1\n"},
		textMsg{text: "  Purchased 1 box(es) of cups\n"},
		askMsg{prompt: "How many bags of lemons to buy? ", reply: reply},
		runes("1"), runes("3"), tea.KeyMsg{Type: tea.KeyBackspace}, runes("2"),
	)
	if !strings.Contains(s.View(), "How many bags of lemons to buy? 12") {
		t.Fatalf("expected the typed answer in the view:\n%s", s.View())
	}

	s = update(t, s, tea.KeyMsg{Type: tea.KeyEnter})
	select {
	case got := <-reply:
		if got != "12" {
			t.Fatalf("expected 12, got %q", got)
		}
	default:
		t.Fatal("expected an answer after enter")
	}
	if !strings.Contains(s.View(), "Purchased 1 box(es) of cups\nHow many bags of lemons to buy? 12\n") {
		t.Errorf("expected the answer echoed into the page:\n%s", s.View())
	}

	s = update(t, s, pageMsg{text: "Week #2\n"})
	if strings.Contains(s.View(), "Week #1") {
		t.Errorf("a new page should replace the old one:\n%s", s.View())
	}
}

func TestScreenIgnoresKeysWithoutQuestion(t *testing.T) {
	s := update(t, NewScreen(), pageMsg{text: "board\n"}, runes("9"), tea.KeyMsg{Type: tea.KeyEnter})
	if s.View() != "board\n" {
		t.Fatalf("unexpected view %q", s.View())
	}
}

func TestScreenQuit(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyCtrlD} {
		_, cmd := NewScreen().Update(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("%s: expected a quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", key)
		}
	}
}

func TestScreenKeepsBottomOfPage(t *testing.T) {
	s := update(t, NewScreen(), tea.WindowSizeMsg{Width: 80, Height: 2}, pageMsg{text: "one\ntwo\nthree\n"})
	if s.View() != "three\n" {
		t.Fatalf("expected the last two lines, got %q", s.View())
	}
}
