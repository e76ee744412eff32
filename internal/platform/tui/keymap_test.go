package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

func TestGameKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := keys.Action(tc.msg)
			if result != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), result, tc.expected)
			}
		})
	}
}

func TestKeyMapsHaveHelp(t *testing.T) {
	if len(DefaultGameKeyMap().ShortHelp()) == 0 {
		t.Error("game key map should expose short help")
	}
	if len(DefaultMenuKeyMap().FullHelp()) == 0 {
		t.Error("menu key map should expose full help")
	}
}
