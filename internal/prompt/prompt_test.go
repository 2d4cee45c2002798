package prompt

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(t *testing.T, m model, key string) model {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}

	updated, _ := m.Update(msg)
	next, ok := updated.(model)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return next
}

func TestModelConfirmsOnYes(t *testing.T) {
	m := press(t, newModel("Install webpack?"), "y")
	if !m.confirmed || !m.done {
		t.Fatalf("expected confirmed done model, got %+v", m)
	}
}

func TestModelDeclinesOnNo(t *testing.T) {
	for _, key := range []string{"n", "N", "esc"} {
		m := press(t, newModel("Install webpack?"), key)
		if m.confirmed {
			t.Fatalf("key %q must decline", key)
		}
		if !m.done {
			t.Fatalf("key %q must finish the prompt", key)
		}
		if m.aborted {
			t.Fatalf("key %q is a decline, not an abort", key)
		}
	}
}

func TestModelAbortsOnInterrupt(t *testing.T) {
	m := press(t, newModel("Install webpack?"), "ctrl+c")
	if !m.aborted {
		t.Fatalf("expected aborted model, got %+v", m)
	}
}

func TestModelIgnoresOtherKeys(t *testing.T) {
	m := press(t, newModel("Install webpack?"), "x")
	if m.done || m.confirmed || m.aborted {
		t.Fatalf("unrelated keys must not resolve the prompt, got %+v", m)
	}
}

func TestViewShowsMessageUntilDone(t *testing.T) {
	m := newModel("Install webpack?")
	if view := m.View(); !strings.Contains(view, "Install webpack?") || !strings.Contains(view, "[y/n]") {
		t.Fatalf("unexpected view %q", view)
	}

	m = press(t, m, "y")
	if view := m.View(); view != "" {
		t.Fatalf("resolved prompt must render nothing, got %q", view)
	}
}
