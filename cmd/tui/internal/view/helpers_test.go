package view_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// run executes cmd synchronously and flattens batches into the messages they produce.
func run(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()

	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(t, c)...)
		}

		return out
	}

	if msg == nil {
		return nil
	}

	return []tea.Msg{msg}
}

// feed delivers msgs to m in order and returns the commands the updates produced.
func feed[M tea.Model](t *testing.T, m M, msgs ...tea.Msg) (M, []tea.Cmd) {
	t.Helper()

	var cmds []tea.Cmd

	for _, msg := range msgs {
		next, cmd := m.Update(msg)
		m = next.(M)

		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, cmds
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
