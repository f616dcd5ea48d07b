package ui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func chdirTemp(t *testing.T, files map[string]string) func() {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	return func() {
		_ = os.Chdir(old)
	}
}

func TestPickerListsOnlyItemFiles(t *testing.T) {
	restore := chdirTemp(t, map[string]string{
		"accounts.yaml": "- a\n",
		"notes.txt":     "a\n",
		"binary.mp3":    "x",
	})
	defer restore()

	m := NewPicker()
	if m.HasError() {
		t.Fatalf("unexpected error: %v", m.Error())
	}
	if got := len(m.list.Items()); got != 2 {
		t.Fatalf("expected 2 item files, got %d", got)
	}
}

func TestPickerSelectionStoresResult(t *testing.T) {
	restore := chdirTemp(t, map[string]string{
		"accounts.yaml": "- a\n",
	})
	defer restore()

	m := NewPicker()
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(PickerModel)

	result := m.Result()
	if result.Cancelled {
		t.Fatal("expected a selection, got cancelled")
	}
	if result.Path != "accounts.yaml" {
		t.Fatalf("expected accounts.yaml, got %q", result.Path)
	}
}

func TestPickerCancel(t *testing.T) {
	restore := chdirTemp(t, map[string]string{})
	defer restore()

	m := NewPicker()
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = model.(PickerModel)

	if !m.Result().Cancelled {
		t.Fatal("expected cancelled result")
	}
}
