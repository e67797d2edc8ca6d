package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func opts() []ChecklistOption {
	return []ChecklistOption{{"a", "One"}, {"b", "Two"}, {"c", "Three"}, {"d", "Four"}}
}

func TestChecklist_SingleReplacesChoice(t *testing.T) {
	c := NewChecklist("Pick", opts(), false)
	c, _ = c.Update(press('a'))
	c, _ = c.Update(press('c'))
	assert.Equal(t, []string{"c"}, c.Values())
	assert.Equal(t, 2, c.Cursor)
}

func TestChecklist_MultiToggles(t *testing.T) {
	c := NewChecklist("Pick", opts(), true)
	c, _ = c.Update(press('a'))
	c, _ = c.Update(press('d'))
	c, _ = c.Update(press('c'))
	c, _ = c.Update(press('a'))
	assert.Equal(t, []string{"c", "d"}, c.Values())
}

func TestChecklist_SpaceTogglesCursor(t *testing.T) {
	c := NewChecklist("Pick", opts(), true)
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	assert.Equal(t, []string{"b"}, c.Values())
}

func TestChecklist_IgnoresLettersOutOfRange(t *testing.T) {
	c := NewChecklist("Pick", opts()[:2], false)
	c, _ = c.Update(press('d'))
	assert.Empty(t, c.Values())
}

func TestChecklist_ReviewFreezes(t *testing.T) {
	c := NewChecklist("Pick", opts(), false)
	c, _ = c.Update(press('b'))
	c.Review([]string{"a"})
	c, _ = c.Update(press('c'))
	assert.Equal(t, []string{"b"}, c.Values())
	assert.Contains(t, c.View(), "Two")

	c.Reset()
	assert.Empty(t, c.Values())
}
