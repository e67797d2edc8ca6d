package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pickedMsg string

func pick(name string) func() tea.Cmd {
	return func() tea.Cmd { return func() tea.Msg { return pickedMsg(name) } }
}

func testMenu() Menu {
	return NewMenu([]MenuItem{
		{Label: "LESSON", Action: pick("lesson")},
		{Label: "LOCKED", Disabled: true, Action: pick("locked")},
		{Label: "QUIZ", Action: pick("quiz"), Hint: "7/10"},
	})
}

func pressMenu(m Menu, k tea.KeyPressMsg) (Menu, tea.Msg) {
	m, cmd := m.Update(k)
	if cmd == nil {
		return m, nil
	}
	return m, cmd()
}

func TestMenu_SkipsDisabledAndWraps(t *testing.T) {
	m := testMenu()
	assert.Equal(t, 0, m.Selected)

	m, _ = pressMenu(m, tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, m.Selected)

	m, _ = pressMenu(m, tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 0, m.Selected)

	m, _ = pressMenu(m, tea.KeyPressMsg{Code: 'k', Text: "k"})
	assert.Equal(t, 2, m.Selected)
}

func TestMenu_FirstEnabledSelected(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "A", Disabled: true}, {Label: "B"}})
	assert.Equal(t, 1, m.Selected)
}

func TestMenu_EnterRunsAction(t *testing.T) {
	_, msg := pressMenu(testMenu(), tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, pickedMsg("lesson"), msg)
}

func TestMenu_DigitShortcut(t *testing.T) {
	m, msg := pressMenu(testMenu(), tea.KeyPressMsg{Code: '3', Text: "3"})
	assert.Equal(t, pickedMsg("quiz"), msg)
	assert.Equal(t, 2, m.Selected)

	m, msg = pressMenu(m, tea.KeyPressMsg{Code: '2', Text: "2"})
	assert.Nil(t, msg, "disabled items do not run")
	assert.Equal(t, 2, m.Selected)

	_, msg = pressMenu(m, tea.KeyPressMsg{Code: '9', Text: "9"})
	assert.Nil(t, msg)
}

func TestMenu_ViewShowsHints(t *testing.T) {
	v := testMenu().View()
	require.Contains(t, v, "▸ LESSON")
	assert.Contains(t, v, "QUIZ")
	assert.Contains(t, v, "7/10")
}

func TestMenu_Empty(t *testing.T) {
	m := NewMenu(nil)
	m, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Empty(t, m.View())
}
