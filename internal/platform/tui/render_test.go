package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-dots/internal/core"
	"github.com/vovakirdan/tui-dots/internal/registry"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetCell(3, 0, core.Cell{Rune: '●', Color: core.ColorFromRGB(170, 255, 0)})
	s.DrawTextColor(0, 1, "xyz", core.ColorCyan)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 6, lipgloss.Width(lines[0]))
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "xyz")
}

func TestStyleForIsCached(t *testing.T) {
	c := core.Color(123)
	first := styleFor(c)
	assert.Equal(t, first.GetForeground(), styleFor(c).GetForeground())
	assert.Equal(t, lipgloss.Color("123"), first.GetForeground())
}

type menuStub struct{ id, title string }

func (g menuStub) ID() string                           { return g.id }
func (g menuStub) Title() string                        { return g.title }
func (g menuStub) Reset(core.RuntimeConfig)             {}
func (g menuStub) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g menuStub) Render(*core.Screen)                  {}
func (g menuStub) State() core.GameState                { return core.GameState{} }

func TestMenuSelects(t *testing.T) {
	if !registry.Exists("menu_a") {
		registry.Register("menu_a", func() registry.Game { return menuStub{"menu_a", "Board A"} })
		registry.Register("menu_b", func() registry.Game { return menuStub{"menu_b", "Board B"} })
	}

	var m tea.Model = NewMenuModel(core.DefaultConfig())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	menu := m.(MenuModel)
	require.NotNil(t, menu.Selected())
	assert.Equal(t, "menu_b", menu.Selected().ID)
	assert.Contains(t, menu.View(), "Board A")
}

func TestMenuQuit(t *testing.T) {
	var m tea.Model = NewMenuModel(core.DefaultConfig())
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Nil(t, m.(MenuModel).Selected())
	assert.Empty(t, m.(MenuModel).View())
}
