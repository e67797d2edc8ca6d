// Package app assembles the lesson document and runs the terminal UI.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cellquest/internal/config"
	"github.com/abhisek/cellquest/internal/content"
	"github.com/abhisek/cellquest/internal/lesson"
	"github.com/abhisek/cellquest/internal/router"
	"github.com/abhisek/cellquest/internal/screen"
	"github.com/abhisek/cellquest/internal/screens/explorer"
	"github.com/abhisek/cellquest/internal/screens/home"
	"github.com/abhisek/cellquest/internal/screens/welcome"
	"github.com/abhisek/cellquest/internal/store"
	"github.com/abhisek/cellquest/internal/tour"
	"github.com/abhisek/cellquest/internal/ui/keys"
	"github.com/abhisek/cellquest/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	doc    *lesson.Document
	width  int
	height int
}

// newAppModel starts on the welcome screen, which hands over to home.
func newAppModel(doc *lesson.Document) AppModel {
	w := welcome.New(func() screen.Screen { return home.New(doc) })
	return AppModel{
		router: router.New(w),
		doc:    doc,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Back) && !m.capturing():
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// capturing reports whether the active screen wants Esc for itself.
func (m AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturingInput()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the framed screen for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	nav := m.doc.Navigator()
	header := layout.RenderHeader(title, nav.Index(), nav.Len(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, body, footer, m.width, m.height)
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return append(hints, keys.Hints(keys.Quit)...)
		}
	}
	if m.router.Depth() > 1 {
		return keys.Hints(keys.Back, keys.Quit)
	}
	return keys.Hints(keys.Up, keys.Down, keys.Select, keys.Quit)
}

// Run loads content, opens the journal and runs the program until the
// learner quits.
func Run(cfg config.Config) error {
	reg, err := LoadRegistry(cfg)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	st, err := store.Open(cfg.JournalDSN)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer st.Close()

	bridge := screen.NewBridge()
	doc := lesson.New(reg, lesson.Options{
		Speed:    cfg.Speed,
		Journal:  st.EventRepo(),
		Listener: bridge,
		Presence: tour.PresenceFunc(explorer.Shows),
		Logger:   slog.Default(),
	})
	defer doc.Close()
	slog.Info("session started", "session", doc.ID(), "sections", doc.Navigator().Len())

	p := tea.NewProgram(newAppModel(doc))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go bridge.Run(ctx, p.Send)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	slog.Info("session ended", "session", doc.ID())
	return nil
}

// LoadRegistry loads the configured content pack, or the embedded one.
func LoadRegistry(cfg config.Config) (*content.Registry, error) {
	if cfg.ContentDir != "" {
		return content.LoadDir(cfg.ContentDir)
	}
	return content.LoadEmbedded()
}
