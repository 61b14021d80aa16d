package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-whale/internal/core"
	"github.com/vovakirdan/tui-whale/internal/loop"
	"github.com/vovakirdan/tui-whale/internal/whale"
)

// FooterHeight is the number of terminal rows below the field.
const FooterHeight = 1

// Options configure an interactive round.
type Options struct {
	Clock         core.Clock
	TickInterval  time.Duration
	RoundLength   time.Duration // Zero means no limit
	ScreenshotDir string        // Empty disables screenshots
	Logger        *log.Logger
}

// Model is the Bubble Tea model driving one round.
type Model struct {
	engine *whale.Engine
	screen *core.Screen
	opts   Options
	pacer  *loop.Pacer
	queue  *core.InputQueue
	keys   KeyMap
	help   help.Model
	status string
	done   bool
}

// NewModel creates a model for a freshly built engine.
func NewModel(engine *whale.Engine, opts Options) Model {
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = core.DefaultConfig().TickInterval()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	field := engine.Params().Field
	h := help.New()
	h.Width = field.W

	return Model{
		engine: engine,
		screen: core.NewScreen(field.W, field.H),
		opts:   opts,
		pacer:  loop.NewPacer(opts.TickInterval, opts.Clock),
		queue:  &core.InputQueue{},
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// Engine returns the engine the model drives.
func (m Model) Engine() *whale.Engine {
	return m.engine
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.pacer.Budget())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The field is fixed for the round; only the help width follows.
		m.help.Width = min(msg.Width, m.screen.Width())
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues simulation input. Quit is queued too so the engine
// ends the round on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	m.queue.Push(m.keys.MapKey(msg))
	return m, nil
}

// handleTick runs one simulation step and schedules the next.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	m.pacer.Begin()

	m.engine.Tick(m.queue.Drain())

	if m.opts.RoundLength > 0 && m.engine.Running() && m.engine.Report().Duration >= m.opts.RoundLength {
		m.opts.Logger.Debug("round length reached", "length", m.opts.RoundLength)
		m.engine.End()
	}

	if !m.engine.Running() {
		m.done = true
		return m, tea.Quit
	}

	return m, tickCmd(m.pacer.Remaining())
}

// saveScreenshot writes the current field as plain text.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	m.engine.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "error", err)
		m.status = "screenshot failed"
		return
	}

	timestamp := m.opts.Clock.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("whale_%s_%d.txt", timestamp, m.engine.Ticks()))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "path", path, "error", err)
		m.status = "screenshot failed"
		return
	}
	m.status = "saved " + filepath.Base(path)
}

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// View renders the field and the help footer.
func (m Model) View() string {
	if m.done {
		return ""
	}

	m.engine.Render(m.screen)

	footer := footerStyle.Render(m.help.View(m.keys))
	if m.status != "" {
		footer = statusStyle.Render(m.status) + "  " + footer
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run plays one round in the terminal and returns its final report.
func Run(engine *whale.Engine, opts Options) (whale.Report, error) {
	model := NewModel(engine, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return engine.Report(), err
	}

	// Quitting the program by any path still finishes the round.
	engine.End()
	return engine.Report(), nil
}
