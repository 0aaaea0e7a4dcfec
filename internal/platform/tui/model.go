package tui

import (
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/turkey-shoot/internal/core"
	"github.com/vovakirdan/turkey-shoot/internal/game"
)

// Model is the Bubble Tea model that runs the shooter in a terminal.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger

	// start anchors the monotonic session clock; input frames carry
	// milliseconds since start.
	start time.Time

	// nameInput collects the high-score name when the game asks for it.
	nameInput    textinput.Model
	enteringName bool

	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = game.MaxNameLength
	ti.Width = game.MaxNameLength + 2

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "turkeyshoot",
		}),
		start:     time.Now(),
		nameInput: ti,
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Name entry grabs the keyboard until submitted.
	if m.enteringName {
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if err := m.game.SubmitName(m.nameInput.Value()); err != nil {
				m.logger.Warn("could not save high score", "error", err)
			}
			m.enteringName = false
			m.nameInput.Blur()
			m.nameInput.SetValue("")
			return m, nil
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// A resize mid-run restarts the session; entity positions are only
	// meaningful for the screen they were spawned on.
	m.game.Reset(m.config)
	m.gameState = m.game.State()

	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.inputFrame.Now = time.Since(m.start).Milliseconds()

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Hand the keyboard to the name prompt when the game asks for it.
	if m.gameState.State == game.StateNameInput && !m.enteringName {
		m.enteringName = true
		m.nameInput.Focus()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)

	if m.enteringName {
		out = m.overlayNameInput(out)
	}
	return out
}

// overlayNameInput splices the text input into the rendered frame, just
// below the high-score prompt.
func (m Model) overlayNameInput(out string) string {
	lines := strings.Split(out, "\n")
	row := m.screen.Height()/2 + 3
	if row >= 0 && row < len(lines) {
		pad := (m.screen.Width() - m.nameInput.Width) / 2
		if pad < 0 {
			pad = 0
		}
		lines[row] = strings.Repeat(" ", pad) + m.nameInput.View()
	}
	return strings.Join(lines, "\n")
}

// Run starts the Bubble Tea program with the given model.
func Run(g *game.Game, cfg core.RuntimeConfig) error {
	model := NewModel(g, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
