package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/csheth/sweetnote/internal/deck"
	"github.com/csheth/sweetnote/internal/presentation"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Deck      deck.Deck
	Logger    *zap.Logger
	HintDelay time.Duration
}

// New returns a tea.Model ready to be mounted into a Program. A zero Deck
// falls back to the built-in one.
func New(config Config) tea.Model {
	if config.Deck.Len() == 0 {
		config.Deck = deck.Default()
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	bar := progress.New(
		progress.WithSolidFill(string(accentColor)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(trackColor)

	m := &model{
		config:      config,
		controller:  presentation.New(config.Deck),
		stage:       stageBrowsing,
		keys:        newKeyMap(),
		help:        help.New(),
		progress:    bar,
		layout:      newPageLayout(),
		hintVisible: config.HintDelay <= 0,
	}
	m.progress.Width = m.layout.bubbleWidth
	return m
}

type model struct {
	config     Config
	controller *presentation.Controller
	stage      stage

	keys     keyMap
	help     help.Model
	progress progress.Model
	layout   pageLayout

	hintVisible bool
	pulse       pulseState
	infoMessage string
}

func (m *model) Init() tea.Cmd {
	if m.hintVisible {
		return nil
	}
	return m.revealHint()
}

// revealHint schedules the swipe hint to appear after the configured delay.
func (m *model) revealHint() tea.Cmd {
	return tea.Tick(m.config.HintDelay, func(time.Time) tea.Msg {
		return hintRevealMsg{}
	})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case hintRevealMsg:
		m.hintVisible = true
		return m, nil
	case pulseEndMsg:
		if msg.generation == m.pulse.generation {
			m.pulse.active = false
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.progress.Width = m.layout.bubbleWidth
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.transition("key", m.controller.Advance)
		return m, nil
	case key.Matches(msg, m.keys.Pop):
		return m, m.popHeart()
	case key.Matches(msg, m.keys.Restart):
		m.transition("restart", m.controller.Reset)
		if m.config.HintDelay <= 0 {
			return m, nil
		}
		m.hintVisible = false
		return m, m.revealHint()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if msg.String() == "r" && m.stage == stageBrowsing {
		m.infoMessage = "Reach the final card to start over."
	}
	return m, nil
}

// handleMouse turns a press/release pair into a gesture. Columns are scaled
// to gesture units so the swipe threshold stays meaningful in a terminal.
func (m *model) handleMouse(msg tea.MouseMsg) {
	x := float64(msg.X * cellPixelWidth)
	switch msg.Type {
	case tea.MouseLeft:
		m.controller.BeginGesture(x)
	case tea.MouseRelease:
		m.transition("swipe", func() {
			m.controller.EndGesture(x)
		})
	}
}

// transition applies a controller operation, then brings the stage and key
// bindings in line with the new state.
func (m *model) transition(trigger string, apply func()) {
	from := m.stateLabel()
	apply()
	to := m.stateLabel()

	if m.controller.Finished() {
		m.stage = stageFinale
		m.pulse.active = false
	} else {
		m.stage = stageBrowsing
	}
	m.keys.sync(m.stage)

	if from != to {
		m.infoMessage = ""
		m.config.Logger.Debug(transitionLogName,
			zap.String("trigger", trigger),
			zap.String("from", from),
			zap.String("to", to),
		)
	}
}

func (m *model) stateLabel() string {
	if m.controller.Finished() {
		return presentation.StateFinished.String()
	}
	return fmt.Sprintf("%s(%d)", presentation.StateBrowsing, m.controller.Index())
}

// popHeart starts the pulse on the decorative heart paired with the current
// message. The controller never sees it.
func (m *model) popHeart() tea.Cmd {
	display := m.controller.CurrentDisplay()
	if display.Final {
		return nil
	}
	m.pulse.generation++
	m.pulse.heart = display.Index % heartCount
	m.pulse.active = true
	generation := m.pulse.generation
	return tea.Tick(pulseDuration, func(time.Time) tea.Msg {
		return pulseEndMsg{generation: generation}
	})
}
