package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/sweetnote/internal/presentation"
)

func (m *model) View() string {
	display := m.controller.CurrentDisplay()
	switch m.stage {
	case stageFinale:
		return m.viewFinale()
	default:
		return m.viewBrowsing(display)
	}
}

func (m *model) viewBrowsing(display presentation.Display) string {
	popped := -1
	if m.pulse.active {
		popped = m.pulse.heart
	}
	body := joinNonEmpty([]string{
		m.layout.wrap(display.Text),
		emojiStyle.Render(display.Emoji),
	})
	bubble := bubbleStyle.
		Width(m.layout.bubbleWidth).
		Height(m.layout.bubbleHeight).
		Render(body)

	parts := []string{
		m.layout.heartRow(popped),
		bubble,
		m.progressView(display),
	}
	if m.hintVisible {
		parts = append(parts, hintStyle.Render(swipeHint))
	}
	if m.infoMessage != "" {
		parts = append(parts, helperStyle.Render(m.infoMessage))
	}
	parts = append(parts, m.help.View(m.keys))
	return m.center(joinNonEmpty(parts))
}

func (m *model) progressView(display presentation.Display) string {
	counter := counterStyle.Render(fmt.Sprintf("%d/%d", display.Index+1, display.Total))
	return lipgloss.JoinVertical(lipgloss.Center, m.progress.ViewAs(display.Progress), counter)
}

func (m *model) viewFinale() string {
	d := m.controller.Deck()
	content := joinNonEmpty([]string{
		m.layout.wrap(d.Finale),
		restartStyle.Render(fmt.Sprintf("%s (%s)", d.RestartLabel, m.keys.Restart.Help().Key)),
	})
	height := m.layout.windowHeight - 3
	if height < minBubbleHeight {
		height = minBubbleHeight
	}
	card := finaleStyle.
		Width(m.layout.windowWidth).
		Height(height).
		Render(content)
	return joinNonEmpty([]string{card, m.help.View(m.keys)})
}

func (m *model) center(block string) string {
	return lipgloss.PlaceHorizontal(m.layout.windowWidth, lipgloss.Center, block)
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
