package tui

import "time"

type stage int

const (
	stageBrowsing stage = iota
	stageFinale
)

const swipeHint = "Swipe left to continue"

const (
	minBubbleWidth    = 30
	minBubbleHeight   = 5
	bubblePaddingX    = 2
	defaultWinWidth   = 80
	defaultWinHeight  = 24
	heartCount        = 5
	pulseDuration     = 300 * time.Millisecond
	cellPixelWidth    = 8
	transitionLogName = "presentation transition"
)

// hintRevealMsg shows the swipe hint once the startup delay has passed.
type hintRevealMsg struct{}

// pulseEndMsg ends the heart pop started with the same generation.
type pulseEndMsg struct {
	generation int
}

type pulseState struct {
	heart      int
	active     bool
	generation int
}
