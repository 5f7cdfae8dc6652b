// Package presentation holds the state machine behind the greeting deck:
// which message is showing, whether the final card has been reached, and the
// pending swipe gesture.
package presentation

import "github.com/csheth/sweetnote/internal/deck"

// SwipeThreshold is the leftward distance a gesture must exceed to count as
// a swipe rather than tap jitter.
const SwipeThreshold = 50

// State names the two regions of the presentation.
type State int

const (
	// StateBrowsing means a message from the deck is showing.
	StateBrowsing State = iota
	// StateFinished means the final card is showing.
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateFinished:
		return "finished"
	default:
		return "browsing"
	}
}

// Display is what the renderer shows for the current state. When Final is
// set the index-derived fields are zero and the renderer shows the finale.
type Display struct {
	Text     string
	Emoji    string
	Index    int
	Total    int
	Progress float64
	Final    bool
}

// Controller owns the presentation state. It is not safe for concurrent use;
// all calls are expected from the UI event loop.
type Controller struct {
	deck     deck.Deck
	index    int
	finished bool

	origin    float64
	hasOrigin bool
}

// New returns a controller positioned on the first message. An empty deck
// falls back to deck.Default so there is always a message to show.
func New(d deck.Deck) *Controller {
	if d.Len() == 0 {
		d = deck.Default()
	}
	return &Controller{deck: d}
}

// BeginGesture records where a pointer interaction started. A second call
// before EndGesture replaces the earlier origin.
func (c *Controller) BeginGesture(origin float64) {
	c.origin = origin
	c.hasOrigin = true
}

// EndGesture completes a gesture and advances when it was a leftward swipe
// past SwipeThreshold. It reports whether an advance was triggered. Without a
// recorded origin the call does nothing.
func (c *Controller) EndGesture(end float64) bool {
	if !c.hasOrigin {
		return false
	}
	delta := c.origin - end
	c.origin = 0
	c.hasOrigin = false
	if delta > SwipeThreshold {
		c.Advance()
		return true
	}
	return false
}

// Advance moves to the next message, or onto the final card after the last
// one. Once finished it has no effect until Reset.
func (c *Controller) Advance() {
	if c.finished {
		return
	}
	if c.index < c.deck.Len()-1 {
		c.index++
		return
	}
	c.finished = true
}

// Reset returns to the first message and drops any pending gesture.
func (c *Controller) Reset() {
	c.index = 0
	c.finished = false
	c.origin = 0
	c.hasOrigin = false
}

// CurrentDisplay returns the data the renderer needs for the current state.
func (c *Controller) CurrentDisplay() Display {
	if c.finished {
		return Display{Final: true}
	}
	total := c.deck.Len()
	return Display{
		Text:     c.deck.Message(c.index),
		Emoji:    c.deck.Emoji(c.index),
		Index:    c.index,
		Total:    total,
		Progress: float64(c.index+1) / float64(total),
	}
}

// State summarizes the current position as browsing or finished.
func (c *Controller) State() State {
	if c.finished {
		return StateFinished
	}
	return StateBrowsing
}

// Index is the position of the current message. It is kept while finished.
func (c *Controller) Index() int { return c.index }

// Finished reports whether the final card is showing.
func (c *Controller) Finished() bool { return c.finished }

// GestureActive reports whether a gesture origin is pending.
func (c *Controller) GestureActive() bool { return c.hasOrigin }

// Len is the number of messages in the deck.
func (c *Controller) Len() int { return c.deck.Len() }

// Deck returns the deck being presented.
func (c *Controller) Deck() deck.Deck { return c.deck }
