package presentation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/sweetnote/internal/deck"
)

func newController(t *testing.T, messages int) *Controller {
	t.Helper()
	texts := make([]string, messages)
	for i := range texts {
		texts[i] = string(rune('A' + i))
	}
	d, err := deck.New(texts, []string{"e0", "e1", "e2"})
	require.NoError(t, err)
	return New(d)
}

func TestNewStartsBrowsingFirstMessage(t *testing.T) {
	c := newController(t, 4)

	assert.Equal(t, StateBrowsing, c.State())
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.GestureActive())

	got := c.CurrentDisplay()
	assert.Equal(t, Display{Text: "A", Emoji: "e0", Index: 0, Total: 4, Progress: 0.25}, got)
}

func TestNewWithEmptyDeckUsesDefault(t *testing.T) {
	c := New(deck.Deck{})

	require.Equal(t, deck.Default().Len(), c.Len())
	got := c.CurrentDisplay()
	assert.Equal(t, deck.Default().Message(0), got.Text)
	assert.Equal(t, deck.Default().Len(), got.Total)
	assert.False(t, got.Final)
}

func TestAdvanceWalksEveryMessage(t *testing.T) {
	const n = 5
	c := newController(t, n)

	for i := 0; i < n-1; i++ {
		before := c.CurrentDisplay()
		assert.InDelta(t, float64(i+1)/n, before.Progress, 1e-9)

		c.Advance()

		after := c.CurrentDisplay()
		assert.Equal(t, i+1, c.Index())
		assert.False(t, after.Final)
		assert.InDelta(t, float64(i+2)/n, after.Progress, 1e-9)
		assert.Greater(t, after.Progress, before.Progress)
	}
	assert.Equal(t, 1.0, c.CurrentDisplay().Progress)
}

func TestAdvanceFromLastMessageFinishes(t *testing.T) {
	c := newController(t, 2)
	c.Advance()
	c.Advance()

	assert.Equal(t, StateFinished, c.State())
	assert.True(t, c.Finished())
	assert.Equal(t, 1, c.Index(), "index keeps its last valid value")
	assert.Equal(t, Display{Final: true}, c.CurrentDisplay())
}

func TestAdvanceWhenFinishedIsNoOp(t *testing.T) {
	c := newController(t, 1)
	c.Advance()
	require.True(t, c.Finished())

	for i := 0; i < 10; i++ {
		assert.NotPanics(t, c.Advance)
	}
	assert.True(t, c.Finished())
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, Display{Final: true}, c.CurrentDisplay())
}

func TestResetReturnsToFirstMessage(t *testing.T) {
	c := newController(t, 3)
	for i := 0; i < 3; i++ {
		c.Advance()
	}
	require.True(t, c.Finished())
	c.BeginGesture(10)

	c.Reset()

	assert.Equal(t, StateBrowsing, c.State())
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.GestureActive())
	assert.InDelta(t, 1.0/3, c.CurrentDisplay().Progress, 1e-9)

	c.Reset()
	assert.Equal(t, 0, c.Index(), "reset is idempotent")
}

func TestResetWhileBrowsing(t *testing.T) {
	c := newController(t, 3)
	c.Advance()

	c.Reset()

	assert.Equal(t, 0, c.Index())
	assert.False(t, c.Finished())
}

func TestEndGestureWithoutBeginIsIgnored(t *testing.T) {
	c := newController(t, 3)

	assert.False(t, c.EndGesture(-1000))
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.Finished())
}

func TestGestureThreshold(t *testing.T) {
	cases := []struct {
		name     string
		origin   float64
		end      float64
		advanced bool
	}{
		{name: "swipe left", origin: 100, end: 40, advanced: true},
		{name: "jitter", origin: 100, end: 80, advanced: false},
		{name: "exactly threshold", origin: 100, end: 50, advanced: false},
		{name: "just past threshold", origin: 100, end: 49.5, advanced: true},
		{name: "swipe right", origin: 40, end: 100, advanced: false},
		{name: "nan", origin: math.NaN(), end: 0, advanced: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newController(t, 3)
			c.BeginGesture(tc.origin)
			require.True(t, c.GestureActive())

			got := c.EndGesture(tc.end)

			assert.Equal(t, tc.advanced, got)
			want := 0
			if tc.advanced {
				want = 1
			}
			assert.Equal(t, want, c.Index())
			assert.False(t, c.GestureActive(), "origin is cleared regardless of outcome")
		})
	}
}

func TestGestureEndTwiceAdvancesOnce(t *testing.T) {
	c := newController(t, 3)
	c.BeginGesture(100)
	c.EndGesture(40)
	c.EndGesture(40)

	assert.Equal(t, 1, c.Index())
}

func TestLastGestureOriginWins(t *testing.T) {
	c := newController(t, 3)
	c.BeginGesture(100)
	c.BeginGesture(60)

	assert.False(t, c.EndGesture(40))
	assert.Equal(t, 0, c.Index())
}

func TestSwipingThroughDefaultDeck(t *testing.T) {
	d := deck.Default()
	c := New(d)

	first := c.CurrentDisplay()
	assert.Equal(t, d.Message(0), first.Text)
	assert.Equal(t, d.Emojis()[0], first.Emoji)

	for i := 0; i < 10; i++ {
		c.BeginGesture(100)
		require.True(t, c.EndGesture(40))
	}
	assert.Equal(t, 10, c.Index())
	last := c.CurrentDisplay()
	assert.Equal(t, d.Message(10), last.Text)
	assert.Equal(t, d.Emojis()[10%len(d.Emojis())], last.Emoji)
	assert.Equal(t, 1.0, last.Progress)

	c.BeginGesture(100)
	c.EndGesture(40)
	assert.Equal(t, StateFinished, c.State())
	assert.True(t, c.CurrentDisplay().Final)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "browsing", StateBrowsing.String())
	assert.Equal(t, "finished", StateFinished.String())
}
