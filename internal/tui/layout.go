package tui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

type pageLayout struct {
	windowWidth  int
	windowHeight int
	bubbleWidth  int
	bubbleHeight int
}

func newPageLayout() pageLayout {
	l := pageLayout{}
	l.Update(defaultWinWidth, defaultWinHeight)
	return l
}

// Update sizes the message bubble to nine tenths of the window width and
// four tenths of its height, never below the readable minimum. The height
// leaves room for the bubble chrome, progress bar, hint and help.
func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	l.bubbleWidth = width * 9 / 10
	if l.bubbleWidth < minBubbleWidth {
		l.bubbleWidth = minBubbleWidth
	}
	l.bubbleHeight = height * 4 / 10
	if l.bubbleHeight < minBubbleHeight {
		l.bubbleHeight = minBubbleHeight
	}
}

// textWidth is the wrap width inside the bubble padding.
func (l pageLayout) textWidth() int {
	return l.bubbleWidth - 2*bubblePaddingX
}

func (l pageLayout) wrap(text string) string {
	return wordwrap.String(text, l.textWidth())
}

// heartColumns spreads the decorative hearts across the row, starting a
// tenth in and stepping a fifth of the width each time.
func (l pageLayout) heartColumns() []int {
	cols := make([]int, heartCount)
	for i := range cols {
		cols[i] = l.windowWidth * (10 + i*20) / 100
	}
	return cols
}

// heartRow renders the hearts, with popped drawn in the pulse style. Pass -1
// when nothing is popping.
func (l pageLayout) heartRow(popped int) string {
	var b strings.Builder
	col := 0
	for i, target := range l.heartColumns() {
		if target > col {
			b.WriteString(strings.Repeat(" ", target-col))
			col = target
		}
		if i == popped {
			b.WriteString(heartPop.Render("❤"))
		} else {
			b.WriteString(heartStyle.Render("♥"))
		}
		col++
	}
	return b.String()
}
