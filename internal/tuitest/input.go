package tuitest

import "time"

var (
	// KeyEnter sends a carriage return.
	KeyEnter = []byte{'\r'}
	// KeyCtrlC interrupts the program.
	KeyCtrlC = []byte{3}
	// KeyEsc sends a bare escape.
	KeyEsc = []byte{27}
	// KeyRight sends the right arrow.
	KeyRight = []byte("\x1b[C")
)

// x10 encodes a mouse report in the legacy X10 format that terminals send
// once cell motion tracking is on. Columns and rows are zero based.
func x10(button byte, col, row int) []byte {
	return []byte{0x1b, '[', 'M', 32 + button, byte(32 + col + 1), byte(32 + row + 1)}
}

// MouseDrag returns the steps for pressing the left button at fromCol,
// releasing it at toCol, with pause between the two reports.
func MouseDrag(fromCol, toCol, row int, pause time.Duration) []Step {
	return []Step{
		{Input: x10(0, fromCol, row)},
		{Delay: pause, Input: x10(3, toCol, row)},
	}
}
