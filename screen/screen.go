// Package screen implements a virtual console buffer: formatted writes
// land in a rows×cols grid of pending lines, and Refresh replays the
// whole grid to the terminal as one frame, so interleaved writes never
// tear the display.
package screen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/harlanw/scb/terminal"
)

// ANSI escape codes
const (
	ansiHideCursor  = "\x1b[?25l"
	ansiShowCursor  = "\x1b[?25h"
	ansiClearScreen = "\x1b[2J"
	ansiMoveToHome  = "\x1b[H"
	ansiClearLine   = "\x1b[K"
)

var (
	// ErrGeometryUnavailable is returned by New when the terminal's size
	// cannot be determined or is reported as zero.
	ErrGeometryUnavailable = errors.New("screen: terminal geometry unavailable")

	// ErrNotInitialized is the panic value for operations on a Screen
	// that was never created by New or was already closed.
	ErrNotInitialized = errors.New("screen: not initialized")
)

// Screen is one frame's worth of terminal content. A single instance owns
// the terminal for its lifetime; it is not safe for concurrent use.
type Screen struct {
	term terminal.Terminal
	out  io.Writer

	rows, cols int
	grid       []Row

	// Next empty cell. writeCol stays below cols while writes are
	// permitted; writeRow reaching rows sets overflow instead.
	writeRow, writeCol int

	cursorVisible bool
	overflow      bool
	truncated     bool
	closed        bool
}

// New queries the terminal's geometry, switches it to raw input mode, and
// returns a Screen with an empty grid and the write cursor at (0,0).
// It fails with ErrGeometryUnavailable when the size query fails or
// reports zero rows or columns; the terminal mode is left untouched in
// that case.
func New(term terminal.Terminal) (*Screen, error) {
	cols, rows, err := term.GetWindowSize()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeometryUnavailable, err)
	}
	if rows == 0 || cols == 0 {
		return nil, ErrGeometryUnavailable
	}

	if err := term.EnableRawMode(); err != nil {
		return nil, fmt.Errorf("failed to enable raw mode: %w", err)
	}

	return &Screen{
		term: term,
		out:  term.Stdout(),
		rows: rows,
		cols: cols,
		grid: make([]Row, rows),
	}, nil
}

// Printf formats like fmt.Sprintf and distributes the result into the
// grid at the write cursor. A '\n' moves the cursor to the start of the
// next row without being stored; a row that fills up wraps the same way.
// Once the cursor would pass the last row the grid is full: the rest of
// the write is dropped and every Printf until the next Refresh is a
// no-op.
//
// The return value is always the full formatted length, even when bytes
// were dropped — the original console-buffer contract. Use Truncated to
// detect the drop.
func (s *Screen) Printf(format string, a ...any) int {
	s.mustBeActive()

	if s.overflow {
		s.truncated = true
		return 0
	}

	text := fmt.Sprintf(format, a...)
	length := len(text)
	if length == 0 {
		return 0
	}

	i := 0
	for i < length {
		if text[i] == '\n' {
			s.writeCol = 0
			s.advanceRow()
			i++
			if s.overflow {
				break
			}
			continue
		}

		// Copy a whole segment at once: up to the next newline or
		// whatever space is left in the current row.
		seg := text[i:]
		space := s.cols - s.writeCol
		if nl := strings.IndexByte(seg, '\n'); nl >= 0 && nl < space {
			seg = seg[:nl]
		} else if len(seg) > space {
			seg = seg[:space]
		}

		s.grid[s.writeRow].AppendString(seg)
		s.writeCol += len(seg)
		i += len(seg)

		if s.writeCol == s.cols {
			s.writeCol = 0
			s.advanceRow()
			if s.overflow {
				break
			}
		}
	}

	if i < length {
		s.truncated = true
	}

	return length
}

func (s *Screen) advanceRow() {
	s.writeRow++
	if s.writeRow == s.rows {
		s.overflow = true
	}
}

// Refresh paints the grid to the terminal as a single write and resets
// the buffer for the next frame: every row emptied, overflow and
// truncation cleared, write cursor back to (0,0). The hardware cursor is
// hidden during the repaint and restored to its previous visibility
// afterwards.
func (s *Screen) Refresh() {
	s.mustBeActive()

	var ab bytes.Buffer
	ab.WriteString(ansiMoveToHome)
	ab.WriteString(ansiHideCursor)

	// The loop stops short of the terminal's last line: painting it
	// would take a trailing newline, and that scrolls the display.
	for r := 0; r+1 < s.rows; r++ {
		row := &s.grid[r]
		ab.WriteString(ansiClearLine)
		ab.Write(row.Bytes())
		row.Reset()
		ab.WriteString("\r\n")
	}
	s.grid[s.rows-1].Reset()

	s.overflow = false
	s.truncated = false
	s.writeRow, s.writeCol = 0, 0

	if s.cursorVisible {
		ab.WriteString(ansiShowCursor)
	} else {
		ab.WriteString(ansiHideCursor)
	}

	s.out.Write(ab.Bytes())
}

// SetCursor shows or hides the terminal's hardware cursor. It has no
// effect on the write cursor.
func (s *Screen) SetCursor(visible bool) {
	s.mustBeActive()

	s.cursorVisible = visible
	if visible {
		io.WriteString(s.out, ansiShowCursor)
	} else {
		io.WriteString(s.out, ansiHideCursor)
	}
}

// ReadKey reads at most one byte from the terminal, waiting no longer
// than the raw-mode read timeout. It returns 0 when no input arrived.
func (s *Screen) ReadKey() byte {
	s.mustBeActive()

	b, _ := s.term.ReadByte()
	return b
}

// Width returns the number of columns in the grid.
func (s *Screen) Width() int {
	s.mustBeActive()
	return s.cols
}

// Height returns the number of rows in the grid.
func (s *Screen) Height() int {
	s.mustBeActive()
	return s.rows
}

// Truncated reports whether any write since the last Refresh had bytes
// dropped because the grid was full.
func (s *Screen) Truncated() bool {
	s.mustBeActive()
	return s.truncated
}

// Close clears the display, makes the cursor visible, releases the grid,
// and restores the terminal's original input mode. The Screen is unusable
// afterwards; any further operation, including a second Close, panics
// with ErrNotInitialized.
func (s *Screen) Close() error {
	s.mustBeActive()
	s.closed = true

	io.WriteString(s.out, ansiClearScreen+ansiMoveToHome+ansiShowCursor)

	for i := range s.grid {
		s.grid[i].Reset()
	}
	s.grid = nil
	s.rows, s.cols = 0, 0

	return s.term.DisableRawMode()
}

func (s *Screen) mustBeActive() {
	if s.term == nil || s.closed {
		panic(ErrNotInitialized)
	}
}
