//go:build !windows

package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type stdTerminal struct {
	in       *os.File
	out      *os.File
	original *unix.Termios
}

func New() Terminal {
	return &stdTerminal{
		in:  os.Stdin,
		out: os.Stdout,
	}
}

func (t *stdTerminal) Close() error {
	return nil
}

func (t *stdTerminal) Stdout() io.Writer {
	return t.out
}

func (t *stdTerminal) EnableRawMode() error {
	fd := int(t.in.Fd())

	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	original, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("failed to get terminal attributes: %w", err)
	}
	t.original = original

	// POSIX raw mode: no line buffering, no echo, no signal keys, no
	// output post-processing. VMIN=0/VTIME=1 makes every read return
	// within a tenth of a second whether or not a byte arrived.
	raw := *original
	raw.Cflag |= unix.CS8
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Oflag &^= unix.OPOST
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return fmt.Errorf("failed to set terminal attributes: %w", err)
	}

	return nil
}

func (t *stdTerminal) DisableRawMode() error {
	if t.original == nil {
		return nil
	}

	fd := int(t.in.Fd())
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, t.original); err != nil {
		return fmt.Errorf("failed to restore terminal attributes: %w", err)
	}
	t.original = nil

	return nil
}

func (t *stdTerminal) GetWindowSize() (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(int(t.out.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query window size: %w", err)
	}
	return int(ws.Col), int(ws.Row), nil
}

func (t *stdTerminal) ReadByte() (byte, error) {
	// With VMIN=0/VTIME=1 in effect the read itself is the timeout: it
	// returns a byte or, after ~100ms, nothing.
	var buf [1]byte
	n, err := t.in.Read(buf[:])
	if n == 0 {
		if err == io.EOF {
			err = nil
		}
		return 0, err
	}
	return buf[0], nil
}
