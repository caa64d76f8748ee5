package terminal

import "io"

// Terminal abstracts the controlling terminal: raw input mode, geometry
// queries, raw output, and bounded single-byte reads.
type Terminal interface {
	EnableRawMode() error
	DisableRawMode() error
	GetWindowSize() (width, height int, err error)

	// Stdout is the terminal's output stream. Writes are best-effort;
	// callers do not surface terminal I/O errors.
	Stdout() io.Writer

	// ReadByte reads at most one byte from the terminal. It waits no
	// longer than the read timeout established by raw mode (about
	// 100ms) and returns (0, nil) when no input arrived in time.
	ReadByte() (byte, error)

	Close() error
}
