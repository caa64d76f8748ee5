//go:build linux

package terminal

import "golang.org/x/sys/unix"

// TCSETSF drains output and flushes pending input before applying the
// new attributes, like tcsetattr(TCSAFLUSH).
const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETSF
)
