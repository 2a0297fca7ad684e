//go:build unix

package report

import "golang.org/x/sys/unix"

// TerminalWidth probes the controlling terminal's column count via
// golang.org/x/sys/unix's TIOCGWINSZ ioctl, falling back to
// defaultTerminalWidth when stdout isn't a tty at all.
func TerminalWidth(fd int) int {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return defaultTerminalWidth
	}
	return int(ws.Col)
}
