//go:build !unix

package report

// TerminalWidth falls back to defaultTerminalWidth on platforms without a
// TIOCGWINSZ-style ioctl (e.g. Windows, wasm).
func TerminalWidth(fd int) int {
	return defaultTerminalWidth
}
