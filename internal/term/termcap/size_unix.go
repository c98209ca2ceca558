//go:build unix

package termcap

import "golang.org/x/sys/unix"

// WindowSize asks the kernel for the terminal size of the given file
// descriptor. It is the authoritative override for the database's
// static size guess when a real tty is attached.
func WindowSize(fd int) (lines, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Row), int(ws.Col), nil
}
