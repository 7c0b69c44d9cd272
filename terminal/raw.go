// Package terminal connects a VM console to the process terminal.
package terminal

import (
	"fmt"

	"github.com/pkg/term/termios"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// EnableRawMode switches off canonical input and echo on fd so the program
// sees every key as it is typed. The returned function restores the old
// settings. If fd is not a terminal nothing is changed and restore is a no-op.
func EnableRawMode(fd uintptr, logger logrus.FieldLogger) (restore func() error, err error) {
	if !term.IsTerminal(int(fd)) {
		logger.Debug("input is not a terminal, raw mode skipped")
		return func() error { return nil }, nil
	}

	var original unix.Termios
	if err := termios.Tcgetattr(fd, &original); err != nil {
		return nil, fmt.Errorf("reading terminal attributes: %w", err)
	}

	raw := original
	raw.Lflag &^= unix.ICANON | unix.ECHO
	if err := termios.Tcsetattr(fd, termios.TCSANOW, &raw); err != nil {
		return nil, fmt.Errorf("enabling raw mode: %w", err)
	}
	logger.Debug("raw mode enabled")

	return func() error {
		logger.Debug("disabling raw mode")
		if err := termios.Tcsetattr(fd, termios.TCSANOW, &original); err != nil {
			return fmt.Errorf("restoring terminal attributes: %w", err)
		}
		return nil
	}, nil
}
