// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"os"

	"github.com/pkg/term/termios"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

var termRestore unix.Termios
var termSaved bool

func enterRawTerm() {
	fd := os.Stdin.Fd()

	if !term.IsTerminal(int(fd)) {
		logrus.Debug("stdin is not a terminal, keyboard left cooked")
		return
	}

	if err := termios.Tcgetattr(fd, &termRestore); err != nil {
		logrus.WithError(err).Warn("could not read terminal state")
		return
	}

	termstate := termRestore

	termstate.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.INLCR
	termstate.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN
	termstate.Cflag &^= unix.CSIZE | unix.PARENB
	termstate.Cflag |= unix.CS8

	// Keyboard reads return immediately with whatever is pending
	termstate.Cc[unix.VMIN] = 0
	termstate.Cc[unix.VTIME] = 0

	if err := termios.Tcsetattr(fd, termios.TCSANOW, &termstate); err != nil {
		logrus.WithError(err).Warn("could not enter raw mode")
		return
	}

	termSaved = true
}

func exitRawTerm() {
	if !termSaved {
		return
	}

	if err := termios.Tcsetattr(
		os.Stdin.Fd(), termios.TCSANOW, &termRestore,
	); err != nil {
		logrus.WithError(err).Warn("could not restore terminal state")
	}
}
