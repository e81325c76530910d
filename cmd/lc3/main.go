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
	"bufio"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/Featherball1/lc3vm/pkg/machine"
)

const usage = "lc3 [image-file1] ..."

var cli struct {
	Images []string `arg:"" optional:"" name:"image-file" help:"Object images, loaded in order at their origins."`
	Debug  bool     `help:"Enable debug logging on stderr."`
}

func init() {
	logrus.SetOutput(os.Stderr)
}

func lc3() int {
	kong.Parse(&cli,
		kong.Name("lc3"),
		kong.Description("An LC-3 virtual machine."),
	)

	if cli.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if len(cli.Images) == 0 {
		fmt.Println(usage)
		return 2
	}

	var mc machine.Machine
	var dh machine.DeviceHandler
	dh.Keyboard = bufio.NewReader(os.Stdin)
	dh.Display = bufio.NewWriter(os.Stdout)
	mc.Devices = &dh

	mc.State.Reset()

	for _, path := range cli.Images {
		if err := loadImage(&mc, path); err != nil {
			logrus.WithError(err).WithField("image", path).
				Debug("image load failed")
			fmt.Printf("failed to load image: %s\n", path)
			return 1
		}

		logrus.WithField("image", path).Debug("image loaded")
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		exitRawTerm()
		fmt.Println()
		os.Exit(254)
	}()

	enterRawTerm()
	defer exitRawTerm()

	mc.Run()

	return 0
}

func loadImage(mc *machine.Machine, path string) error {
	file, err := os.Open(path)

	if err != nil {
		return err
	}

	defer file.Close()

	return mc.LoadImage(file)
}

func main() {
	os.Exit(lc3())
}
