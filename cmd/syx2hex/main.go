// Copyright (c) 2018 Iori Mizutani
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

// A tool to check a DT1 .syx file and print it as hex
package main

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/iomz/rolandsysex"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := logrus.New()
	logger.Out = stderr
	logger.Formatter = &logrus.TextFormatter{DisableTimestamp: true}

	// kingpin app
	app := kingpin.New("syx2hex", "Check the checksum of a Roland DT1 .syx file and print it as hex.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	// kingpin input file, stdin when omitted
	file := app.Arg("file", "The .syx file to read.").String()
	if _, err := app.Parse(argv); err != nil {
		logger.WithError(err).Error("invalid arguments")
		return 1
	}

	in := stdin
	if *file != "" {
		fp, err := os.Open(*file)
		if err != nil {
			logger.WithError(err).Error("open failed")
			return 1
		}
		defer fp.Close()
		in = fp
	}

	frame, err := ioutil.ReadAll(in)
	if err != nil {
		logger.WithError(err).Error("read failed")
		return 1
	}
	msg, err := rolandsysex.Decode(rolandsysex.DefaultHeader(), frame)
	if err != nil {
		logger.WithError(err).WithField("length", len(frame)).Error("not a DT1 message")
		return 2
	}
	if err := rolandsysex.Render(stdout, msg, rolandsysex.Debug); err != nil {
		logger.WithError(err).Error("write failed")
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
