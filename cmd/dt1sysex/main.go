// Copyright (c) 2018 Iori Mizutani
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

// A tool to build a Roland DT1 SysEx message with its checksum
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/structs"
	"github.com/iomz/rolandsysex"
	"github.com/iomz/rolandsysex/binutil"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Exit statuses
const (
	exitOK = iota
	exitFailure
	exitUsage
	exitMalformedToken
)

const usage = "Usage: dt1sysex [d] aa bb cc dd ee"

var (
	// Current Version
	version = "0.1.0"
)

type options struct {
	// kingpin verbose flag
	verbose *bool
	// kingpin Roland device ID
	device *string
	// kingpin Roland model ID
	model *string
	// kingpin positional [d] aa bb ...
	args *[]string
}

func newApp() (*kingpin.Application, *options) {
	// kingpin app
	app := kingpin.New("dt1sysex", "Build a Roland DT1 SysEx message. Writes the raw .syx bytes, or a hex dump with a leading d.")
	app.Version(version)
	opts := &options{
		verbose: app.Flag("verbose", "Log the computed message fields to stderr.").Short('v').Default("false").Bool(),
		device:  app.Flag("device", "Device ID as a hex byte.").Short('D').Default("10").String(),
		model:   app.Flag("model", "Model ID as hex bytes.").Short('m').Default("000077").String(),
		args:    app.Arg("args", "[d] followed by the address and data bytes in hex.").Strings(),
	}
	return app, opts
}

func parseHeader(device, model string) (rolandsysex.Header, error) {
	deviceID, err := binutil.ParseHexByte(device)
	if err != nil {
		return rolandsysex.Header{}, fmt.Errorf("device ID %q: %v", device, err)
	}
	modelID, err := binutil.ParseHexBytes(model)
	if err != nil || len(modelID) == 0 {
		return rolandsysex.Header{}, fmt.Errorf("model ID %q: %v", model, err)
	}
	return rolandsysex.NewHeader(deviceID, modelID), nil
}

func run(argv []string, stdout, stderr io.Writer) int {
	logger := logrus.New()
	logger.Out = stderr
	logger.Formatter = &logrus.TextFormatter{DisableTimestamp: true}

	app, opts := newApp()
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	if _, err := app.Parse(argv); err != nil {
		logger.WithError(err).Error("invalid arguments")
		return exitFailure
	}
	if *opts.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	header, err := parseHeader(*opts.device, *opts.model)
	if err != nil {
		logger.WithError(err).Error("invalid header")
		return exitFailure
	}

	mode, tokens := rolandsysex.ParseArgs(*opts.args)
	msg, err := rolandsysex.BuildWithHeader(header, tokens)
	if errors.Is(err, rolandsysex.ErrNoTokens) {
		fmt.Fprintln(stderr, usage)
		return exitUsage
	} else if rolandsysex.IsMalformedToken(err) {
		logger.WithError(err).Error("malformed byte token")
		return exitMalformedToken
	} else if err != nil {
		logger.WithError(err).Error("build failed")
		return exitFailure
	}

	logger.WithFields(structs.Map(msg.Report().InString())).
		WithField("mode", mode).
		Debug("built DT1 message")

	if err := rolandsysex.Render(stdout, msg, mode); err != nil {
		logger.WithError(err).Error("write failed")
		return exitFailure
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
