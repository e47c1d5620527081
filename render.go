// Copyright (c) 2018 Iori Mizutani
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

package rolandsysex

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/iomz/rolandsysex/binutil"
)

// Banner is the first line of the Debug rendering
const Banner = "ROLAND SySex Checksum Calculator"

// Report holds every value derived from a message
type Report struct {
	Data      []byte
	Sum       int
	Remainder byte
	Checksum  byte
	Frame     []byte
}

// ReportInString to represent Report struct all in string
type ReportInString struct {
	Data      string `structs:"data"`
	Sum       string `structs:"sum"`
	Remainder string `structs:"remainder"`
	Checksum  string `structs:"checksum"`
	Frame     string `structs:"frame"`
	Length    int    `structs:"length"`
}

// Report returns the values shown in Debug mode
func (m *Message) Report() Report {
	return Report{
		Data:      m.Data,
		Sum:       m.Sum.Total,
		Remainder: m.Sum.Remainder,
		Checksum:  m.Sum.Checksum,
		Frame:     m.Bytes(),
	}
}

// InString returns the Report in ReportInString
func (r Report) InString() *ReportInString {
	return &ReportInString{
		Data:      fmt.Sprintf("% x", r.Data),
		Sum:       strconv.FormatInt(int64(r.Sum), 16),
		Remainder: fmt.Sprintf("%02x", r.Remainder),
		Checksum:  fmt.Sprintf("%02x", r.Checksum),
		Frame:     fmt.Sprintf("% x", r.Frame),
		Length:    len(r.Frame),
	}
}

// WriteDebug writes the report as text
func (r Report) WriteDebug(w io.Writer) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, Banner)
	fmt.Fprint(&buf, "data      :")
	for _, b := range r.Data {
		fmt.Fprintf(&buf, " %02x", b)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "sum       : %02x\n", r.Sum)
	fmt.Fprintf(&buf, "remainder : %02x\n", r.Remainder)
	fmt.Fprintf(&buf, "checksum  : %02x\n", r.Checksum)
	fmt.Fprintln(&buf, binutil.FormatHexBytes(r.Frame))

	_, err := w.Write(buf.Bytes())
	return err
}

// Render writes the message to w in the given mode.
// Nothing is written if mode is unknown.
func Render(w io.Writer, m *Message, mode Mode) error {
	switch mode {
	case Debug:
		return m.Report().WriteDebug(w)
	case Binary:
		_, err := w.Write(m.Bytes())
		return err
	}
	return fmt.Errorf("unknown mode %d", int(mode))
}
