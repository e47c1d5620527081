// Copyright (c) 2018 Iori Mizutani
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

package rolandsysex

import (
	"bytes"

	"github.com/iomz/rolandsysex/binutil"
	"gitlab.com/gomidi/midi/v2"
)

// Constant values
const (
	// RolandID is the Roland manufacturer ID
	RolandID = 0x41
	// DefaultDeviceID is the factory device ID, 17 = 10H
	DefaultDeviceID = 0x10
	// CommandDT1 is the Data Set 1 command ID
	CommandDT1 = 0x12
	// FrameOverhead is the number of bytes in a DT1 frame besides
	// the address/data bytes with the default header
	FrameOverhead = 9
)

// FA06ModelID is the three byte model ID of the FA-06
var FA06ModelID = []byte{0x00, 0x00, 0x77}

// Header holds the bytes between F0 and the address
type Header struct {
	Manufacturer byte
	DeviceID     byte
	ModelID      []byte
	Command      byte
}

// DefaultHeader returns the FA-06 DT1 header: 41 10 00 00 77 12
func DefaultHeader() Header {
	return NewHeader(DefaultDeviceID, FA06ModelID)
}

// NewHeader returns a DT1 header for a Roland device and model
func NewHeader(deviceID byte, modelID []byte) Header {
	return Header{
		Manufacturer: RolandID,
		DeviceID:     deviceID,
		ModelID:      append([]byte(nil), modelID...),
		Command:      CommandDT1,
	}
}

// Bytes returns the header without the leading F0
func (h Header) Bytes() []byte {
	return binutil.Pack([]interface{}{
		h.Manufacturer,
		h.DeviceID,
		h.ModelID,
		h.Command,
	})
}

// Message is an assembled DT1 message
type Message struct {
	Header Header
	Data   []byte
	Sum    Sum
}

// NewMessage computes the checksum of data and returns the message.
func NewMessage(header Header, data []byte) *Message {
	data = append([]byte(nil), data...)
	return &Message{
		Header: header,
		Data:   data,
		Sum:    Checksum(data),
	}
}

// Build parses the address/data tokens and assembles a DT1 message
// with the default header.
func Build(tokens []string) (*Message, error) {
	return BuildWithHeader(DefaultHeader(), tokens)
}

// BuildWithHeader is Build with a caller supplied header.
func BuildWithHeader(header Header, tokens []string) (*Message, error) {
	data, err := ParseTokens(tokens)
	if err != nil {
		return nil, err
	}
	return NewMessage(header, data), nil
}

// Checksum returns the checksum byte of the message
func (m *Message) Checksum() byte {
	return m.Sum.Checksum
}

// Bytes returns the full frame: F0, header, data, checksum, F7
func (m *Message) Bytes() []byte {
	hb := m.Header.Bytes()
	body := make([]byte, 0, len(hb)+len(m.Data)+1)
	body = append(body, hb...)
	body = append(body, m.Data...)
	body = append(body, m.Sum.Checksum)
	return []byte(midi.SysEx(body))
}

// Decode parses a DT1 frame built with header back into a Message.
// The checksum must be valid for the decoded address/data bytes.
func Decode(header Header, frame []byte) (*Message, error) {
	if len(frame) < 2 || frame[len(frame)-1] != 0xF7 {
		return nil, &DecodeError{"missing F0/F7 framing"}
	}
	var body []byte
	if !midi.Message(frame).GetSysEx(&body) {
		return nil, &DecodeError{"not a system exclusive message"}
	}

	hb := header.Bytes()
	if !bytes.HasPrefix(body, hb) {
		return nil, &DecodeError{"header mismatch"}
	}
	// at least one address/data byte and the checksum
	if len(body) < len(hb)+2 {
		return nil, &DecodeError{"no address/data bytes"}
	}

	data := body[len(hb) : len(body)-1]
	checksum := body[len(body)-1]
	if !Verify(data, checksum) {
		return nil, &DecodeError{"checksum mismatch"}
	}
	return NewMessage(header, data), nil
}
