// Copyright (c) 2018 Iori Mizutani
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

package binutil

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrHexByteLength is returned when a hex byte is not exactly two runes
	ErrHexByteLength = errors.New("hex byte must be exactly two hex digits")
)

// Pack the data into a big-endian byte slice.
func Pack(data []interface{}) []byte {
	buf := new(bytes.Buffer)
	for _, v := range data {
		binary.Write(buf, binary.BigEndian, v)
	}
	return buf.Bytes()
}

// ParseHexByte converts a two-digit hex string to a byte
// Precondition: len(s) == 2
func ParseHexByte(s string) (byte, error) {
	if len(s) != 2 {
		return 0, ErrHexByteLength
	}
	// ParseUint accepts neither sign nor prefix with base 16, so only
	// the 0-9a-fA-F runes pass
	n, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, err
	}
	return byte(n), nil
}

// ParseHexBytes converts a run of two-digit hex pairs ("000077") to bytes
func ParseHexBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, ErrHexByteLength
	}
	bs := make([]byte, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		b, err := ParseHexByte(s[i : i+2])
		if err != nil {
			return nil, err
		}
		bs = append(bs, b)
	}
	return bs, nil
}

// FormatHexBytes renders each byte as "%02x " (with the trailing space)
func FormatHexBytes(bs []byte) string {
	var sb strings.Builder
	for _, b := range bs {
		fmt.Fprintf(&sb, "%02x ", b)
	}
	return sb.String()
}
