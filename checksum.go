// Copyright (c) 2018 Iori Mizutani
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

package rolandsysex

// ChecksumModulus is the Roland checksum base
const ChecksumModulus = 128

// Sum holds the intermediate values of the Roland checksum
type Sum struct {
	// Total of the address/data bytes, not masked to 8 bits
	Total int
	// Remainder is Total mod 128
	Remainder byte
	// Checksum makes Total + Checksum a multiple of 128
	Checksum byte
}

// Checksum computes the Roland checksum over the address/data bytes.
func Checksum(data []byte) Sum {
	total := 0
	for _, b := range data {
		total += int(b)
	}
	remainder := total % ChecksumModulus
	checksum := ChecksumModulus - remainder
	if checksum == ChecksumModulus {
		checksum = 0
	}
	return Sum{
		Total:     total,
		Remainder: byte(remainder),
		Checksum:  byte(checksum),
	}
}

// Verify returns true if checksum is the valid Roland checksum for data.
func Verify(data []byte, checksum byte) bool {
	if checksum >= ChecksumModulus {
		return false
	}
	return (Checksum(data).Total+int(checksum))%ChecksumModulus == 0
}
