// Copyright (c) 2018 Iori Mizutani
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

package rolandsysex

import (
	"github.com/iomz/rolandsysex/binutil"
)

// ParseToken decodes a single byte token such as "1a" or "FD".
func ParseToken(token string) (byte, error) {
	return binutil.ParseHexByte(token)
}

// ParseTokens decodes the address/data sequence in order.
// The whole sequence fails on the first malformed token.
func ParseTokens(tokens []string) ([]byte, error) {
	if len(tokens) == 0 {
		return nil, ErrNoTokens
	}
	data := make([]byte, len(tokens))
	for i, token := range tokens {
		b, err := ParseToken(token)
		if err != nil {
			return nil, &MalformedTokenError{Index: i, Token: token, Err: err}
		}
		data[i] = b
	}
	return data, nil
}
