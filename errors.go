// Copyright (c) 2018 Iori Mizutani
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

package rolandsysex

import (
	"errors"
	"fmt"
)

// ErrNoTokens is returned when no address/data byte is given
var ErrNoTokens = errors.New("no address/data bytes given")

// MalformedTokenError reports a token that is not exactly two hex digits
type MalformedTokenError struct {
	// Index of the token in the address/data sequence
	Index int
	// Token as given by the caller
	Token string
	// Err is the underlying parse error
	Err error
}

func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("malformed byte token %q at position %d: %v", e.Token, e.Index, e.Err)
}

func (e *MalformedTokenError) Unwrap() error {
	return e.Err
}

// IsMalformedToken returns true if err is or wraps a MalformedTokenError.
func IsMalformedToken(err error) bool {
	var mte *MalformedTokenError
	return errors.As(err, &mte)
}

// DecodeError is returned by Decode when a frame is not a valid DT1 message
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return "invalid DT1 frame: " + e.Reason
}
