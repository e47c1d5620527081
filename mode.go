// Copyright (c) 2018 Iori Mizutani
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

package rolandsysex

// Mode selects how a message is rendered
type Mode int

const (
	// Binary writes the raw frame, the content of a .syx file
	Binary Mode = iota
	// Debug writes the intermediate values and the frame as hex text
	Debug
)

// DebugArg is the leading argument that selects Debug
const DebugArg = "d"

func (m Mode) String() string {
	switch m {
	case Binary:
		return "binary"
	case Debug:
		return "debug"
	}
	return "unknown"
}

// ParseArgs splits the optional leading "d" from the byte tokens.
func ParseArgs(args []string) (Mode, []string) {
	if len(args) > 0 && args[0] == DebugArg {
		return Debug, args[1:]
	}
	return Binary, args
}
