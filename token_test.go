package rolandsysex

import (
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/iomz/rolandsysex/binutil"
)

func TestParseTokens(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		want    []byte
		wantErr bool
	}{
		{"fa06 example", []string{"01", "50", "12", "45", "FD"}, []byte{0x01, 0x50, 0x12, 0x45, 0xfd}, false},
		{"case insensitive", []string{"1a", "1A", "fD"}, []byte{0x1a, 0x1a, 0xfd}, false},
		{"single", []string{"80"}, []byte{0x80}, false},
		{"too large", []string{"18", "100"}, nil, true},
		{"one digit", []string{"1"}, nil, true},
		{"not hex", []string{"18", "00", "zz"}, nil, true},
		{"prefixed", []string{"0x18"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTokens(tt.tokens)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseTokens(%v) error = %v, wantErr %v", tt.tokens, err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTokens(%v) = %v, want %v", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestParseTokensEmpty(t *testing.T) {
	for _, tokens := range [][]string{nil, {}} {
		if _, err := ParseTokens(tokens); err != ErrNoTokens {
			t.Errorf("ParseTokens(%v) error = %v, want %v", tokens, err, ErrNoTokens)
		}
	}
}

func TestMalformedTokenError(t *testing.T) {
	_, err := ParseTokens([]string{"18", "00", "zz", "00"})
	if !IsMalformedToken(err) {
		t.Fatalf("IsMalformedToken(%v) = false", err)
	}

	var mte *MalformedTokenError
	if !errors.As(err, &mte) {
		t.Fatalf("errors.As(%v) = false", err)
	}
	if mte.Index != 2 || mte.Token != "zz" {
		t.Errorf("MalformedTokenError = {%d %q}, want {2 \"zz\"}", mte.Index, mte.Token)
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("errors.Is(%v, strconv.ErrSyntax) = false", err)
	}

	_, err = ParseTokens([]string{"100"})
	if !errors.Is(err, binutil.ErrHexByteLength) {
		t.Errorf("errors.Is(%v, binutil.ErrHexByteLength) = false", err)
	}
	if IsMalformedToken(ErrNoTokens) {
		t.Errorf("IsMalformedToken(ErrNoTokens) = true")
	}
}
