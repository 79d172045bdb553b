// internal/tkg/wire.go
package tkg

import (
	"bytes"
	"fmt"
)

// Wire format: seven two-digit lowercase hex groups joined by ',' and
// terminated by CRLF, e.g. "a4,3f,c1,7f,00,00,06\r\n".

const (
	wireSep = ','
	wireEOL = "\r\n"

	// WireSize is the exact encoded length: 7*2 hex + 6 separators + CRLF.
	WireSize = FrameSize*2 + (FrameSize - 1) + len(wireEOL)
)

const hexDigits = "0123456789abcdef"

// FormatError reports a wire line that cannot be decoded into a frame.
type FormatError struct {
	Line   string
	Token  int // index of the bad token, -1 for a count mismatch
	Reason string
}

func (e *FormatError) Error() string {
	if e.Token < 0 {
		return fmt.Sprintf("tkg: malformed wire line %q: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("tkg: malformed wire line %q: token %d: %s", e.Line, e.Token, e.Reason)
}

// Encode renders the frame as one wire message.
// No IO. Never fails.
func Encode(f Frame) []byte {
	out := make([]byte, 0, WireSize)
	for i, b := range f {
		if i > 0 {
			out = append(out, wireSep)
		}
		out = append(out, hexDigits[b>>4], hexDigits[b&0x0F])
	}
	return append(out, wireEOL...)
}

// Decode parses one wire message back into a frame.
// A trailing CR, LF or CRLF is accepted. The Crc byte is NOT verified here; use Check.
func Decode(line []byte) (Frame, error) {
	var f Frame

	raw := bytes.TrimRight(line, wireEOL)
	toks := bytes.Split(raw, []byte{wireSep})
	if len(toks) != FrameSize {
		return f, &FormatError{
			Line:   string(line),
			Token:  -1,
			Reason: fmt.Sprintf("want %d tokens, got %d", FrameSize, len(toks)),
		}
	}

	for i, tok := range toks {
		b, ok := parseHexByte(tok)
		if !ok {
			return f, &FormatError{
				Line:   string(line),
				Token:  i,
				Reason: fmt.Sprintf("%q is not a 2-digit hex byte", tok),
			}
		}
		f[i] = b
	}
	return f, nil
}

func parseHexByte(tok []byte) (byte, bool) {
	if len(tok) != 2 {
		return 0, false
	}
	hi, ok1 := nibble(tok[0])
	lo, ok2 := nibble(tok[1])
	return hi<<4 | lo, ok1 && ok2
}

// nibble accepts both cases on decode; Encode only ever writes lowercase.
func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
