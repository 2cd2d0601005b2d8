package bitmem

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by integer division and remainder when the divisor is zero.
	ErrDivisionByZero = errors.New("bitmem: division by zero")

	// ErrParseSyntax is wrapped by ErrParse when the input contains a character other than '0' or '1'.
	ErrParseSyntax = errors.New("invalid binary digit")
	// ErrParseRange is wrapped by ErrParse when the input has more digits than the target width.
	ErrParseRange = errors.New("too many binary digits")
)

type ErrIndexOutOfRange struct {
	Index int
	Len   int
}

func (e ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("bitmem: index %d out of range for %d bits", e.Index, e.Len)
}

type ErrParse struct {
	Input string
	// Pos is the offset of the offending character, or -1 if the whole input is at fault.
	Pos   int
	Width int
	Err   error
}

func (e *ErrParse) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("bitmem: parsing %q as %d bits: %v", e.Input, e.Width, e.Err)
	}
	return fmt.Sprintf("bitmem: parsing %q as %d bits: %v at offset %d", e.Input, e.Width, e.Err, e.Pos)
}

func (e *ErrParse) Unwrap() error {
	return e.Err
}

type ErrEncodingLength struct {
	Want int
	Got  int
}

func (e ErrEncodingLength) Error() string {
	return fmt.Sprintf("bitmem: wrong encoding length. want=%d bytes, got=%d", e.Want, e.Got)
}
