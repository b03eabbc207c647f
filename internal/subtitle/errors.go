package subtitle

import (
	"errors"
	"fmt"
)

// returned when a caller names a format variant other than ass or ssa
var ErrUnsupportedFormat = errors.New("unsupported SubStation format variant")

// reports a Style/Dialogue/Comment line whose colon or comma structure
// does not match the format's field table
type MalformedLineError struct {
	Line    int
	Content string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed line %d: %q", e.Line, e.Content)
}

// reports a field value that failed its type-specific parse
type FieldDecodeError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *FieldDecodeError) Error() string {
	return fmt.Sprintf(
		"line %d: cannot decode field %q from %q: %v",
		e.Line, e.Field, e.Value, e.Err,
	)
}

func (e *FieldDecodeError) Unwrap() error {
	return e.Err
}

// reports a field whose runtime value the writer cannot serialize
type EncodeTypeError struct {
	Field string
	Value any
}

func (e *EncodeTypeError) Error() string {
	return fmt.Sprintf(
		"cannot encode field %q: unexpected value %v of type %T",
		e.Field, e.Value, e.Value,
	)
}

func validFormat(f Format) error {
	switch f {
	case FormatASS, FormatSSA:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
}

// maps a user-supplied variant name to a Format
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatASS:
		return FormatASS, nil
	case FormatSSA:
		return FormatSSA, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}
