package subtitle

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// parses a raw downloaded payload under its declared character set
//
// encoding is an IANA/WHATWG charset name such as windows-1252 or
// iso-8859-8; empty means UTF-8. An unknown charset fails before any
// parsing happens.
func FromBytes(data []byte, encoding string, f Format) (*Document, error) {
	if err := validFormat(f); err != nil {
		return nil, err
	}

	var r io.Reader = bytes.NewReader(data)
	if encoding != "" && !strings.EqualFold(encoding, "utf-8") {
		enc, err := htmlindex.Get(encoding)
		if err != nil {
			return nil, fmt.Errorf("unknown encoding %q: %w", encoding, err)
		}
		r = transform.NewReader(r, enc.NewDecoder())
	}

	doc := NewDocument()
	if err := doc.Parse(r, f); err != nil {
		return nil, err
	}
	return doc, nil
}
