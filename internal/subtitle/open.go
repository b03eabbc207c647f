package subtitle

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// sniffs which SubStation variant a payload holds
func DetectFormat(text string) (Format, bool) {
	switch {
	case strings.Contains(text, "V4+ Styles"):
		return FormatASS, true
	case strings.Contains(text, "V4 Styles"):
		return FormatSSA, true
	}
	return "", false
}

// reads and parses a SubStation file, sniffing the variant from its content
func Open(path string) (*Document, Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open subtitle file: %w", err)
	}

	f, ok := DetectFormat(string(data))
	if !ok {
		return nil, "", fmt.Errorf("no SubStation styles section found in %s", path)
	}

	doc := NewDocument()
	if err := doc.Parse(bytes.NewReader(data), f); err != nil {
		return nil, "", err
	}
	return doc, f, nil
}
