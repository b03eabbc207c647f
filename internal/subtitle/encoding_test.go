package subtitle

import (
	"errors"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestFromBytesUTF8(t *testing.T) {
	doc, err := FromBytes([]byte(assFixture), "", FormatASS)
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}
	if len(doc.Events) != 2 {
		t.Errorf("expected 2 events, got %d", len(doc.Events))
	}
}

func TestFromBytesDeclaredEncoding(t *testing.T) {
	text := "[Script Info]\nTitle: Café\n"
	encoded, err := charmap.Windows1252.NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatalf("failed to build fixture: %v", err)
	}

	doc, err := FromBytes(encoded, "windows-1252", FormatASS)
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}
	if v, _ := doc.Info.Get("Title"); v != "Café" {
		t.Errorf("Title = %q, want %q", v, "Café")
	}
}

func TestFromBytesUnknownEncoding(t *testing.T) {
	_, err := FromBytes([]byte(assFixture), "no-such-charset", FormatASS)
	if err == nil {
		t.Fatal("expected error for unknown encoding")
	}
}

func TestFromBytesRejectsUnknownVariant(t *testing.T) {
	_, err := FromBytes([]byte(assFixture), "", Format("srt"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}
