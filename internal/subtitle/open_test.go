package subtitle

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		text   string
		want   Format
		wantOK bool
	}{
		{"[V4+ Styles]\n", FormatASS, true},
		{"[V4 Styles]\n", FormatSSA, true},
		{"WEBVTT\n", "", false},
	}

	for _, tt := range tests {
		got, ok := DetectFormat(tt.text)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("DetectFormat(%q) = %q, %v; want %q, %v",
				tt.text, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestOpenSniffsVariant(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.ass")
	if err := os.WriteFile(path, []byte(assFixture), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	doc, format, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if format != FormatASS {
		t.Errorf("format = %q, want ass", format)
	}
	if len(doc.Events) != 2 {
		t.Errorf("expected 2 events, got %d", len(doc.Events))
	}
}

func TestOpenRejectsNonSubStationContent(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.srt")
	if err := os.WriteFile(path, []byte("1\n00:00:01,000 --> 00:00:02,000\nhi\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, _, err := Open(path); err == nil {
		t.Error("expected error for non-SubStation content")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, _, err := Open(filepath.Join(t.TempDir(), "absent.ass")); err == nil {
		t.Error("expected error for missing file")
	}
}
