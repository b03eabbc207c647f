package cli

import (
	"strings"
	"testing"
)

func TestOutputPathFor(t *testing.T) {
	tests := []struct {
		path string
		ext  string
		want string
	}{
		{"movie.ass", "ssa", "movie.ssa"},
		{"dir/movie.ssa", "ass", "dir/movie.ass"},
		{"noext", "ass", "noext.ass"},
		{"movie.ass", "stripped.ass", "movie.stripped.ass"},
	}

	for _, tt := range tests {
		if got := outputPathFor(tt.path, tt.ext); got != tt.want {
			t.Errorf("outputPathFor(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
		}
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"Key", "Value"},
		[][]string{{"Title", "Example"}, {"PlayResX"}},
		[]columnAlignment{alignLeft, alignRight},
	)

	if !strings.Contains(out, "Title") || !strings.Contains(out, "Example") {
		t.Errorf("rendered table missing cells:\n%s", out)
	}
	if !strings.Contains(out, "PlayResX") {
		t.Errorf("short rows should be padded, got:\n%s", out)
	}
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	if out := renderTable(nil, nil, nil); out != "" {
		t.Errorf("expected empty string, got %q", out)
	}
}
