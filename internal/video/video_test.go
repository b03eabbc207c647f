package video

import (
	"testing"
)

func TestParseProbeOutputFiltersSubtitleStreams(t *testing.T) {
	data := []byte(`{
		"streams": [
			{"codec_name": "h264", "codec_type": "video"},
			{"codec_name": "aac", "codec_type": "audio", "tags": {"language": "eng"}},
			{"codec_name": "ass", "codec_type": "subtitle", "tags": {"language": "eng", "title": "Dialogue"}},
			{"codec_name": "subrip", "codec_type": "subtitle", "tags": {"language": "jpn"}}
		]
	}`)

	streams, err := parseProbeOutput(data)
	if err != nil {
		t.Fatalf("parseProbeOutput failed: %v", err)
	}
	if len(streams) != 2 {
		t.Fatalf("expected 2 subtitle streams, got %d", len(streams))
	}

	if streams[0].Index != 0 || streams[0].Codec != "ass" ||
		streams[0].Language != "eng" || streams[0].Title != "Dialogue" {
		t.Errorf("stream 0 = %+v", streams[0])
	}
	if streams[1].Index != 1 || streams[1].Codec != "subrip" || streams[1].Language != "jpn" {
		t.Errorf("stream 1 = %+v", streams[1])
	}
}

func TestParseProbeOutputRejectsGarbage(t *testing.T) {
	if _, err := parseProbeOutput([]byte("not json")); err == nil {
		t.Error("expected error for invalid probe output")
	}
}

func TestParseProbeOutputNoSubtitles(t *testing.T) {
	streams, err := parseProbeOutput([]byte(`{"streams": [{"codec_type": "video"}]}`))
	if err != nil {
		t.Fatalf("parseProbeOutput failed: %v", err)
	}
	if len(streams) != 0 {
		t.Errorf("expected no streams, got %d", len(streams))
	}
}
