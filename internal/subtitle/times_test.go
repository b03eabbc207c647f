package subtitle

import (
	"testing"
)

func TestEncodeTimestamp(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0:00:00.00"},
		{3661010, "1:01:01.01"},
		{-5, "0:00:00.00"},
		{MaxRepresentableTime, "9:59:59.99"},
		{MaxRepresentableTime + 1000, "9:59:59.99"},
		{1005, "0:00:01.00"}, // sub-centisecond precision truncates
		{1019, "0:00:01.01"},
	}

	for _, tt := range tests {
		if got := EncodeTimestamp(tt.ms); got != tt.want {
			t.Errorf("EncodeTimestamp(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestDecodeTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"0:00:00.00", 0},
		{"1:01:01.01", 3661010},
		{"9:59:59.99", MaxRepresentableTime},
		{"-0:00:05.00", -5000},
		{"12:00:00.00", 43200000}, // hours are not width-limited
	}

	for _, tt := range tests {
		got, err := DecodeTimestamp(tt.in)
		if err != nil {
			t.Errorf("DecodeTimestamp(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DecodeTimestamp(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDecodeTimestampRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{"", "1:2:3.4", "0:00:00,00", "0:00:00.000", "abc"} {
		if _, err := DecodeTimestamp(in); err == nil {
			t.Errorf("DecodeTimestamp(%q) should fail", in)
		}
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	for _, ms := range []int64{0, 10, 3661010, 35999990} {
		decoded, err := DecodeTimestamp(EncodeTimestamp(ms))
		if err != nil {
			t.Fatalf("round trip of %d failed: %v", ms, err)
		}
		if decoded != ms {
			t.Errorf("round trip of %d yielded %d", ms, decoded)
		}
	}
}
