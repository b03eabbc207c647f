package subtitle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// largest timestamp representable as H:MM:SS.cc, ie. 9:59:59.99
const MaxRepresentableTime int64 = 10*60*60*1000 - 10

var timestampRe = regexp.MustCompile(`^(\d+):(\d{2}):(\d{2})\.(\d{2})$`)

// converts an H:MM:SS.cc timestamp to milliseconds
//
// A leading minus sign is honored: negative timestamps are a permitted
// encoding even though the writer never emits them.
func DecodeTimestamp(s string) (int64, error) {
	neg := strings.HasPrefix(s, "-")
	body := strings.TrimPrefix(s, "-")

	m := timestampRe.FindStringSubmatch(body)
	if m == nil {
		return 0, fmt.Errorf("invalid timestamp %q", s)
	}

	h, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	mm, _ := strconv.ParseInt(m[2], 10, 64)
	ss, _ := strconv.ParseInt(m[3], 10, 64)
	cc, _ := strconv.ParseInt(m[4], 10, 64)

	ms := h*3600000 + mm*60000 + ss*1000 + cc*10
	if neg {
		ms = -ms
	}
	return ms, nil
}

// converts milliseconds to H:MM:SS.cc
//
// Input is clamped to [0, MaxRepresentableTime] and sub-centisecond
// precision is truncated, not rounded.
func EncodeTimestamp(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	if ms > MaxRepresentableTime {
		ms = MaxRepresentableTime
	}

	h := ms / 3600000
	ms %= 3600000
	m := ms / 60000
	ms %= 60000
	s := ms / 1000
	cs := (ms % 1000) / 10

	return fmt.Sprintf("%d:%02d:%02d.%02d", h, m, s, cs)
}
