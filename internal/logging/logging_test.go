package logging

import (
	"testing"
)

func TestNewLogger(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		logger := NewLogger(verbose)
		if logger == nil || logger.SugaredLogger == nil {
			t.Fatalf("NewLogger(%v) returned nil logger", verbose)
		}
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	// must not panic
	logger.Debugw("discarded", "key", "value")
	logger.Infow("discarded")
}
