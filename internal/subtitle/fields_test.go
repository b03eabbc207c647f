package subtitle

import (
	"errors"
	"strings"
	"testing"
)

func TestAlignmentRemapIsInvolution(t *testing.T) {
	for _, legacy := range []int{1, 2, 3, 5, 6, 7, 9, 10, 11} {
		canonical, err := ssaToASSAlignment(legacy)
		if err != nil {
			t.Fatalf("ssaToASSAlignment(%d) failed: %v", legacy, err)
		}
		back, err := assToSSAAlignment(canonical)
		if err != nil {
			t.Fatalf("assToSSAAlignment(%d) failed: %v", canonical, err)
		}
		if back != legacy {
			t.Errorf("alignment %d remapped to %d and back to %d", legacy, canonical, back)
		}
	}
}

func TestAlignmentRemapRejectsUnknownValues(t *testing.T) {
	if _, err := ssaToASSAlignment(4); err == nil {
		t.Error("legacy alignment 4 should be rejected")
	}
	if _, err := assToSSAAlignment(10); err == nil {
		t.Error("canonical alignment 10 should be rejected")
	}
}

func TestFieldTablesMatchHeaderLines(t *testing.T) {
	for _, f := range []Format{FormatASS, FormatSSA} {
		styleCols := strings.Split(strings.TrimPrefix(styleFormatLine[f], "Format: "), ", ")
		// the header's leading Name column is not part of the field table
		if len(styleCols) != len(styleFields[f])+1 {
			t.Errorf("%s: style header has %d columns, table has %d fields",
				f, len(styleCols), len(styleFields[f]))
		}

		eventCols := strings.Split(strings.TrimPrefix(eventFormatLine[f], "Format: "), ", ")
		if len(eventCols) != len(eventFields[f]) {
			t.Errorf("%s: event header has %d columns, table has %d fields",
				f, len(eventCols), len(eventFields[f]))
		}
	}
}

func TestDecodeFieldAlignmentRemapsOnlyLegacy(t *testing.T) {
	spec := fieldSpec{name: "alignment", kind: kindAlignment}

	v, err := decodeField(spec, "9", FormatSSA)
	if err != nil {
		t.Fatalf("decodeField failed: %v", err)
	}
	if v.(int) != 4 {
		t.Errorf("legacy alignment 9 decoded to %d, want 4", v.(int))
	}

	v, err = decodeField(spec, "9", FormatASS)
	if err != nil {
		t.Fatalf("decodeField failed: %v", err)
	}
	if v.(int) != 9 {
		t.Errorf("canonical alignment 9 decoded to %d, want 9", v.(int))
	}
}

func TestDecodeFieldMarkedToleratesLiteralForm(t *testing.T) {
	spec := fieldSpec{name: "marked", kind: kindMarked}
	for raw, want := range map[string]bool{
		"Marked=1": true,
		"Marked=0": false,
		"1":        true,
		"0":        false,
	} {
		v, err := decodeField(spec, raw, FormatSSA)
		if err != nil {
			t.Fatalf("decodeField(%q) failed: %v", raw, err)
		}
		if v.(bool) != want {
			t.Errorf("decodeField(%q) = %v, want %v", raw, v, want)
		}
	}
}

func TestEncodeFieldRejectsMismatchedType(t *testing.T) {
	spec := fieldSpec{name: "primarycolor", kind: kindColor}
	_, err := encodeField(spec, "notacolor", FormatASS)
	if err == nil {
		t.Fatal("expected EncodeTypeError")
	}
	var typeErr *EncodeTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected *EncodeTypeError, got %T", err)
	}
	if typeErr.Field != "primarycolor" {
		t.Errorf("error names field %q, want %q", typeErr.Field, "primarycolor")
	}
}

func TestEncodeFieldBooleans(t *testing.T) {
	spec := fieldSpec{name: "bold", kind: kindBool}
	if s, _ := encodeField(spec, true, FormatASS); s != "-1" {
		t.Errorf("true encoded as %q, want -1", s)
	}
	if s, _ := encodeField(spec, false, FormatASS); s != "0" {
		t.Errorf("false encoded as %q, want 0", s)
	}
}
