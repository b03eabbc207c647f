package subtitle

import (
	"fmt"
	"strconv"
	"strings"
)

// conversion rule for one field of a Style or Event row
type fieldKind int

const (
	kindRaw fieldKind = iota
	kindTimestamp
	kindColor
	kindBool      // serialized as -1 (true) / 0 (false)
	kindInt
	kindFloat
	kindAlignment // remapped through the legacy permutation for SSA
	kindMarked    // serialized as Marked=0 / Marked=1
)

type fieldSpec struct {
	name string
	kind fieldKind
}

var styleFields = map[Format][]fieldSpec{
	FormatASS: {
		{"fontname", kindRaw},
		{"fontsize", kindFloat},
		{"primarycolor", kindColor},
		{"secondarycolor", kindColor},
		{"outlinecolor", kindColor},
		{"backcolor", kindColor},
		{"bold", kindBool},
		{"italic", kindBool},
		{"underline", kindBool},
		{"strikeout", kindBool},
		{"scalex", kindFloat},
		{"scaley", kindFloat},
		{"spacing", kindFloat},
		{"angle", kindFloat},
		{"borderstyle", kindInt},
		{"outline", kindFloat},
		{"shadow", kindFloat},
		{"alignment", kindAlignment},
		{"marginl", kindInt},
		{"marginr", kindInt},
		{"marginv", kindInt},
		{"encoding", kindInt},
	},
	FormatSSA: {
		{"fontname", kindRaw},
		{"fontsize", kindFloat},
		{"primarycolor", kindColor},
		{"secondarycolor", kindColor},
		{"tertiarycolor", kindColor},
		{"backcolor", kindColor},
		{"bold", kindBool},
		{"italic", kindBool},
		{"borderstyle", kindInt},
		{"outline", kindFloat},
		{"shadow", kindFloat},
		{"alignment", kindAlignment},
		{"marginl", kindInt},
		{"marginr", kindInt},
		{"marginv", kindInt},
		{"alphalevel", kindInt},
		{"encoding", kindInt},
	},
}

var eventFields = map[Format][]fieldSpec{
	FormatASS: {
		{"layer", kindInt},
		{"start", kindTimestamp},
		{"end", kindTimestamp},
		{"style", kindRaw},
		{"name", kindRaw},
		{"marginl", kindInt},
		{"marginr", kindInt},
		{"marginv", kindInt},
		{"effect", kindRaw},
		{"text", kindRaw},
	},
	FormatSSA: {
		{"marked", kindMarked},
		{"start", kindTimestamp},
		{"end", kindTimestamp},
		{"style", kindRaw},
		{"name", kindRaw},
		{"marginl", kindInt},
		{"marginr", kindInt},
		{"marginv", kindInt},
		{"effect", kindRaw},
		{"text", kindRaw},
	},
}

var styleFormatLine = map[Format]string{
	FormatASS: "Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic," +
		" Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment," +
		" MarginL, MarginR, MarginV, Encoding",
	FormatSSA: "Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, TertiaryColour, BackColour, Bold, Italic," +
		" BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, AlphaLevel, Encoding",
}

var eventFormatLine = map[Format]string{
	FormatASS: "Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text",
	FormatSSA: "Format: Marked, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text",
}

// legacy corner numbering indexed by ASS numpad alignment minus one
var ssaAlignment = [9]int{1, 2, 3, 9, 10, 11, 5, 6, 7}

func assToSSAAlignment(i int) (int, error) {
	if i < 1 || i > 9 {
		return 0, fmt.Errorf("alignment %d out of range", i)
	}
	return ssaAlignment[i-1], nil
}

func ssaToASSAlignment(i int) (int, error) {
	for idx, v := range ssaAlignment {
		if v == i {
			return idx + 1, nil
		}
	}
	return 0, fmt.Errorf("unknown legacy alignment %d", i)
}

// converts one raw field value to its typed form per the field's kind
func decodeField(spec fieldSpec, raw string, f Format) (any, error) {
	switch spec.kind {
	case kindTimestamp:
		return DecodeTimestamp(raw)
	case kindColor:
		return DecodeColor(raw)
	case kindBool:
		return raw == "-1", nil
	case kindInt:
		return strconv.Atoi(raw)
	case kindFloat:
		return strconv.ParseFloat(raw, 64)
	case kindAlignment:
		i, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		if f == FormatSSA {
			return ssaToASSAlignment(i)
		}
		return i, nil
	case kindMarked:
		// tolerates both the bare digit and the Marked=1 literal form
		return strings.HasSuffix(raw, "1"), nil
	default:
		return raw, nil
	}
}

// renders one typed field value per the field's kind
//
// A value whose dynamic type does not match the kind is an EncodeTypeError.
func encodeField(spec fieldSpec, v any, f Format) (string, error) {
	switch spec.kind {
	case kindTimestamp:
		ms, ok := v.(int64)
		if !ok {
			return "", &EncodeTypeError{Field: spec.name, Value: v}
		}
		return EncodeTimestamp(ms), nil
	case kindColor:
		c, ok := v.(Color)
		if !ok {
			return "", &EncodeTypeError{Field: spec.name, Value: v}
		}
		return EncodeColor(c, f), nil
	case kindBool:
		b, ok := v.(bool)
		if !ok {
			return "", &EncodeTypeError{Field: spec.name, Value: v}
		}
		if b {
			return "-1", nil
		}
		return "0", nil
	case kindInt:
		i, ok := v.(int)
		if !ok {
			return "", &EncodeTypeError{Field: spec.name, Value: v}
		}
		return strconv.Itoa(i), nil
	case kindFloat:
		fl, ok := v.(float64)
		if !ok {
			return "", &EncodeTypeError{Field: spec.name, Value: v}
		}
		return strconv.FormatFloat(fl, 'g', -1, 64), nil
	case kindAlignment:
		i, ok := v.(int)
		if !ok {
			return "", &EncodeTypeError{Field: spec.name, Value: v}
		}
		if f == FormatSSA {
			a, err := assToSSAAlignment(i)
			if err != nil {
				return "", fmt.Errorf("field %q: %w", spec.name, err)
			}
			return strconv.Itoa(a), nil
		}
		return strconv.Itoa(i), nil
	case kindMarked:
		b, ok := v.(bool)
		if !ok {
			return "", &EncodeTypeError{Field: spec.name, Value: v}
		}
		if b {
			return "Marked=1", nil
		}
		return "Marked=0", nil
	default:
		s, ok := v.(string)
		if !ok {
			return "", &EncodeTypeError{Field: spec.name, Value: v}
		}
		return s, nil
	}
}

// decodes raw into its typed form and stores it on the style
func setStyleField(sty *Style, spec fieldSpec, raw string, f Format) error {
	v, err := decodeField(spec, raw, f)
	if err != nil {
		return err
	}
	switch spec.name {
	case "fontname":
		sty.Fontname = v.(string)
	case "fontsize":
		sty.Fontsize = v.(float64)
	case "primarycolor":
		sty.PrimaryColor = v.(Color)
	case "secondarycolor":
		sty.SecondaryColor = v.(Color)
	case "outlinecolor", "tertiarycolor":
		sty.OutlineColor = v.(Color)
	case "backcolor":
		sty.BackColor = v.(Color)
	case "bold":
		sty.Bold = v.(bool)
	case "italic":
		sty.Italic = v.(bool)
	case "underline":
		sty.Underline = v.(bool)
	case "strikeout":
		sty.Strikeout = v.(bool)
	case "scalex":
		sty.ScaleX = v.(float64)
	case "scaley":
		sty.ScaleY = v.(float64)
	case "spacing":
		sty.Spacing = v.(float64)
	case "angle":
		sty.Angle = v.(float64)
	case "borderstyle":
		sty.BorderStyle = v.(int)
	case "outline":
		sty.Outline = v.(float64)
	case "shadow":
		sty.Shadow = v.(float64)
	case "alignment":
		sty.Alignment = v.(int)
	case "marginl":
		sty.MarginL = v.(int)
	case "marginr":
		sty.MarginR = v.(int)
	case "marginv":
		sty.MarginV = v.(int)
	case "alphalevel":
		sty.AlphaLevel = v.(int)
	case "encoding":
		sty.Encoding = v.(int)
	}
	return nil
}

// returns the style field's current value for the encode dispatch
func styleFieldValue(sty *Style, name string) any {
	switch name {
	case "fontname":
		return sty.Fontname
	case "fontsize":
		return sty.Fontsize
	case "primarycolor":
		return sty.PrimaryColor
	case "secondarycolor":
		return sty.SecondaryColor
	case "outlinecolor", "tertiarycolor":
		return sty.OutlineColor
	case "backcolor":
		return sty.BackColor
	case "bold":
		return sty.Bold
	case "italic":
		return sty.Italic
	case "underline":
		return sty.Underline
	case "strikeout":
		return sty.Strikeout
	case "scalex":
		return sty.ScaleX
	case "scaley":
		return sty.ScaleY
	case "spacing":
		return sty.Spacing
	case "angle":
		return sty.Angle
	case "borderstyle":
		return sty.BorderStyle
	case "outline":
		return sty.Outline
	case "shadow":
		return sty.Shadow
	case "alignment":
		return sty.Alignment
	case "marginl":
		return sty.MarginL
	case "marginr":
		return sty.MarginR
	case "marginv":
		return sty.MarginV
	case "alphalevel":
		return sty.AlphaLevel
	case "encoding":
		return sty.Encoding
	}
	return nil
}

func setEventField(ev *Event, spec fieldSpec, raw string, f Format) error {
	v, err := decodeField(spec, raw, f)
	if err != nil {
		return err
	}
	switch spec.name {
	case "layer":
		ev.Layer = v.(int)
	case "marked":
		ev.Marked = v.(bool)
	case "start":
		ev.Start = v.(int64)
	case "end":
		ev.End = v.(int64)
	case "style":
		ev.Style = v.(string)
	case "name":
		ev.Name = v.(string)
	case "marginl":
		ev.MarginL = v.(int)
	case "marginr":
		ev.MarginR = v.(int)
	case "marginv":
		ev.MarginV = v.(int)
	case "effect":
		ev.Effect = v.(string)
	case "text":
		ev.Text = v.(string)
	}
	return nil
}

func eventFieldValue(ev *Event, name string) any {
	switch name {
	case "layer":
		return ev.Layer
	case "marked":
		return ev.Marked
	case "start":
		return ev.Start
	case "end":
		return ev.End
	case "style":
		return ev.Style
	case "name":
		return ev.Name
	case "marginl":
		return ev.MarginL
	case "marginr":
		return ev.MarginR
	case "marginv":
		return ev.MarginV
	case "effect":
		return ev.Effect
	case "text":
		return ev.Text
	}
	return nil
}
