package subtitle

import (
	"github.com/kavyap22/lekha/internal/logging"
)

// represents the two SubStation format variants
type Format string

const (
	FormatASS Format = "ass" // Advanced SubStation Alpha (v4.00+)
	FormatSSA Format = "ssa" // legacy SubStation Alpha (v4.00)
)

// represents the kind of a timed event
type EventType string

const (
	EventDialogue EventType = "Dialogue"
	EventComment  EventType = "Comment"
)

// RGBA color as stored in style and event fields
type Color struct {
	R, G, B, A uint8
}

// named text style
//
// Alignment always holds the ASS numpad numbering; conversion to the legacy
// corner numbering happens only when reading or writing SSA text.
type Style struct {
	Fontname       string
	Fontsize       float64
	PrimaryColor   Color
	SecondaryColor Color
	OutlineColor   Color // TertiaryColour in legacy SSA
	BackColor      Color
	Bold           bool
	Italic         bool
	Underline      bool // not representable in legacy SSA
	Strikeout      bool // not representable in legacy SSA
	ScaleX         float64
	ScaleY         float64
	Spacing        float64
	Angle          float64
	BorderStyle    int
	Outline        float64
	Shadow         float64
	Alignment      int
	MarginL        int
	MarginR        int
	MarginV        int
	AlphaLevel     int // legacy SSA only
	Encoding       int
	Drawing        bool // set by the \p override tag, never serialized
}

// returns the stock style used when a field is absent from the source line
func DefaultStyle() Style {
	return Style{
		Fontname:       "Arial",
		Fontsize:       20,
		PrimaryColor:   Color{R: 255, G: 255, B: 255},
		SecondaryColor: Color{R: 255},
		ScaleX:         100,
		ScaleY:         100,
		BorderStyle:    1,
		Outline:        2,
		Shadow:         2,
		Alignment:      2,
		MarginL:        10,
		MarginR:        10,
		MarginV:        10,
		Encoding:       1,
	}
}

// single timed event (a Dialogue or Comment row)
//
// Start and End are milliseconds. Style is a name reference into the
// document's style map; dangling references are legal. Layer is ASS only,
// Marked is legacy SSA only.
type Event struct {
	Type    EventType
	Start   int64
	End     int64
	Style   string
	Name    string
	MarginL int
	MarginR int
	MarginV int
	Effect  string
	Text    string
	Layer   int
	Marked  bool
}

// string-to-string mapping that remembers insertion order
type Metadata struct {
	keys   []string
	values map[string]string
}

func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string]string)}
}

func (m *Metadata) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *Metadata) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Metadata) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

func (m *Metadata) Len() int {
	return len(m.keys)
}

// keys in insertion order
func (m *Metadata) Keys() []string {
	return append([]string(nil), m.keys...)
}

func (m *Metadata) Clear() {
	m.keys = m.keys[:0]
	for k := range m.values {
		delete(m.values, k)
	}
}

// name-to-style mapping that remembers insertion order
type Styles struct {
	names  []string
	byName map[string]Style
}

func NewStyles() *Styles {
	return &Styles{byName: make(map[string]Style)}
}

func (s *Styles) Set(name string, style Style) {
	if _, ok := s.byName[name]; !ok {
		s.names = append(s.names, name)
	}
	s.byName[name] = style
}

func (s *Styles) Get(name string) (Style, bool) {
	st, ok := s.byName[name]
	return st, ok
}

func (s *Styles) Delete(name string) {
	if _, ok := s.byName[name]; !ok {
		return
	}
	delete(s.byName, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
}

func (s *Styles) Len() int {
	return len(s.names)
}

// style names in insertion order
func (s *Styles) Names() []string {
	return append([]string(nil), s.names...)
}

func (s *Styles) Clear() {
	s.names = s.names[:0]
	for k := range s.byName {
		delete(s.byName, k)
	}
}

// in-memory SubStation script
//
// Fonts holds the opaque UU-encoded payload lines of each embedded font,
// keyed by filename; the content is passed through unparsed. Notice, when
// non-empty, replaces the default attribution comment written at the top of
// the [Script Info] section. Log, when non-nil, receives debug events during
// parsing.
type Document struct {
	Info    *Metadata
	Aegisub *Metadata
	Styles  *Styles
	Events  []Event
	Fonts   map[string][]string
	Notice  string
	Log     *logging.Logger
}

func NewDocument() *Document {
	return &Document{
		Info:    NewMetadata(),
		Aegisub: NewMetadata(),
		Styles:  NewStyles(),
		Fonts:   make(map[string][]string),
	}
}
