package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	// up to 3 filler characters tolerated before the bracket for BOM bytes;
	// the lowercase-letter requirement keeps uuencoded font data from
	// matching as a heading
	sectionHeadingRe = regexp.MustCompile(`^.{0,3}\[[^\]]*[a-z][^\]]*\]`)

	fontHeadingRe = regexp.MustCompile(`^fontname:\s+(\S+)`)
)

// reads one SubStation script into the document
//
// Info, Aegisub, Styles and Fonts are cleared before populating; Events are
// appended to, so repeated parses merge event lists across files. Malformed
// lines inside the metadata sections are skipped; malformed Style, Dialogue
// and Comment lines abort the parse.
func (d *Document) Parse(r io.Reader, f Format) error {
	if err := validFormat(f); err != nil {
		return err
	}

	d.Info.Clear()
	d.Aegisub.Clear()
	d.Styles.Clear()
	for k := range d.Fonts {
		delete(d.Fonts, k)
	}

	var (
		insideInfo    bool
		insideAegisub bool
		insideFonts   bool
		fontName      string
		fontLines     []string
	)

	scanner := bufio.NewScanner(r)
	// drawing commands and font payloads produce very long lines
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case sectionHeadingRe.MatchString(line):
			if d.Log != nil {
				d.Log.Debugw("section heading", "line", lineno, "heading", line)
			}
			insideInfo = strings.Contains(line, "Info")
			insideAegisub = strings.Contains(line, "Aegisub")
			insideFonts = strings.Contains(line, "Fonts")

		case insideInfo || insideAegisub:
			if strings.HasPrefix(line, ";") {
				continue
			}
			k, v, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			if insideInfo {
				d.Info.Set(k, strings.TrimSpace(v))
			} else {
				d.Aegisub.Set(k, strings.TrimSpace(v))
			}

		case insideFonts:
			m := fontHeadingRe.FindStringSubmatch(line)

			if fontName != "" && (m != nil || line == "") {
				// flush on blank line or the next fontname heading
				d.Fonts[fontName] = append([]string(nil), fontLines...)
				if d.Log != nil {
					d.Log.Debugw("finished font definition",
						"line", lineno, "font", fontName)
				}
				fontLines = fontLines[:0]
				fontName = ""
			}

			if m != nil {
				fontName = m[1]
			} else if line != "" {
				fontLines = append(fontLines, line)
			}

		case strings.HasPrefix(line, "Style:"):
			if err := d.parseStyleLine(line, lineno, f); err != nil {
				return err
			}

		case strings.HasPrefix(line, "Dialogue:") || strings.HasPrefix(line, "Comment:"):
			if err := d.parseEventLine(line, lineno, f); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	// a font still buffered at EOF, or cut off by a new section without a
	// separating blank line, is committed as-is
	if fontName != "" {
		d.Fonts[fontName] = append([]string(nil), fontLines...)
	}

	return nil
}

func (d *Document) parseStyleLine(line string, lineno int, f Format) error {
	_, rest, ok := strings.Cut(line, ":")
	if !ok {
		return &MalformedLineError{Line: lineno, Content: line}
	}

	specs := styleFields[f]
	parts := strings.Split(strings.TrimSpace(rest), ",")
	if len(parts) != len(specs)+1 {
		return &MalformedLineError{Line: lineno, Content: line}
	}

	name := parts[0]
	sty := DefaultStyle()
	for i, spec := range specs {
		if err := setStyleField(&sty, spec, parts[i+1], f); err != nil {
			return &FieldDecodeError{
				Line: lineno, Field: spec.name, Value: parts[i+1], Err: err,
			}
		}
	}
	d.Styles.Set(name, sty)
	return nil
}

func (d *Document) parseEventLine(line string, lineno int, f Format) error {
	evType, rest, ok := strings.Cut(line, ":")
	if !ok {
		return &MalformedLineError{Line: lineno, Content: line}
	}

	specs := eventFields[f]
	// the bounded split lets the trailing text field absorb embedded commas
	parts := strings.SplitN(strings.TrimSpace(rest), ",", len(specs))
	if len(parts) != len(specs) {
		return &MalformedLineError{Line: lineno, Content: line}
	}

	ev := Event{Type: EventType(evType)}
	for i, spec := range specs {
		if err := setEventField(&ev, spec, parts[i], f); err != nil {
			return &FieldDecodeError{
				Line: lineno, Field: spec.name, Value: parts[i], Err: err,
			}
		}
	}
	d.Events = append(d.Events, ev)
	return nil
}
