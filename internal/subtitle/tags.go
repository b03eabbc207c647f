package subtitle

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	overrideSequenceRe = regexp.MustCompile(`\{[^}]*\}`)

	// the four style toggles with one digit, drawing mode, and style reset
	// with an optional style name; anything else inside braces is ignored
	overrideTagRe = regexp.MustCompile(`\\[ibusp][0-9]|\\r[a-zA-Z_0-9 ]*`)
)

// slice of event text paired with the style in effect for it
type Fragment struct {
	Text  string
	Style Style
}

// splits event text into style-homogeneous fragments
//
// Each brace-delimited override sequence is removed from the text; the
// style of fragment i is base modified by every recognized tag in all
// sequences preceding it. Literal \N, \n and \h escapes are plain text to
// this function and pass through untouched. The concatenated fragment texts
// reconstruct the input exactly. styles supplies the targets of \r<name>
// resets and may be nil.
func ResolveTags(text string, base Style, styles *Styles) []Fragment {
	parts := overrideSequenceRe.Split(text, -1)
	if len(parts) == 1 {
		return []Fragment{{Text: text, Style: base}}
	}

	overrides := overrideSequenceRe.FindAllString(text, -1)

	fragments := make([]Fragment, len(parts))
	for i, part := range parts {
		// the style is recomputed from the full override prefix rather
		// than carried forward fragment to fragment, so malformed tag
		// handling stays order-stable
		prefix := strings.Join(overrides[:i], "")
		fragments[i] = Fragment{Text: part, Style: applyOverrides(prefix, base, styles)}
	}
	return fragments
}

func applyOverrides(sequence string, base Style, styles *Styles) Style {
	s := base
	for _, tag := range overrideTagRe.FindAllString(sequence, -1) {
		switch {
		case tag == `\r`:
			s = base
		case strings.HasPrefix(tag, `\r`):
			if styles == nil {
				continue
			}
			if named, ok := styles.Get(tag[2:]); ok {
				s = named
			}
		default:
			on := strings.Contains(tag, "1")
			switch tag[1] {
			case 'i':
				s.Italic = on
			case 'b':
				s.Bold = on
			case 'u':
				s.Underline = on
			case 's':
				s.Strikeout = on
			case 'p':
				scale, err := strconv.Atoi(tag[2:])
				if err != nil {
					continue
				}
				s.Drawing = scale > 0
			}
		}
	}
	return s
}
