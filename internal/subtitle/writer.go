package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

const defaultNotice = "Script generated by lekha\nhttps://github.com/kavyap22/lekha"

var scriptType = map[Format]string{
	FormatASS: "v4.00+",
	FormatSSA: "v4.00",
}

var stylesHeading = map[Format]string{
	FormatASS: "[V4+ Styles]",
	FormatSSA: "[V4 Styles]",
}

// serializes the document as SubStation text
//
// The ScriptType info key is forced to the variant's canonical version
// string. Styles are written in insertion order, fonts sorted by name,
// events in list order.
func (d *Document) Write(w io.Writer, f Format) error {
	if err := validFormat(f); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "[Script Info]")
	notice := d.Notice
	if notice == "" {
		notice = defaultNotice
	}
	for _, line := range strings.Split(notice, "\n") {
		fmt.Fprintln(bw, ";", line)
	}

	d.Info.Set("ScriptType", scriptType[f])
	for _, k := range d.Info.Keys() {
		v, _ := d.Info.Get(k)
		fmt.Fprintf(bw, "%s: %s\n", k, v)
	}

	if d.Aegisub.Len() > 0 {
		fmt.Fprintln(bw, "\n[Aegisub Project Garbage]")
		for _, k := range d.Aegisub.Keys() {
			v, _ := d.Aegisub.Get(k)
			fmt.Fprintf(bw, "%s: %s\n", k, v)
		}
	}

	fmt.Fprintln(bw, "\n"+stylesHeading[f])
	fmt.Fprintln(bw, styleFormatLine[f])
	for _, name := range d.Styles.Names() {
		sty, _ := d.Styles.Get(name)
		row, err := styleRow(name, &sty, f)
		if err != nil {
			return err
		}
		fmt.Fprintln(bw, row)
	}

	if len(d.Fonts) > 0 {
		fmt.Fprintln(bw, "\n[Fonts]")
		names := make([]string, 0, len(d.Fonts))
		for name := range d.Fonts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(bw, "fontname: %s\n", name)
			for _, line := range d.Fonts[name] {
				fmt.Fprintln(bw, line)
			}
			fmt.Fprintln(bw)
		}
	}

	fmt.Fprintln(bw, "\n[Events]")
	fmt.Fprintln(bw, eventFormatLine[f])
	for i := range d.Events {
		row, err := eventRow(&d.Events[i], i, f)
		if err != nil {
			return err
		}
		fmt.Fprintln(bw, row)
	}

	return bw.Flush()
}

// true if s can be stored in a SubStation field; fields are written in
// CSV-like manner, so commas and newlines are not acceptable
func IsValidFieldContent(s string) bool {
	return !strings.Contains(s, "\n") && !strings.Contains(s, ",")
}

func styleRow(name string, sty *Style, f Format) (string, error) {
	if !IsValidFieldContent(name) {
		return "", fmt.Errorf("style name %q contains a comma or newline", name)
	}

	specs := styleFields[f]
	fields := make([]string, 0, len(specs)+1)
	fields = append(fields, name)
	for _, spec := range specs {
		s, err := encodeField(spec, styleFieldValue(sty, spec.name), f)
		if err != nil {
			return "", fmt.Errorf("style %q: %w", name, err)
		}
		if spec.kind == kindRaw && !IsValidFieldContent(s) {
			return "", fmt.Errorf(
				"style %q: field %q value %q contains a comma or newline",
				name, spec.name, s,
			)
		}
		fields = append(fields, s)
	}
	return "Style: " + strings.Join(fields, ","), nil
}

func eventRow(ev *Event, index int, f Format) (string, error) {
	typ := ev.Type
	if typ == "" {
		typ = EventDialogue
	}

	specs := eventFields[f]
	fields := make([]string, 0, len(specs))
	for _, spec := range specs {
		s, err := encodeField(spec, eventFieldValue(ev, spec.name), f)
		if err != nil {
			return "", fmt.Errorf("event %d: %w", index+1, err)
		}
		if spec.kind == kindRaw {
			// the trailing text field may hold commas, never newlines;
			// every other raw field must hold neither
			if spec.name == "text" {
				if strings.Contains(s, "\n") {
					return "", fmt.Errorf(
						"event %d: text contains a literal newline", index+1,
					)
				}
			} else if !IsValidFieldContent(s) {
				return "", fmt.Errorf(
					"event %d: field %q value %q contains a comma or newline",
					index+1, spec.name, s,
				)
			}
		}
		fields = append(fields, s)
	}
	return string(typ) + ": " + strings.Join(fields, ","), nil
}
