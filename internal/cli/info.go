package cli

import (
	"fmt"
	"strconv"

	"github.com/kavyap22/lekha/internal/subtitle"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [subtitle_file]",
	Short: "Show script metadata, styles and event statistics",
	Long: `Show a summary of a SubStation script: the [Script Info] metadata,
the defined styles, and statistics over the timed events.

Examples:
  lekha info movie.ass
  lekha info movie.ssa --events 10`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().
		IntP("events", "n", 0, "Also list the first N events")
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]
	showEvents, _ := cmd.Flags().GetInt("events")

	doc, format, err := subtitle.Open(path)
	if err != nil {
		return err
	}

	fmt.Printf("File:    %s\n", path)
	fmt.Printf("Variant: %s\n\n", format)

	if doc.Info.Len() > 0 {
		rows := make([][]string, 0, doc.Info.Len())
		for _, k := range doc.Info.Keys() {
			v, _ := doc.Info.Get(k)
			rows = append(rows, []string{k, v})
		}
		fmt.Println(renderTable(
			[]string{"Key", "Value"},
			rows,
			[]columnAlignment{alignLeft, alignLeft},
		))
		fmt.Println()
	}

	if doc.Styles.Len() > 0 {
		rows := make([][]string, 0, doc.Styles.Len())
		for _, name := range doc.Styles.Names() {
			sty, _ := doc.Styles.Get(name)
			rows = append(rows, []string{
				name,
				sty.Fontname,
				strconv.FormatFloat(sty.Fontsize, 'g', -1, 64),
				subtitle.EncodeColor(sty.PrimaryColor, subtitle.FormatASS),
				flagMark(sty.Bold),
				flagMark(sty.Italic),
				strconv.Itoa(sty.Alignment),
			})
		}
		fmt.Println(renderTable(
			[]string{"Style", "Font", "Size", "Primary", "Bold", "Italic", "Align"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignLeft, alignRight},
		))
		fmt.Println()
	}

	dialogues, comments := 0, 0
	for _, ev := range doc.Events {
		if ev.Type == subtitle.EventComment {
			comments++
		} else {
			dialogues++
		}
	}
	fmt.Printf("Events: %d dialogue, %d comment", dialogues, comments)
	if len(doc.Fonts) > 0 {
		fmt.Printf(", %d embedded fonts", len(doc.Fonts))
	}
	fmt.Println()

	if showEvents > 0 {
		n := showEvents
		if n > len(doc.Events) {
			n = len(doc.Events)
		}
		rows := make([][]string, 0, n)
		for _, ev := range doc.Events[:n] {
			rows = append(rows, []string{
				string(ev.Type),
				subtitle.EncodeTimestamp(ev.Start),
				subtitle.EncodeTimestamp(ev.End),
				ev.Style,
				ev.Text,
			})
		}
		fmt.Println(renderTable(
			[]string{"Type", "Start", "End", "Style", "Text"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft, alignLeft},
		))
	}

	return nil
}

func flagMark(b bool) string {
	if b {
		return "yes"
	}
	return ""
}
