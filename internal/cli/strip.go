package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kavyap22/lekha/internal/subtitle"
	"github.com/spf13/cobra"
)

var stripCmd = &cobra.Command{
	Use:   "strip [subtitle_file]",
	Short: "Remove inline override tags from every event",
	Long: `Remove the brace-delimited {\...} override sequences from every
event's text, keeping the plain dialogue. Literal \N line breaks are kept.

Examples:
  lekha strip movie.ass
  lekha strip movie.ass -o clean.ass`,
	Args: cobra.ExactArgs(1),
	RunE: runStrip,
}

func init() {
	rootCmd.AddCommand(stripCmd)
}

func runStrip(cmd *cobra.Command, args []string) error {
	path := args[0]
	outputPath, _ := cmd.Flags().GetString("output")

	doc, format, err := subtitle.Open(path)
	if err != nil {
		return err
	}
	doc.Notice = cfg.Notice

	stripped := 0
	for i := range doc.Events {
		ev := &doc.Events[i]
		base, ok := doc.Styles.Get(ev.Style)
		if !ok {
			base = subtitle.DefaultStyle()
		}

		fragments := subtitle.ResolveTags(ev.Text, base, doc.Styles)
		if len(fragments) == 1 {
			continue
		}

		var sb strings.Builder
		for _, frag := range fragments {
			sb.WriteString(frag.Text)
		}
		ev.Text = sb.String()
		stripped++
	}

	if outputPath == "" {
		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		outputPath = outputPathFor(path, "stripped."+ext)
	}

	logger.Infow("Stripping override tags",
		"input", path,
		"output", outputPath,
		"events_changed", stripped,
	)

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputPath, err)
	}
	defer func() {
		_ = out.Close()
	}()

	if err := doc.Write(out, format); err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Stripped %d events: %s\n", stripped, absOutput)

	return nil
}
