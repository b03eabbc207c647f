package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kavyap22/lekha/internal/subtitle"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [subtitle_file]",
	Short: "Convert between the SSA and ASS subtitle variants",
	Long: `Convert a SubStation script between the legacy SSA (v4.00) and
ASS (v4.00+) variants.

The source variant is sniffed from the file content. Non-UTF-8 input can be
decoded with --from-encoding, which accepts IANA charset names.

Examples:
  lekha convert movie.ssa
  lekha convert movie.ass --to ssa -o movie.ssa
  lekha convert movie.ssa --from-encoding windows-1255`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("to", "t", "", "Target variant (ass or ssa; default from config)")
	convertCmd.Flags().
		StringP("from-encoding", "e", "", "Character set of the input file (default UTF-8)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := args[0]

	to, _ := cmd.Flags().GetString("to")
	fromEncoding, _ := cmd.Flags().GetString("from-encoding")
	outputPath, _ := cmd.Flags().GetString("output")

	if to == "" {
		to = cfg.DefaultFormat
	}
	target, err := subtitle.ParseFormat(to)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	source, ok := subtitle.DetectFormat(string(data))
	if !ok {
		return fmt.Errorf("no SubStation styles section found in %s", path)
	}

	doc, err := subtitle.FromBytes(data, fromEncoding, source)
	if err != nil {
		return err
	}
	doc.Notice = cfg.Notice
	if verbose {
		doc.Log = logger
	}

	if outputPath == "" {
		outputPath = outputPathFor(path, string(target))
	}

	logger.Infow("Converting subtitle script",
		"input", path,
		"output", outputPath,
		"from", string(source),
		"to", string(target),
		"events", len(doc.Events),
	)

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputPath, err)
	}
	defer func() {
		_ = out.Close()
	}()

	if err := doc.Write(out, target); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Converted successfully: %s\n", absOutput)

	return nil
}

// derives the default output path by swapping the extension
func outputPathFor(path, ext string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + "." + ext
}
