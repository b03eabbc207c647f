package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/kavyap22/lekha/internal/video"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [media_file]",
	Short: "Extract an embedded subtitle track from a media file",
	Long: `Extract a subtitle stream from a media container (mkv, mp4, ...)
and save it as a standalone ASS file.

Use --list to see the subtitle streams a file carries before extracting.

Examples:
  lekha extract movie.mkv
  lekha extract movie.mkv --list
  lekha extract movie.mkv --track 1 -o signs.ass`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().
		IntP("track", "t", 0, "Subtitle stream index within the file")
	extractCmd.Flags().
		Bool("list", false, "List subtitle streams instead of extracting")
	extractCmd.Flags().
		String("codec", "ass", "Target subtitle codec (ass or copy)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]

	track, _ := cmd.Flags().GetInt("track")
	list, _ := cmd.Flags().GetBool("list")
	codec, _ := cmd.Flags().GetString("codec")
	outputPath, _ := cmd.Flags().GetString("output")

	processor := video.NewProcessor()
	ctx := context.Background()

	if list {
		streams, err := processor.ListSubtitleStreams(ctx, mediaPath)
		if err != nil {
			return err
		}
		if len(streams) == 0 {
			fmt.Println("No subtitle streams found.")
			return nil
		}
		rows := make([][]string, 0, len(streams))
		for _, s := range streams {
			rows = append(rows, []string{
				fmt.Sprintf("%d", s.Index), s.Codec, s.Language, s.Title,
			})
		}
		fmt.Println(renderTable(
			[]string{"Track", "Codec", "Language", "Title"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
		))
		return nil
	}

	if outputPath == "" {
		outputPath = outputPathFor(mediaPath, "ass")
	}

	logger.Infow("Extracting subtitle track",
		"media", mediaPath,
		"output", outputPath,
		"track", track,
		"codec", codec,
	)

	opts := video.ExtractSubtitleOptions{
		Track: track,
		Codec: codec,
	}

	if err := processor.ExtractSubtitle(
		ctx,
		mediaPath,
		outputPath,
		opts,
	); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitle extracted successfully: %s\n", absOutput)

	return nil
}
