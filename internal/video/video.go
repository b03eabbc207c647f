package video

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// embedded subtitle stream inside a media container
type Stream struct {
	Index    int    // position among the file's subtitle streams
	Codec    string // ass, subrip, mov_text, ...
	Language string
	Title    string
}

// defines interface for container subtitle operations
type Processor interface {
	// extracts one subtitle stream into a standalone file
	ExtractSubtitle(
		ctx context.Context,
		videoPath, outputPath string,
		opts ExtractSubtitleOptions,
	) error

	// lists the subtitle streams embedded in a media file
	ListSubtitleStreams(ctx context.Context, videoPath string) ([]Stream, error)
}

// holds options for subtitle extraction
type ExtractSubtitleOptions struct {
	Track int    // subtitle stream index within the file (0 = first)
	Codec string // target codec: ass (default) or copy
}

// default implementation using ffmpeg
type DefaultProcessor struct{}

func NewProcessor() *DefaultProcessor {
	return &DefaultProcessor{}
}

// extracts one subtitle stream into a standalone file
func (p *DefaultProcessor) ExtractSubtitle(
	ctx context.Context,
	videoPath, outputPath string,
	opts ExtractSubtitleOptions,
) error {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("media file not found: %s", videoPath)
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	codec := opts.Codec
	if codec == "" {
		codec = "ass"
	}

	kwargs := ffmpeg.KwArgs{
		"map": fmt.Sprintf("0:s:%d", opts.Track),
		"c:s": codec,
	}

	err := ffmpeg.Input(videoPath).
		Output(outputPath, kwargs).
		OverWriteOutput().
		Run()

	if err != nil {
		return fmt.Errorf("ffmpeg subtitle extraction failed: %w", err)
	}

	return nil
}

// lists the subtitle streams embedded in a media file
func (p *DefaultProcessor) ListSubtitleStreams(
	ctx context.Context,
	videoPath string,
) ([]Stream, error) {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("media file not found: %s", videoPath)
	}

	out, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	return parseProbeOutput([]byte(out))
}

type probeOutput struct {
	Streams []struct {
		CodecName string `json:"codec_name"`
		CodecType string `json:"codec_type"`
		Tags      struct {
			Language string `json:"language"`
			Title    string `json:"title"`
		} `json:"tags"`
	} `json:"streams"`
}

func parseProbeOutput(data []byte) ([]Stream, error) {
	var probed probeOutput
	if err := json.Unmarshal(data, &probed); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	var streams []Stream
	for _, s := range probed.Streams {
		if s.CodecType != "subtitle" {
			continue
		}
		streams = append(streams, Stream{
			Index:    len(streams),
			Codec:    s.CodecName,
			Language: s.Tags.Language,
			Title:    s.Tags.Title,
		})
	}
	return streams, nil
}
