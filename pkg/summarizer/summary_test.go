package summarizer

import (
	"strings"
	"testing"
	"time"

	"github.com/user/framecast/pkg/mocks"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder(t *testing.T) {
	summary := NewBuilder().
		WithOutput("out.mp4").
		WithVideo(VideoInfo{Width: 320, Height: 240, FPS: 30, Frames: 90}).
		WithSettings(Settings{Pattern: "hsl-sweep", Model: "hsl", CRF: 23}).
		Build()

	if summary.Output != "out.mp4" {
		t.Errorf("expected output 'out.mp4', got %q", summary.Output)
	}
	if summary.Video.Frames != 90 {
		t.Errorf("expected 90 frames, got %d", summary.Video.Frames)
	}
	if summary.Settings.Pattern != "hsl-sweep" {
		t.Errorf("expected pattern 'hsl-sweep', got %q", summary.Settings.Pattern)
	}
}

func TestMarkdownFormatter_Format(t *testing.T) {
	formatter := NewMarkdownFormatter()
	summary := NewBuilder().
		WithOutput("demo.mp4").
		WithVideo(VideoInfo{
			Width: 640, Height: 480, FPS: 24, Frames: 48,
			DurationMs: 2000, FileSize: 12345, Codec: "avc1",
		}).
		WithSettings(Settings{Pattern: "plasma", Model: "hsv", CRF: 18, Preset: "slow"}).
		Build()

	out := formatter.Format(summary)

	for _, want := range []string{
		"# Render Summary",
		"- Path: demo.mp4",
		"- Resolution: 640x480",
		"- Frame rate: 24 fps",
		"- Frames: 48",
		"- Duration: 2000 ms",
		"- File size: 12345 bytes",
		"- Codec: avc1",
		"- Pattern: plasma",
		"- CRF: 18",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownFormatter_OmitsUnknownFields(t *testing.T) {
	formatter := NewMarkdownFormatter()
	summary := NewBuilder().
		WithOutput("demo.mp4").
		WithVideo(VideoInfo{Width: 2, Height: 2, FPS: 30, Frames: 1}).
		Build()

	out := formatter.Format(summary)

	for _, absent := range []string{"Duration:", "File size:", "Codec:"} {
		if strings.Contains(out, absent) {
			t.Errorf("output should omit %q when unknown:\n%s", absent, out)
		}
	}
}

func TestMarkdownFormatter_WithVersion(t *testing.T) {
	formatter := NewMarkdownFormatter(WithVersion("v1.2.0"))
	out := formatter.Format(NewSummary())

	if !strings.Contains(out, "framecast v1.2.0") {
		t.Errorf("output missing version footer:\n%s", out)
	}
}

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	w := NewWriter(NewMarkdownFormatter(), fs)

	summary := NewBuilder().WithOutput("out.mp4").Build()
	if err := w.Write("debug/summary.md", summary); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, ok := fs.GetFile("debug/summary.md")
	if !ok {
		t.Fatal("expected summary file to be written")
	}
	if !strings.Contains(string(data), "# Render Summary") {
		t.Errorf("unexpected content: %s", data)
	}
}
