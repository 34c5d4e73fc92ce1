// Package main provides the CLI entry point for framecast.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/framecast/pkg/adapters/ffmpegsink"
	"github.com/user/framecast/pkg/adapters/filesink"
	"github.com/user/framecast/pkg/adapters/ggpainter"
	"github.com/user/framecast/pkg/adapters/logger"
	"github.com/user/framecast/pkg/adapters/mp4probe"
	"github.com/user/framecast/pkg/adapters/nullsink"
	"github.com/user/framecast/pkg/adapters/osfilesystem"
	"github.com/user/framecast/pkg/config"
	"github.com/user/framecast/pkg/frame"
	"github.com/user/framecast/pkg/pixel"
	"github.com/user/framecast/pkg/ports"
	"github.com/user/framecast/pkg/producer"
	"github.com/user/framecast/pkg/summarizer"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Render  RenderCmd  `cmd:"" help:"Render an animated test pattern as MP4 video."`
	Probe   ProbeCmd   `cmd:"" help:"Inspect an MP4 file and print its video details."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// RenderCmd defines the render subcommand.
type RenderCmd struct {
	// Required arguments
	Output string `short:"o" required:"" help:"Output MP4 file path."`

	// Configuration file
	Config string `short:"C" help:"YAML configuration file (flags override its values)."`

	// Video geometry
	Width  *int     `short:"W" help:"Output video width (default: 640)."`
	Height *int     `short:"H" help:"Output video height (default: 480)."`
	FPS    *float64 `help:"Frame rate (default: 30)."`
	Frames *int     `short:"n" help:"Number of frames to render (default: 150)."`

	// Animation options
	Pattern      *string `short:"p" help:"Animation pattern (hsl-sweep, plasma, gradient)."`
	NoClear      bool    `help:"Keep previous frame contents between frames."`
	Overlay      bool    `help:"Draw a frame-counter overlay (gradient pattern only)."`
	OverlayColor *string `help:"Overlay color (hex, e.g., #ffffff)."`

	// Encoding options
	CRF        *int    `short:"q" help:"Video quality (CRF 0-51, lower is better)."`
	Preset     *string `help:"x264 encoding preset (e.g., fast, medium, slow)."`
	FFmpegPath string  `help:"Path to ffmpeg executable (falls back to FFMPEG_PATH env, then PATH)."`

	// Summary options
	Summary string `short:"s" help:"Output render summary to file (Markdown format)."`

	// Debug options
	Debug    bool    `short:"d" help:"Enable debug output."`
	DebugDir *string `help:"Directory for debug output (default: ./debug)."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// ProbeCmd defines the probe subcommand.
type ProbeCmd struct {
	File string `arg:"" help:"MP4 file to inspect."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("framecast"),
		kong.Description("Build videos frame by frame and stream them to ffmpeg."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the render command.
func (cmd *RenderCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Create logger
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cmd.LogLevel))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	// Locate ffmpeg before doing any work
	if cfg.FFmpegPath != "" {
		ffmpegsink.SetFFmpegPath(cfg.FFmpegPath)
	}
	if !ffmpegsink.IsFFmpegAvailable() {
		return ffmpegsink.ErrFFmpegNotFound
	}

	// Create adapters
	fs := osfilesystem.New()

	var debug ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		debug = filesink.New(cfg.DebugDir, fs)
	} else {
		debug = nullsink.New()
	}

	sink := ffmpegsink.New(ffmpegsink.Options{
		OutputPath: cfg.OutputPath,
		CRF:        cfg.CRF,
		Preset:     cfg.Preset,
	}, log)
	defer sink.Close()

	if cfg.Overlay && cfg.Pattern != "gradient" {
		log.Warn(l10n.T("Overlay is only supported for the gradient pattern"))
	}

	pcfg := producer.Config{
		Width:  cfg.Width,
		Height: cfg.Height,
		FPS:    cfg.FPS,
		Frames: cfg.Frames,
		Clear:  cfg.Clear,
	}

	log.Info(l10n.F("Rendering %d frames at %dx%d, %g fps", cfg.Frames, cfg.Width, cfg.Height, cfg.FPS))
	started := time.Now()

	// Dispatch on pattern; each pattern fixes the frame's pixel model.
	var info summarizer.VideoInfo
	switch cfg.Pattern {
	case "hsl-sweep":
		p := producer.New[pixel.HSL](sink, debug, log)
		info, err = p.Run(ctx, pcfg, producer.HSLSweep(cfg.Frames))
	case "plasma":
		p := producer.New[pixel.HSV](sink, debug, log)
		info, err = p.Run(ctx, pcfg, producer.Plasma(cfg.Frames))
	case "gradient":
		animate := producer.Gradient(cfg.Frames)
		if cfg.Overlay {
			animate = withFrameCounter(animate, cfg)
		}
		p := producer.New[pixel.RGB](sink, debug, log)
		info, err = p.Run(ctx, pcfg, animate)
	default:
		return fmt.Errorf("unknown pattern %q", cfg.Pattern)
	}
	if err != nil {
		return err
	}

	log.Info(l10n.F("Render completed in %d ms", time.Since(started).Milliseconds()))

	// Inspect the output for the summary; a probe failure is not fatal
	// because the video itself is already written.
	log.Debug(l10n.F("Probing output %s", cfg.OutputPath))
	prober := mp4probe.New(fs)
	if probed, probeErr := prober.Probe(cfg.OutputPath); probeErr != nil {
		log.Warn(l10n.F("Failed to probe output: %s", probeErr))
	} else {
		info.DurationMs = probed.DurationMs
		info.FileSize = probed.FileSize
		info.Codec = probed.Codec
	}

	if cmd.Summary != "" || debug.Enabled() {
		summary := summarizer.NewBuilder().
			WithOutput(cfg.OutputPath).
			WithVideo(info).
			WithSettings(summarizer.Settings{
				Pattern: cfg.Pattern,
				Model:   patternModel(cfg.Pattern),
				CRF:     cfg.CRF,
				Preset:  cfg.Preset,
			}).
			Build()
		formatter := summarizer.NewMarkdownFormatter(summarizer.WithVersion(version))
		if cmd.Summary != "" {
			writer := summarizer.NewWriter(formatter, fs)
			if err := writer.Write(cmd.Summary, summary); err != nil {
				log.Warn(l10n.F("Failed to save render summary: %s", err))
			} else {
				log.Info(l10n.F("Summary saved to %s", cmd.Summary))
			}
		}
		if debug.Enabled() {
			if err := debug.SaveSummary([]byte(formatter.Format(summary))); err != nil {
				log.Warn(l10n.F("Failed to save render summary: %s", err))
			}
		}
	}

	log.Info(l10n.F("Output saved to %s", cfg.OutputPath))
	return nil
}

// buildConfig loads the YAML config (or defaults) and applies CLI overrides.
func (cmd *RenderCmd) buildConfig() (config.Config, error) {
	cfg := config.Defaults()
	if cmd.Config != "" {
		loaded, err := config.LoadFromFile(cmd.Config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	cfg.OutputPath = cmd.Output

	if cmd.Width != nil {
		cfg.Width = *cmd.Width
	}
	if cmd.Height != nil {
		cfg.Height = *cmd.Height
	}
	if cmd.FPS != nil {
		cfg.FPS = *cmd.FPS
	}
	if cmd.Frames != nil {
		cfg.Frames = *cmd.Frames
	}
	if cmd.Pattern != nil {
		cfg.Pattern = *cmd.Pattern
	}
	if cmd.NoClear {
		cfg.Clear = false
	}
	if cmd.Overlay {
		cfg.Overlay = true
	}
	if cmd.OverlayColor != nil {
		cfg.OverlayColor = *cmd.OverlayColor
	}
	if cmd.CRF != nil {
		cfg.CRF = *cmd.CRF
	}
	if cmd.Preset != nil {
		cfg.Preset = *cmd.Preset
	}
	if cmd.FFmpegPath != "" {
		cfg.FFmpegPath = cmd.FFmpegPath
	}
	if cmd.Debug {
		cfg.Debug = true
	}
	if cmd.DebugDir != nil {
		cfg.DebugDir = *cmd.DebugDir
	}

	return cfg, nil
}

// withFrameCounter stacks a frame-counter badge on top of the animator's
// output, drawn with gg and blitted into the frame's top-left corner.
func withFrameCounter(animate producer.Animator[pixel.RGB], cfg config.Config) producer.Animator[pixel.RGB] {
	col := config.ParseColor(cfg.OverlayColor)
	return func(frameIndex int, f *frame.Frame[pixel.RGB]) {
		animate(frameIndex, f)
		canvas := ggpainter.NewCanvas(96, 24, config.ParseColor("#202020"))
		canvas.DrawText(fmt.Sprintf("#%06d", frameIndex), 8, 16, col)
		badge := canvas.Image()
		// Scale the badge with the output so it stays readable at
		// higher resolutions.
		if w := f.Width() / 5; w > 96 {
			badge = ggpainter.Resize(badge, w, w/4)
		}
		ggpainter.BlitAt(f, badge, 8, 8)
	}
}

// patternModel names the pixel model a pattern paints with.
func patternModel(pattern string) string {
	switch pattern {
	case "hsl-sweep":
		return "HSL"
	case "plasma":
		return "HSV"
	case "gradient":
		return "RGB"
	default:
		return ""
	}
}

// Run executes the probe command.
func (cmd *ProbeCmd) Run() error {
	prober := mp4probe.New(osfilesystem.New())
	info, err := prober.Probe(cmd.File)
	if err != nil {
		return err
	}

	fmt.Println(l10n.F("Resolution: %dx%d", info.Width, info.Height))
	fmt.Println(l10n.F("Codec: %s", info.Codec))
	fmt.Println(l10n.F("Duration: %d ms", info.DurationMs))
	fmt.Println(l10n.F("File size: %d bytes", info.FileSize))
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("framecast (Go) version %s", version))
	return nil
}
