// Package producer drives a complete render: an animator paints each frame
// into the session's reusable buffer and the session streams it to the
// sink, frame by frame, until the requested count is reached.
package producer

import (
	"context"
	"fmt"

	"github.com/user/framecast/pkg/frame"
	"github.com/user/framecast/pkg/pixel"
	"github.com/user/framecast/pkg/ports"
	"github.com/user/framecast/pkg/summarizer"
	"github.com/user/framecast/pkg/video"
)

// Animator paints one frame. When Config.Clear is set the buffer arrives
// reset to defaults; otherwise it still holds the previous frame's content
// and the animator paints incrementally.
type Animator[P pixel.Pixel] func(frameIndex int, f *frame.Frame[P])

// Config controls one render run.
type Config struct {
	Width  int
	Height int
	FPS    float64
	Frames int

	// Clear resets the buffer before each frame.
	Clear bool
}

// Producer renders animations through a video session.
type Producer[P pixel.Pixel] struct {
	sink  ports.RawVideoSink
	debug ports.DebugSink
	log   ports.Logger
}

// New creates a Producer. The debug sink and logger may be nil.
func New[P pixel.Pixel](sink ports.RawVideoSink, debug ports.DebugSink, log ports.Logger) *Producer[P] {
	return &Producer[P]{
		sink:  sink,
		debug: debug,
		log:   log,
	}
}

// Run establishes a session, renders cfg.Frames frames and finishes the
// stream. Context cancellation is honoured between frames; work on the
// current frame always completes so the sink never sees a partial frame.
func (p *Producer[P]) Run(ctx context.Context, cfg Config, animate Animator[P]) (summarizer.VideoInfo, error) {
	info := summarizer.VideoInfo{
		Width:  cfg.Width,
		Height: cfg.Height,
		FPS:    cfg.FPS,
	}

	if cfg.Frames <= 0 {
		return info, fmt.Errorf("no frames to render")
	}

	sess, err := video.New[P](p.sink, p.debug, p.log, video.Config{
		Width:  cfg.Width,
		Height: cfg.Height,
		FPS:    cfg.FPS,
	})
	if err != nil {
		return info, err
	}

	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return info, ctx.Err()
		default:
		}

		var f *frame.Frame[P]
		if cfg.Clear {
			f = sess.ResetFrame()
		} else {
			f = sess.Frame()
		}
		animate(i, f)

		if err := sess.EmitFrame(); err != nil {
			return info, fmt.Errorf("emit frame %d: %w", i, err)
		}

		if p.log != nil {
			p.log.Debug("Rendered frame %d/%d", i+1, cfg.Frames)
		}
	}

	if err := sess.Finish(); err != nil {
		return info, fmt.Errorf("finish video: %w", err)
	}

	info.Frames = sess.FrameCount()
	return info, nil
}
