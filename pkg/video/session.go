// Package video implements the frame-by-frame video session: one reusable
// frame buffer, painted in place by the caller and streamed frame by frame
// as raw rgb24 bytes into an external sink.
package video

import (
	"errors"
	"fmt"

	"github.com/user/framecast/pkg/frame"
	"github.com/user/framecast/pkg/pixel"
	"github.com/user/framecast/pkg/ports"
)

// ErrFinished is returned by every operation invoked after Finish. A
// finished session is terminal; it never silently accepts further work.
var ErrFinished = errors.New("video: session already finished")

// Config carries the parameters of one session, fixed for its lifetime.
type Config struct {
	Width  int
	Height int
	FPS    float64
}

// Session owns exactly one frame buffer, reused across frames, and the sink
// consuming the emitted bytes. The buffer's resolution always equals the
// session's. A session is single-threaded by contract: frame mutation and
// emission happen strictly sequentially, so there is no internal locking.
//
// Sink failures are unrecoverable by design. There is no partial-frame
// replay; callers should abandon the session when any method returns an
// error.
type Session[P pixel.Pixel] struct {
	buf      *frame.Frame[P]
	width    int
	height   int
	fps      float64
	sink     ports.RawVideoSink
	debug    ports.DebugSink
	log      ports.Logger
	scratch  []byte
	frames   int
	finished bool
}

// New allocates the frame buffer and establishes the sink for a stream of
// the given geometry. The debug sink may be nil. A sink that cannot be
// established makes the whole production session unusable, so the wrapped
// error should be treated as fatal by the caller.
func New[P pixel.Pixel](sink ports.RawVideoSink, debug ports.DebugSink, log ports.Logger, cfg Config) (*Session[P], error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("video: invalid resolution %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.FPS <= 0 {
		return nil, fmt.Errorf("video: invalid frame rate %g", cfg.FPS)
	}
	if log == nil {
		log = nopLogger{}
	}

	if err := sink.Begin(cfg.Width, cfg.Height, cfg.FPS); err != nil {
		return nil, fmt.Errorf("establish sink: %w", err)
	}

	log.Debug("Video session established: %dx%d at %g fps", cfg.Width, cfg.Height, cfg.FPS)

	return &Session[P]{
		buf:     frame.New[P](cfg.Width, cfg.Height),
		width:   cfg.Width,
		height:  cfg.Height,
		fps:     cfg.FPS,
		sink:    sink,
		debug:   debug,
		log:     log,
		scratch: make([]byte, cfg.Width*cfg.Height*3),
	}, nil
}

// ResetFrame clears the buffer to default pixels and returns it, for
// callers that want a blank canvas each frame.
func (s *Session[P]) ResetFrame() *frame.Frame[P] {
	s.buf.Reset()
	return s.buf
}

// Frame returns the buffer without clearing it, for callers that paint
// incrementally over the previous frame's content.
func (s *Session[P]) Frame() *frame.Frame[P] {
	return s.buf
}

// EmitFrame converts the buffer to canonical rgb24 bytes and writes them to
// the sink: row-major order, y outer and x inner, three contiguous bytes
// per pixel. The write is synchronous; exactly width*height*3 bytes leave
// per call. This layout is the contract declared to the sink at Begin and
// must never diverge from it.
func (s *Session[P]) EmitFrame() error {
	if s.finished {
		return ErrFinished
	}

	// The backing slice is stored row-major, so a linear walk is exactly
	// the y-outer, x-inner emission order.
	i := 0
	for _, p := range s.buf.Pix() {
		r, g, b := p.RGB24()
		s.scratch[i] = r
		s.scratch[i+1] = g
		s.scratch[i+2] = b
		i += 3
	}

	if err := s.sink.WriteFrame(s.scratch); err != nil {
		return fmt.Errorf("write frame %d: %w", s.frames, err)
	}

	if s.debug != nil && s.debug.Enabled() {
		if err := s.debug.SaveRawFrame(s.frames, s.scratch); err != nil {
			s.log.Warn("Failed to save debug frame %d: %s", s.frames, err)
		}
	}

	s.frames++
	return nil
}

// Finish closes the write side of the sink and waits for the external
// consumer to terminate. The close must happen before the wait: a consumer
// blocked on reads only exits once it observes end-of-stream. Finish is
// terminal; calling it twice, or emitting after it, returns ErrFinished.
func (s *Session[P]) Finish() error {
	if s.finished {
		return ErrFinished
	}
	s.finished = true

	if err := s.sink.End(); err != nil {
		return fmt.Errorf("finalize sink: %w", err)
	}

	s.log.Debug("Video session finished after %d frames", s.frames)
	return nil
}

// FrameCount returns the number of frames emitted so far.
func (s *Session[P]) FrameCount() int { return s.frames }

// Resolution returns the session's fixed (width, height).
func (s *Session[P]) Resolution() (int, int) { return s.width, s.height }

// FPS returns the session's fixed frame rate.
func (s *Session[P]) FPS() float64 { return s.fps }

// nopLogger keeps the core free of a dependency on any logger adapter when
// the caller passes nil.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{})      {}
func (nopLogger) Info(string, ...interface{})       {}
func (nopLogger) Warn(string, ...interface{})       {}
func (nopLogger) Error(string, ...interface{})      {}
func (nopLogger) WithComponent(string) ports.Logger { return nopLogger{} }
