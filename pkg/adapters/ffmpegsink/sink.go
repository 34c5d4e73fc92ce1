// Package ffmpegsink implements ports.RawVideoSink by piping rgb24 frames
// into an ffmpeg process that encodes them to an H.264 MP4 file.
package ffmpegsink

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"github.com/user/framecast/pkg/ports"
)

// Options configures the ffmpeg invocation.
type Options struct {
	// OutputPath is the MP4 file ffmpeg writes. Required.
	OutputPath string

	// CRF is the x264 constant rate factor (0-51, lower is higher quality).
	// Zero selects the default of 23.
	CRF int

	// Preset is the x264 encoding preset. Empty selects "fast".
	Preset string

	// ExtraArgs are appended to the output side of the command line.
	ExtraArgs []string
}

// Sink streams raw rgb24 frames into ffmpeg's stdin. The stream geometry is
// fixed at Begin; every frame must carry exactly width*height*3 bytes.
// Writes are synchronous and block when ffmpeg's input buffer is full,
// which is the intended backpressure for a batch encode.
type Sink struct {
	opts       Options
	ffmpegPath string
	width      int
	height     int
	fps        float64
	log        ports.Logger

	mu     sync.Mutex
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	w      *bufio.Writer
	stderr bytes.Buffer
	closed bool
}

// New creates a Sink. The logger may be nil.
func New(opts Options, log ports.Logger) *Sink {
	return &Sink{opts: opts, log: log}
}

// Begin locates ffmpeg and starts it reading rawvideo rgb24 from stdin.
func (s *Sink) Begin(width, height int, fps float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ffmpegPath, err := FindFFmpeg()
	if err != nil {
		return err
	}
	s.ffmpegPath = ffmpegPath
	s.width = width
	s.height = height
	s.fps = fps
	s.closed = false

	args := BuildArgs(width, height, fps, s.opts)
	if s.log != nil {
		s.log.Debug("Starting ffmpeg: %s", ffmpegPath)
	}

	s.cmd = exec.Command(s.ffmpegPath, args...)
	s.cmd.Stderr = &s.stderr

	stdin, err := s.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("get stdin pipe: %w", err)
	}
	s.stdin = stdin
	s.w = bufio.NewWriter(stdin)

	if err := s.cmd.Start(); err != nil {
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	return nil
}

// WriteFrame writes one frame of rgb24 bytes to ffmpeg's stdin.
func (s *Sink) WriteFrame(rgb24 []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdin == nil || s.closed {
		return ErrNotStarted
	}
	if want := s.width * s.height * 3; len(rgb24) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrFrameSize, len(rgb24), want)
	}

	if _, err := s.w.Write(rgb24); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// End flushes and closes ffmpeg's stdin, then waits for the process to
// exit. Closing before waiting matters: ffmpeg only finalizes the MP4 once
// it observes end-of-stream on its input.
func (s *Sink) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdin == nil || s.closed {
		return ErrNotStarted
	}
	s.closed = true

	if err := s.w.Flush(); err != nil {
		s.stdin.Close()
		s.cmd.Wait()
		return fmt.Errorf("flush frames: %w", err)
	}
	if err := s.stdin.Close(); err != nil {
		s.cmd.Wait()
		return fmt.Errorf("close ffmpeg stdin: %w", err)
	}
	s.stdin = nil

	if err := s.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg encoding failed: %w\nstderr: %s", err, s.stderr.String())
	}

	if s.log != nil {
		s.log.Debug("ffmpeg finished: %s", s.opts.OutputPath)
	}
	return nil
}

// Close kills the ffmpeg process if End has not run. It is safe to defer
// alongside a normal End.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	if s.stdin != nil {
		s.stdin.Close()
		s.stdin = nil
	}
	if s.cmd != nil && s.cmd.Process != nil {
		s.cmd.Process.Kill()
		s.cmd.Wait()
	}
}

// BuildArgs constructs the ffmpeg command line for a raw rgb24 pipe encode.
// The input side declares exactly the contract the session emits: rawvideo,
// rgb24, width x height, fps, no audio.
func BuildArgs(width, height int, fps float64, opts Options) []string {
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgb24",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-r", fmt.Sprintf("%g", fps),
		"-i", "pipe:0",
		"-c:v", "libx264",
	}

	preset := opts.Preset
	if preset == "" {
		preset = "fast"
	}
	args = append(args, "-preset", preset)

	crf := opts.CRF
	if crf <= 0 || crf > 51 {
		crf = 23
	}
	args = append(args, "-crf", fmt.Sprintf("%d", crf))

	args = append(args,
		"-pix_fmt", "yuv420p",
		"-an",
		"-movflags", "+faststart",
	)
	args = append(args, opts.ExtraArgs...)
	args = append(args, opts.OutputPath)

	return args
}

// Ensure Sink implements ports.RawVideoSink
var _ ports.RawVideoSink = (*Sink)(nil)
