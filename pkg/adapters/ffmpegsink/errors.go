package ffmpegsink

import "errors"

var (
	// ErrFFmpegNotFound is returned when no ffmpeg executable can be located.
	ErrFFmpegNotFound = errors.New("ffmpegsink: ffmpeg not found")

	// ErrNotStarted is returned when sink methods are called before Begin or
	// after End.
	ErrNotStarted = errors.New("ffmpegsink: sink not started")

	// ErrFrameSize is returned when a written frame does not carry exactly
	// width*height*3 bytes.
	ErrFrameSize = errors.New("ffmpegsink: frame byte length does not match declared geometry")
)
