package ports

// RawVideoSink abstracts the external byte consumer a video session streams
// raw frames into, typically an encoder process reading from a pipe.
//
// The sink must be told the exact stream geometry before any bytes flow:
// Begin declares the resolution and frame rate, and every WriteFrame call
// then carries exactly width*height*3 bytes of 8-bit RGB in row-major order
// with no padding and no framing between frames. End closes the write side
// of the stream and blocks until the consumer has observed end-of-stream
// and finalized its output.
type RawVideoSink interface {
	// Begin establishes the sink for a stream of the given geometry.
	Begin(width, height int, fps float64) error

	// WriteFrame delivers one complete frame of rgb24 bytes synchronously.
	// The slice is only valid for the duration of the call.
	WriteFrame(rgb24 []byte) error

	// End signals end-of-stream and waits for the consumer to terminate.
	End() error
}

// DebugSink abstracts debug output for intermediate results. It allows
// saving the raw frames and the render summary for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveRawFrame saves the rgb24 bytes of one emitted frame.
	// The slice is only valid for the duration of the call.
	SaveRawFrame(index int, data []byte) error

	// SaveSummary saves the render summary.
	SaveSummary(data []byte) error
}
