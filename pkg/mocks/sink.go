package mocks

import (
	"github.com/user/framecast/pkg/ports"
)

// RawVideoSink is a mock implementation of ports.RawVideoSink. It records
// every call and keeps a copy of each written frame for verification.
type RawVideoSink struct {
	BeginFunc      func(width, height int, fps float64) error
	WriteFrameFunc func(rgb24 []byte) error
	EndFunc        func() error

	// Recorded calls for verification
	BeginCalled bool
	BeginWidth  int
	BeginHeight int
	BeginFPS    float64
	Frames      [][]byte
	EndCalled   bool
}

func (m *RawVideoSink) Begin(width, height int, fps float64) error {
	m.BeginCalled = true
	m.BeginWidth = width
	m.BeginHeight = height
	m.BeginFPS = fps
	if m.BeginFunc != nil {
		return m.BeginFunc(width, height, fps)
	}
	return nil
}

func (m *RawVideoSink) WriteFrame(rgb24 []byte) error {
	// The session reuses its scratch buffer, so keep a copy.
	frame := make([]byte, len(rgb24))
	copy(frame, rgb24)
	m.Frames = append(m.Frames, frame)
	if m.WriteFrameFunc != nil {
		return m.WriteFrameFunc(rgb24)
	}
	return nil
}

func (m *RawVideoSink) End() error {
	m.EndCalled = true
	if m.EndFunc != nil {
		return m.EndFunc()
	}
	return nil
}

// Stream returns all written frames concatenated in emission order.
func (m *RawVideoSink) Stream() []byte {
	var out []byte
	for _, f := range m.Frames {
		out = append(out, f...)
	}
	return out
}

var _ ports.RawVideoSink = (*RawVideoSink)(nil)
