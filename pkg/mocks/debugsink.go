package mocks

import (
	"github.com/user/framecast/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	enabled bool

	RawFrames map[int][]byte
	Summary   []byte
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:   enabled,
		RawFrames: make(map[int][]byte),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveRawFrame(index int, data []byte) error {
	frame := make([]byte, len(data))
	copy(frame, data)
	m.RawFrames[index] = frame
	return nil
}

func (m *DebugSink) SaveSummary(data []byte) error {
	m.Summary = data
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
