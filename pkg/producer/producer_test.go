package producer

import (
	"context"
	"testing"

	"github.com/user/framecast/pkg/frame"
	"github.com/user/framecast/pkg/mocks"
	"github.com/user/framecast/pkg/pixel"
)

func TestProducer_Run(t *testing.T) {
	sink := &mocks.RawVideoSink{}
	p := New[pixel.RGB](sink, nil, nil)

	calls := []int{}
	animate := func(i int, f *frame.Frame[pixel.RGB]) {
		calls = append(calls, i)
		f.Fill(pixel.NewRGB(uint8(i), 0, 0))
	}

	cfg := Config{Width: 2, Height: 2, FPS: 30, Frames: 3}
	info, err := p.Run(context.Background(), cfg, animate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(calls) != 3 {
		t.Errorf("animator called %d times, want 3", len(calls))
	}
	for i, c := range calls {
		if c != i {
			t.Errorf("call %d got frame index %d", i, c)
		}
	}
	if len(sink.Frames) != 3 {
		t.Errorf("sink received %d frames, want 3", len(sink.Frames))
	}
	if !sink.EndCalled {
		t.Error("expected the session to be finished")
	}
	if info.Frames != 3 {
		t.Errorf("info.Frames = %d, want 3", info.Frames)
	}

	// Each frame carries that frame's fill value.
	for i, data := range sink.Frames {
		if data[0] != uint8(i) {
			t.Errorf("frame %d first byte = %d, want %d", i, data[0], i)
		}
	}
}

func TestProducer_ClearResetsBetweenFrames(t *testing.T) {
	sink := &mocks.RawVideoSink{}
	p := New[pixel.RGB](sink, nil, nil)

	// Paint only on the first frame; with Clear the second must be black,
	// without it the paint persists.
	animate := func(i int, f *frame.Frame[pixel.RGB]) {
		if i == 0 {
			f.Set(0, 0, pixel.NewRGB(255, 255, 255))
		}
	}

	cfg := Config{Width: 1, Height: 1, FPS: 30, Frames: 2, Clear: true}
	if _, err := p.Run(context.Background(), cfg, animate); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sink.Frames[1][0] != 0 {
		t.Errorf("cleared second frame starts with %d, want 0", sink.Frames[1][0])
	}

	sink = &mocks.RawVideoSink{}
	p = New[pixel.RGB](sink, nil, nil)
	cfg.Clear = false
	if _, err := p.Run(context.Background(), cfg, animate); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sink.Frames[1][0] != 255 {
		t.Errorf("persistent second frame starts with %d, want 255", sink.Frames[1][0])
	}
}

func TestProducer_ContextCancellation(t *testing.T) {
	sink := &mocks.RawVideoSink{}
	p := New[pixel.RGB](sink, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())

	frames := 0
	animate := func(i int, f *frame.Frame[pixel.RGB]) {
		frames++
		if i == 1 {
			cancel()
		}
	}

	cfg := Config{Width: 1, Height: 1, FPS: 30, Frames: 100}
	_, err := p.Run(ctx, cfg, animate)
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if frames != 2 {
		t.Errorf("rendered %d frames before stopping, want 2", frames)
	}
}

func TestProducer_NoFrames(t *testing.T) {
	sink := &mocks.RawVideoSink{}
	p := New[pixel.RGB](sink, nil, nil)

	cfg := Config{Width: 1, Height: 1, FPS: 30, Frames: 0}
	if _, err := p.Run(context.Background(), cfg, func(int, *frame.Frame[pixel.RGB]) {}); err == nil {
		t.Error("expected error for zero frames")
	}
	if sink.BeginCalled {
		t.Error("sink should not be established for an empty render")
	}
}

func TestPatterns_ProduceValidPixels(t *testing.T) {
	f := frame.New[pixel.HSL](8, 8)
	HSLSweep(10)(3, f)

	// Spot check: every cell converts without leaving the byte domain and
	// saturated colours are present.
	seen := map[pixel.RGB]bool{}
	for _, p := range f.Pix() {
		r, g, b := p.RGB24()
		seen[pixel.RGB{R: r, G: g, B: b}] = true
	}
	if len(seen) < 2 {
		t.Error("hsl-sweep should paint more than one colour")
	}

	hf := frame.New[pixel.HSV](8, 8)
	Plasma(10)(0, hf)
	for i, p := range hf.Pix() {
		if p.H < 0 || p.H > 1 || p.V != 1 {
			t.Fatalf("plasma cell %d out of domain: %+v", i, p)
		}
	}

	rf := frame.New[pixel.RGB](4, 4)
	Gradient(10)(9, rf)
	if got := rf.At(3, 0); got.R != 255 || got.B != 255 {
		t.Errorf("gradient corner = %+v, want R=255 B=255", got)
	}
}
