package frame

import (
	"strings"
	"testing"

	"github.com/user/framecast/pkg/pixel"
)

func TestNew_AllocatesBlackCells(t *testing.T) {
	f := New[pixel.RGB](4, 3)

	if w, h := f.Resolution(); w != 4 || h != 3 {
		t.Fatalf("resolution = (%d,%d), want (4,3)", w, h)
	}
	if len(f.Pix()) != 12 {
		t.Fatalf("backing slice has %d cells, want 12", len(f.Pix()))
	}
	for i, p := range f.Pix() {
		if p != (pixel.RGB{}) {
			t.Errorf("cell %d = %+v, want zero value", i, p)
		}
	}
}

func TestFrame_RowMajorLayout(t *testing.T) {
	f := New[pixel.RGB](3, 2)
	f.Set(2, 1, pixel.RGB{R: 9})

	// (2, 1) must land at index x + width*y = 5.
	if got := f.Pix()[5]; got.R != 9 {
		t.Errorf("cell at index 5 = %+v, want R=9", got)
	}
	if got := f.At(2, 1); got.R != 9 {
		t.Errorf("At(2,1) = %+v, want R=9", got)
	}
}

func TestFrame_GetBoundaryExclusive(t *testing.T) {
	f := New[pixel.RGB](4, 3)

	tests := []struct {
		name string
		x, y int
		ok   bool
	}{
		{"origin", 0, 0, true},
		{"last cell", 3, 2, true},
		{"x == width", 4, 0, false},
		{"y == height", 0, 3, false},
		{"both out", 4, 3, false},
		{"negative x", -1, 0, false},
		{"negative y", 0, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := f.Get(tt.x, tt.y); ok != tt.ok {
				t.Errorf("Get(%d,%d) ok = %v, want %v", tt.x, tt.y, ok, tt.ok)
			}
			ref := f.Ref(tt.x, tt.y)
			if (ref != nil) != tt.ok {
				t.Errorf("Ref(%d,%d) nil = %v, want present = %v", tt.x, tt.y, ref == nil, tt.ok)
			}
		})
	}
}

func TestFrame_RefMutatesInPlace(t *testing.T) {
	f := New[pixel.RGB](2, 2)

	ref := f.Ref(1, 0)
	if ref == nil {
		t.Fatal("Ref(1,0) returned nil inside bounds")
	}
	ref.G = 200

	if got := f.At(1, 0); got.G != 200 {
		t.Errorf("At(1,0) = %+v, want G=200", got)
	}
}

func TestFrame_AtPanicsNamingAxis(t *testing.T) {
	tests := []struct {
		name    string
		x, y    int
		wantMsg string
	}{
		{"x at width", 4, 0, "the x value is 4 but the width is 4"},
		{"y at height", 0, 3, "the y value is 3 but the height is 3"},
		{"negative x", -1, 0, "the x value is -1 but the width is 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New[pixel.RGB](4, 3)

			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("At(%d,%d) did not panic", tt.x, tt.y)
				}
				msg, ok := r.(string)
				if !ok || !strings.Contains(msg, tt.wantMsg) {
					t.Errorf("panic = %v, want message containing %q", r, tt.wantMsg)
				}
			}()

			f.At(tt.x, tt.y)
		})
	}
}

func TestFrame_SetPanicsOutOfBounds(t *testing.T) {
	f := New[pixel.HSL](2, 2)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Set(0,2) did not panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "the y value is 2 but the height is 2") {
			t.Errorf("panic = %v, want y axis message", r)
		}
	}()

	f.Set(0, 2, pixel.NewHSL(120, 100, 50))
}

func TestFrame_ResetEqualsFresh(t *testing.T) {
	f := New[pixel.HSV](3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			f.Set(x, y, pixel.NewHSV(x*40, 100, y*30))
		}
	}

	f.Reset()

	fresh := New[pixel.HSV](3, 3)
	for i := range fresh.Pix() {
		if f.Pix()[i] != fresh.Pix()[i] {
			t.Fatalf("cell %d differs after reset: %+v", i, f.Pix()[i])
		}
	}
	if w, h := f.Resolution(); w != 3 || h != 3 {
		t.Errorf("reset changed resolution to (%d,%d)", w, h)
	}
}

func TestFrame_Fill(t *testing.T) {
	f := New[pixel.RGB](2, 2)
	f.Fill(pixel.RGB{R: 1, G: 2, B: 3})

	for i, p := range f.Pix() {
		if p != (pixel.RGB{R: 1, G: 2, B: 3}) {
			t.Errorf("cell %d = %+v after Fill", i, p)
		}
	}
}
