// Package mp4probe inspects the MP4 artifact the encoder sink produced,
// reporting the stream geometry and duration for the render summary.
package mp4probe

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/Eyevinn/mp4ff/mp4"
	"github.com/user/framecast/pkg/ports"
)

// ErrNoVideoTrack is returned when the file parses but contains no video
// track.
var ErrNoVideoTrack = errors.New("mp4probe: no video track found")

// Info describes the produced video artifact.
type Info struct {
	Width      int
	Height     int
	Codec      string
	DurationMs int
	FileSize   int64
}

// Prober reads and parses MP4 files through a FileSystem.
type Prober struct {
	fs ports.FileSystem
}

// New creates a new Prober.
func New(fs ports.FileSystem) *Prober {
	return &Prober{fs: fs}
}

// Probe reads the MP4 at path and extracts its stream information.
func (p *Prober) Probe(path string) (Info, error) {
	data, err := p.fs.ReadFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("read output: %w", err)
	}

	info, err := Parse(data)
	if err != nil {
		return Info{}, fmt.Errorf("probe %s: %w", path, err)
	}
	info.FileSize = int64(len(data))
	return info, nil
}

// Parse extracts stream information from MP4 data.
func Parse(data []byte) (Info, error) {
	f, err := mp4.DecodeFile(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("decode mp4: %w", err)
	}
	if f.Moov == nil || f.Moov.Mvhd == nil {
		return Info{}, fmt.Errorf("decode mp4: missing movie header")
	}

	var info Info
	if ts := f.Moov.Mvhd.Timescale; ts > 0 {
		info.DurationMs = int(f.Moov.Mvhd.Duration * 1000 / uint64(ts))
	}

	for _, trak := range f.Moov.Traks {
		if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
			continue
		}
		if trak.Tkhd != nil {
			// Track header dimensions are 16.16 fixed point.
			info.Width = int(trak.Tkhd.Width >> 16)
			info.Height = int(trak.Tkhd.Height >> 16)
		}
		if minf := trak.Mdia.Minf; minf != nil && minf.Stbl != nil && minf.Stbl.Stsd != nil {
			if children := minf.Stbl.Stsd.Children; len(children) > 0 {
				info.Codec = children[0].Type()
			}
		}
		return info, nil
	}

	return Info{}, ErrNoVideoTrack
}
