// Package summarizer provides summary generation for render results.
package summarizer

import "time"

// Summary contains all data collected during one render.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Output artifact path
	Output string

	// Video output details
	Video VideoInfo

	// Render settings
	Settings Settings
}

// VideoInfo contains details about the produced video.
type VideoInfo struct {
	Width      int
	Height     int
	FPS        float64
	Frames     int
	DurationMs int
	FileSize   int64
	Codec      string
}

// Settings contains the render configuration.
type Settings struct {
	Pattern string
	Model   string
	CRF     int
	Preset  string
}

// NewSummary creates a Summary stamped with the current time.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent way to assemble a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithOutput sets the output artifact path.
func (b *Builder) WithOutput(path string) *Builder {
	b.summary.Output = path
	return b
}

// WithVideo sets the video output details.
func (b *Builder) WithVideo(video VideoInfo) *Builder {
	b.summary.Video = video
	return b
}

// WithSettings sets the render settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// Build returns the assembled Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
