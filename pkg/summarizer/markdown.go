package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter formats a Summary as a markdown document.
type MarkdownFormatter struct {
	version string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithVersion adds the generating tool's version to the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format converts a Summary to markdown.
func (f *MarkdownFormatter) Format(summary *Summary) string {
	var sb strings.Builder

	sb.WriteString("# Render Summary\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", summary.GeneratedAt.Format("2006-01-02 15:04:05")))

	sb.WriteString("## Output\n\n")
	sb.WriteString(fmt.Sprintf("- Path: %s\n", summary.Output))
	v := summary.Video
	sb.WriteString(fmt.Sprintf("- Resolution: %dx%d\n", v.Width, v.Height))
	sb.WriteString(fmt.Sprintf("- Frame rate: %g fps\n", v.FPS))
	sb.WriteString(fmt.Sprintf("- Frames: %d\n", v.Frames))
	if v.DurationMs > 0 {
		sb.WriteString(fmt.Sprintf("- Duration: %d ms\n", v.DurationMs))
	}
	if v.FileSize > 0 {
		sb.WriteString(fmt.Sprintf("- File size: %d bytes\n", v.FileSize))
	}
	if v.Codec != "" {
		sb.WriteString(fmt.Sprintf("- Codec: %s\n", v.Codec))
	}
	sb.WriteString("\n")

	s := summary.Settings
	sb.WriteString("## Settings\n\n")
	if s.Pattern != "" {
		sb.WriteString(fmt.Sprintf("- Pattern: %s\n", s.Pattern))
	}
	if s.Model != "" {
		sb.WriteString(fmt.Sprintf("- Colour model: %s\n", s.Model))
	}
	sb.WriteString(fmt.Sprintf("- CRF: %d\n", s.CRF))
	if s.Preset != "" {
		sb.WriteString(fmt.Sprintf("- Preset: %s\n", s.Preset))
	}

	if f.version != "" {
		sb.WriteString(fmt.Sprintf("\n---\nframecast %s\n", f.version))
	}

	return sb.String()
}

// Ensure MarkdownFormatter implements Formatter
var _ Formatter = (*MarkdownFormatter)(nil)
