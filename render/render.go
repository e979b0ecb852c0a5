// Package render defines the interface for drawing a journal snapshot in
// various output formats.
package render

import (
	"io"

	"github.com/sonnes/moodlog/core"
)

// Renderer writes a snapshot to the given writer in a specific format.
type Renderer interface {
	Render(w io.Writer, s *core.Snapshot) error
}
