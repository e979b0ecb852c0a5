// Package json renders snapshots as JSON.
package json

import (
	"encoding/json"
	"io"

	"github.com/sonnes/moodlog/core"
)

// Renderer renders a snapshot to JSON.
type Renderer struct {
	// Indent controls pretty-printing. When true, output is indented.
	Indent bool
}

// New creates a JSON Renderer.
func New(indent bool) *Renderer {
	return &Renderer{Indent: indent}
}

// Render writes s as a single JSON document followed by a newline.
func (r *Renderer) Render(w io.Writer, s *core.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(s)
}
