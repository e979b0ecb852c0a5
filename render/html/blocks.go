package html

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
)

// renderNote converts a Markdown journal note to HTML. Empty notes render
// as nothing.
func renderNote(md goldmark.Markdown, note string) (template.HTML, error) {
	if strings.TrimSpace(note) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(note), &buf); err != nil {
		return "", fmt.Errorf("goldmark convert: %w", err)
	}
	return template.HTML(`<div class="prose dark:prose-invert max-w-none text-sm">` + buf.String() + `</div>`), nil
}
