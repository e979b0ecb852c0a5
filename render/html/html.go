// Package html renders journal snapshots as standalone HTML report pages
// styled with Tailwind CSS v4 (CDN). Journal notes are Markdown, converted by
// goldmark with chroma highlighting for fenced code.
package html

import (
	"fmt"
	"html/template"
	"io"

	"github.com/sonnes/moodlog/core"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// Renderer renders a snapshot to a standalone HTML page.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template

	// Title overrides the page heading.
	Title string
}

// New creates an HTML Renderer with goldmark configured for GFM and syntax
// highlighting. Raw HTML in notes is escaped, not passed through.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("dracula"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles for standalone pages
				),
			),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
		),
	)

	tmpl := template.Must(
		template.New("page.html").
			Funcs(funcMap()).
			ParseFS(content, "templates/*.html"),
	)

	return &Renderer{md: md, tmpl: tmpl, Title: "Mood Journal"}
}

// pageData is the top-level template data passed to page.html.
type pageData struct {
	Title    string
	Snapshot *core.Snapshot
	Moods    []moodData
	Stats    []statData
	Records  []recordData
}

// moodData is one visible catalog row.
type moodData struct {
	Number   int
	Entry    core.MoodEntry
	Selected bool
}

// statData is one analytics row; Percent is relative to the top count.
type statData struct {
	Label   string
	Count   int
	Percent int
}

// recordData is one history row with its note already converted.
type recordData struct {
	Record core.HistoryRecord
	Note   template.HTML
	Age    string
}

// Render writes the snapshot as a complete HTML page to w.
func (r *Renderer) Render(w io.Writer, s *core.Snapshot) error {
	data := pageData{
		Title:    r.Title,
		Snapshot: s,
		Stats:    stats(s.Frequency),
	}

	for n, item := range s.Visible {
		data.Moods = append(data.Moods, moodData{
			Number:   n + 1,
			Entry:    item.Entry,
			Selected: s.IsSelected(item.Index),
		})
	}

	for _, h := range s.History {
		note, err := renderNote(r.md, h.Note)
		if err != nil {
			return fmt.Errorf("render note %s: %w", h.ID, err)
		}
		rd := recordData{Record: h, Note: note}
		if !s.GeneratedAt.IsZero() {
			rd.Age = core.RelativeTime(h.Timestamp, s.GeneratedAt)
		}
		data.Records = append(data.Records, rd)
	}

	return r.tmpl.ExecuteTemplate(w, "page.html", data)
}

func stats(f core.Frequency) []statData {
	top := 0
	for _, l := range f.Labels {
		top = max(top, f.Counts[l])
	}
	out := make([]statData, 0, len(f.Labels))
	for _, l := range f.Labels {
		n := f.Counts[l]
		out = append(out, statData{Label: l, Count: n, Percent: n * 100 / top})
	}
	return out
}
