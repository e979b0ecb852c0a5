package redact

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"github.com/sonnes/moodlog/core"
)

// Config controls which rules the Redactor applies.
type Config struct {
	Secrets    bool
	PII        bool
	ExtraRules []Rule
	Allowlist  []string // regex patterns for values to keep
}

// Redactor hides private details in the free text of a Snapshot: history
// notes, the draft note, and the description and tip of custom moods.
// Built-in mood text is never touched.
type Redactor struct {
	rules     []Rule
	allowlist []*regexp.Regexp
}

// New creates a Redactor from the given config. Invalid allowlist patterns
// are ignored.
func New(cfg Config) *Redactor {
	var rules []Rule
	if cfg.Secrets {
		rules = append(rules, SecretRules()...)
	}
	if cfg.PII {
		rules = append(rules, PIIRules()...)
	}
	rules = append(rules, cfg.ExtraRules...)

	r := &Redactor{rules: rules}
	for _, pattern := range cfg.Allowlist {
		if re, err := regexp.Compile(pattern); err == nil {
			r.allowlist = append(r.allowlist, re)
		}
	}
	return r
}

// Transform implements core.Transformer.
func (r *Redactor) Transform(s *core.Snapshot) error {
	for i := range s.History {
		s.History[i].Note = r.Redact(s.History[i].Note)
	}
	s.DraftNote = r.Redact(s.DraftNote)

	for i := range s.Visible {
		r.redactMood(&s.Visible[i].Entry)
	}
	if s.Selected != nil {
		r.redactMood(s.Selected)
	}
	return nil
}

func (r *Redactor) redactMood(m *core.MoodEntry) {
	if !m.Custom {
		return
	}
	m.Description = r.Redact(m.Description)
	m.Tip = r.Redact(m.Tip)
}

// span is a pending replacement of s[start:end].
type span struct {
	start, end int
	text       string
}

// Redact applies all rules to s. Where matches overlap, the one starting
// first wins, and the longer one on a tie. Allowlisted values are kept.
func (r *Redactor) Redact(s string) string {
	if s == "" || len(r.rules) == 0 {
		return s
	}

	var spans []span
	for _, rule := range r.rules {
		for _, m := range rule.Detect(s) {
			if !r.allowed(m.Value) {
				spans = append(spans, span{m.Start, m.End, rule.Replacement(m)})
			}
		}
	}
	if len(spans) == 0 {
		return s
	}

	slices.SortFunc(spans, func(a, b span) int {
		return cmp.Or(cmp.Compare(a.start, b.start), cmp.Compare(b.end, a.end))
	})

	var b strings.Builder
	b.Grow(len(s))
	pos := 0
	for _, sp := range spans {
		if sp.start < pos {
			continue
		}
		b.WriteString(s[pos:sp.start])
		b.WriteString(sp.text)
		pos = sp.end
	}
	b.WriteString(s[pos:])
	return b.String()
}

func (r *Redactor) allowed(value string) bool {
	return slices.ContainsFunc(r.allowlist, func(re *regexp.Regexp) bool {
		return re.MatchString(value)
	})
}
