// Package redact hides private details people tend to write into journal
// notes: credentials, payment and bank numbers, contact details and ID
// numbers.
package redact

import (
	"fmt"
	"regexp"
)

// Rule finds one kind of private detail in note text.
type Rule interface {
	Name() string
	Kind() string
	Detect(s string) []Match
	Replacement(m Match) string
}

// Match is a byte span of s that a rule wants hidden.
type Match struct {
	Start int
	End   int
	Value string
}

// Kinds of rule, selectable with Config.
const (
	KindSecret = "secret"
	KindPII    = "pii"
)

// patternRule matches a regular expression. When the expression has a
// capture group only the first group is hidden, so "pin is 4821" keeps its
// lead-in.
type patternRule struct {
	name    string
	kind    string
	pattern *regexp.Regexp
	valid   func(string) bool
}

func (r *patternRule) Name() string { return r.name }
func (r *patternRule) Kind() string { return r.kind }

func (r *patternRule) Detect(s string) []Match {
	var matches []Match
	for _, loc := range r.pattern.FindAllStringSubmatchIndex(s, -1) {
		start, end := loc[0], loc[1]
		if len(loc) >= 4 && loc[2] >= 0 {
			start, end = loc[2], loc[3]
		}
		v := s[start:end]
		if r.valid != nil && !r.valid(v) {
			continue
		}
		matches = append(matches, Match{Start: start, End: end, Value: v})
	}
	return matches
}

func (r *patternRule) Replacement(_ Match) string {
	return fmt.Sprintf("[REDACTED:%s]", r.name)
}

// SecretRules returns rules for credentials and financial numbers.
func SecretRules() []Rule {
	return []Rule{
		&patternRule{
			name:    "password",
			kind:    KindSecret,
			pattern: regexp.MustCompile(`(?i)\b(?:password|passcode|passphrase|pin)\b\s*(?:is\s+|[:=]\s*)(\S+?)[.,;!?]*(?:\s|$)`),
		},
		&patternRule{
			name:    "card_number",
			kind:    KindSecret,
			pattern: regexp.MustCompile(`\b\d(?:[ -]?\d){12,18}\b`),
			valid:   luhn,
		},
		&patternRule{
			name:    "iban",
			kind:    KindSecret,
			pattern: regexp.MustCompile(`\b[A-Z]{2}\d{2}(?: ?[A-Z0-9]{4}){2,7}(?: ?[A-Z0-9]{1,4})?\b`),
		},
	}
}

// PIIRules returns rules for contact details and identity numbers.
func PIIRules() []Rule {
	return []Rule{
		&patternRule{
			name:    "email",
			kind:    KindPII,
			pattern: regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`),
		},
		&patternRule{
			name:    "phone",
			kind:    KindPII,
			pattern: regexp.MustCompile(`(?:\+\d{1,3}[\s\-]?)?\(?\d{3}\)?[\s\-]?\d{3}[\s\-]?\d{4}\b`),
		},
		&patternRule{
			name:    "ssn",
			kind:    KindPII,
			pattern: regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
		},
		&patternRule{
			name:    "handle",
			kind:    KindPII,
			pattern: regexp.MustCompile(`(?:^|[\s(])(@[A-Za-z0-9_]{2,30})\b`),
		},
	}
}

// luhn reports whether the digits in s pass the payment card checksum.
// Separators are skipped.
func luhn(s string) bool {
	sum, n := 0, 0
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c < '0' || c > '9' {
			continue
		}
		d := int(c - '0')
		if n%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		n++
	}
	return n >= 13 && sum%10 == 0
}
