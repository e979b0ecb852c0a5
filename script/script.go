// Package script parses textual journal commands, one per line, and applies
// them to a session. It is the input surface shared by the interactive shell
// and script replay.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-shellwords"
)

// Verb names a journal action.
type Verb string

const (
	VerbSelect Verb = "select"
	VerbFav    Verb = "fav"
	VerbDelete Verb = "delete"
	VerbAdd    Verb = "add"
	VerbSearch Verb = "search"
	VerbNote   Verb = "note"
	VerbSave   Verb = "save"
	VerbClear  Verb = "clear"
)

// freeText reports whether the verb takes its argument verbatim.
func (v Verb) freeText() bool {
	return v == VerbSearch || v == VerbNote || v == VerbSave
}

// Command is one parsed line.
type Command struct {
	Line int // 1-based source line, zero when parsed standalone
	Verb Verb

	// Args holds the shell-quoted arguments of select, fav, delete and add.
	Args []string

	// Text is everything after the verb for search, note and save, as typed
	// apart from surrounding whitespace.
	Text string
}

func (c Command) String() string {
	if c.Verb.freeText() {
		if c.Text == "" {
			return string(c.Verb)
		}
		return string(c.Verb) + " " + c.Text
	}
	if len(c.Args) == 0 {
		return string(c.Verb)
	}
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			args[i] = strconv.Quote(a)
		}
	}
	return string(c.Verb) + " " + strings.Join(args, " ")
}

// Position returns the 1-based visible position argument of select, fav and
// delete.
func (c Command) Position() (int, error) {
	n, err := strconv.Atoi(c.Args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s: position must be a positive number, got %q", c.Verb, c.Args[0])
	}
	return n, nil
}

// Parse reads commands from r, skipping blank lines and # comments. A line
// ending in a backslash continues on the next line; the break is kept as a
// newline in the command text.
func Parse(r io.Reader) ([]Command, error) {
	var (
		cmds    []Command
		pending strings.Builder
		start   int
	)

	flush := func() error {
		text := pending.String()
		pending.Reset()
		c, ok, err := ParseLine(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", start, err)
		}
		if ok {
			c.Line = start
			cmds = append(cmds, c)
		}
		return nil
	}

	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		if pending.Len() == 0 {
			start = n
		}
		text := sc.Text()
		if body, ok := strings.CutSuffix(text, `\`); ok {
			pending.WriteString(body)
			pending.WriteByte('\n')
			continue
		}
		pending.WriteString(text)
		if err := flush(); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if pending.Len() > 0 {
		if err := flush(); err != nil {
			return nil, err
		}
	}
	return cmds, nil
}

// ParseLine parses a single command. ok is false for blank and comment lines.
func ParseLine(line string) (c Command, ok bool, err error) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
		return Command{}, false, nil
	}

	word, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		word, rest = line[:i], line[i:]
	}
	c = Command{Verb: Verb(strings.ToLower(word))}

	if c.Verb.freeText() {
		c.Text = strings.TrimSpace(rest)
		return c, true, nil
	}

	p := shellwords.NewParser()
	args, err := p.Parse(rest)
	if err != nil {
		return Command{}, false, fmt.Errorf("%s: unterminated quote in %q", c.Verb, rest)
	}
	if p.Position >= 0 {
		r := []rune(rest)[p.Position]
		return Command{}, false, fmt.Errorf("%s: unexpected %q, quote it", c.Verb, r)
	}
	c.Args = args
	if err := c.check(); err != nil {
		return Command{}, false, err
	}
	return c, true, nil
}

func (c Command) check() error {
	switch c.Verb {
	case VerbSelect, VerbFav, VerbDelete:
		if len(c.Args) != 1 {
			return fmt.Errorf("%s: expected one position", c.Verb)
		}
		_, err := c.Position()
		return err
	case VerbAdd:
		if len(c.Args) < 2 || len(c.Args) > 3 {
			return fmt.Errorf(`add: usage: add "label" "description" ["tip"]`)
		}
	case VerbClear:
		if len(c.Args) != 0 {
			return fmt.Errorf("clear: takes no arguments")
		}
	default:
		return fmt.Errorf("unknown command %q", c.Verb)
	}
	return nil
}
