package script

import (
	"errors"
	"fmt"

	"github.com/sonnes/moodlog/core"
	"github.com/sonnes/moodlog/session"
)

// Exec applies c to s. Positions refer to the visible catalog as it is when
// the command runs, the same numbering a renderer shows the user.
func Exec(s *session.Session, c Command) error {
	switch c.Verb {
	case VerbSelect:
		i, err := resolve(s, c)
		if err != nil {
			return err
		}
		return s.SelectMood(i)
	case VerbFav:
		i, err := resolve(s, c)
		if err != nil {
			return err
		}
		s.ToggleFavorite(i)
		return nil
	case VerbDelete:
		i, err := resolve(s, c)
		if err != nil {
			return err
		}
		return s.DeleteCustomMood(i)
	case VerbAdd:
		var tip string
		if len(c.Args) == 3 {
			tip = c.Args[2]
		}
		_, err := s.AddCustomMood(c.Args[0], c.Args[1], tip)
		return err
	case VerbSearch:
		s.SetSearch(c.Text)
		return nil
	case VerbNote:
		s.SetDraftNote(c.Text)
		return nil
	case VerbSave:
		if c.Text != "" {
			s.SetDraftNote(c.Text)
		}
		s.SaveDraft()
		return nil
	case VerbClear:
		s.ClearSelection()
		return nil
	default:
		return fmt.Errorf("unknown command %q", c.Verb)
	}
}

// Run applies every command in order. A rejected command does not stop the
// run; all rejections are returned joined, each prefixed with its line.
func Run(s *session.Session, cmds []Command) error {
	var errs []error
	for _, c := range cmds {
		if err := Exec(s, c); err != nil {
			errs = append(errs, fmt.Errorf("line %d: %s: %w", c.Line, c, err))
		}
	}
	return errors.Join(errs...)
}

func resolve(s *session.Session, c Command) (int, error) {
	n, err := c.Position()
	if err != nil {
		return 0, err
	}
	visible := core.VisibleCatalog(s.Catalog(), s.Search())
	if n > len(visible) {
		return 0, fmt.Errorf("%s %d: %w", c.Verb, n, core.ErrInvalidIndex)
	}
	return visible[n-1].Index, nil
}
