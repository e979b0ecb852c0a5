package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sonnes/moodlog/render/terminal"
	"github.com/sonnes/moodlog/script"
	"github.com/sonnes/moodlog/session"
	"github.com/urfave/cli/v3"
)

const shellHelp = `Commands (positions are the numbers shown in the list):
  select N                      select or deselect a mood
  fav N                         toggle favorite
  delete N                      delete a custom mood
  add "label" "desc" ["tip"]    add a custom mood
  search [text]                 filter moods (no text clears)
  note [text]                   set the note for the selected mood
  save [text]                   log the selected mood with the note
  clear                         reset selection and streak
  help                          show this help
  quit                          leave the session
`

func shellCmd() *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "Start an interactive journal session on stdin",
		Description: `Reads journal commands line by line and redraws the journal after each
one. Nothing is saved when the session ends; use -o to print the final
state in another format on exit.`,
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "Do not redraw the journal after each command",
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "Render width (0 detects the terminal width)",
			},
			&cli.BoolFlag{
				Name:  "no-history",
				Usage: "Draw only the mood list, without analytics and history",
			},
		}, exportFlags("none")...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s := session.New(session.WithLogger(log.Default()))
			defer s.Close()

			view := &terminal.Renderer{
				Width:       int(cmd.Int("width")),
				HideHistory: cmd.Bool("no-history"),
			}
			sh := &shell{
				session: s,
				out:     cmd.Root().Writer,
				view:    view,
				quiet:   cmd.Bool("quiet"),
			}
			if err := sh.run(ctx, cmd.Root().Reader); err != nil {
				return err
			}

			if cmd.String("o") == "none" {
				return nil
			}
			return export(newApp(), cmd, s.Snapshot())
		},
	}
}

// shell drives a session from line input.
type shell struct {
	session *session.Session
	out     io.Writer
	view    *terminal.Renderer
	quiet   bool
}

func (sh *shell) run(ctx context.Context, in io.Reader) error {
	if !sh.quiet {
		if err := sh.view.Render(sh.out, sh.session.Snapshot()); err != nil {
			return err
		}
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(sc.Text())
		switch strings.ToLower(line) {
		case "quit", "exit":
			return nil
		case "help", "?":
			fmt.Fprint(sh.out, shellHelp)
			continue
		}

		if !sh.handle(line) {
			continue
		}

		if sh.quiet {
			if msg, ok := sh.session.Toast(); ok {
				fmt.Fprintln(sh.out, msg)
			}
			continue
		}
		if err := sh.view.Render(sh.out, sh.session.Snapshot()); err != nil {
			return err
		}
	}
	return sc.Err()
}

// handle runs one input line and reports whether it was a command. Parse
// and rejection errors are printed for the user, not returned.
func (sh *shell) handle(line string) bool {
	c, ok, err := script.ParseLine(line)
	if err != nil {
		fmt.Fprintf(sh.out, "! %v (type help for commands)\n", err)
		return false
	}
	if !ok {
		return false
	}

	if err := script.Exec(sh.session, c); err != nil {
		log.Debug("command rejected", "cmd", c.String(), "err", err)
		fmt.Fprintf(sh.out, "! %v\n", err)
	}
	return true
}
