package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/sonnes/moodlog/script"
	"github.com/sonnes/moodlog/session"
	"github.com/urfave/cli/v3"
)

func replayCmd() *cli.Command {
	return &cli.Command{
		Name:  "replay",
		Usage: "Run a command script through a fresh session and render the result",
		Description: `Reads one journal command per line (the same commands the shell accepts)
and applies them in order. Rejected commands are logged as warnings and
the run continues. The final state is rendered once at the end.`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "Path to the command script, - for stdin",
				Required: true,
			},
		}, exportFlags("terminal")...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cmds, err := readScript(cmd)
			if err != nil {
				return err
			}

			s := session.New(session.WithLogger(log.Default()))
			defer s.Close()

			if err := script.Run(s, cmds); err != nil {
				log.Warn("some commands were rejected", "err", err)
			}

			return export(newApp(), cmd, s.Snapshot())
		},
	}
}

func readScript(cmd *cli.Command) ([]script.Command, error) {
	path := cmd.String("file")
	if path == "-" {
		return script.Parse(cmd.Root().Reader)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	cmds, err := script.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cmds, nil
}
