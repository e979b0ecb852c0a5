package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newRootCmd().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:  "moodlog",
		Usage: "Log how you feel, jot a note, and watch your mood history take shape",
		Description: `
                       _ _
  _ __  ___  ___  __| | |___  __ _
 | '  \/ _ \/ _ \/ _' | / _ \/ _' |
 |_|_|_\___/\___/\__,_|_\___/\__, |
                             |___/

 One screen, one session: pick a mood, add a note, see the pattern.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log",
				Usage:   "Log level: debug, info, warn, error",
				Value:   "error",
				Sources: cli.EnvVars("MOODLOG_LOG"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			shellCmd(),
			replayCmd(),
			moodsCmd(),
		},
	}
}
