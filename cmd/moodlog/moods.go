package main

import (
	"context"
	"fmt"

	"github.com/sonnes/moodlog/core"
	"github.com/urfave/cli/v3"
)

func moodsCmd() *cli.Command {
	return &cli.Command{
		Name:  "moods",
		Usage: "List the built-in moods",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "tips",
				Usage: "Include the coping tip for each mood",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := cmd.Root().Writer
			for i, m := range core.BuiltinMoods() {
				fmt.Fprintf(w, "%d. %s  %s\n", i+1, m.Label, m.Description)
				if cmd.Bool("tips") {
					fmt.Fprintf(w, "   Tip: %s\n", m.Tip)
				}
			}
			return nil
		},
	}
}
