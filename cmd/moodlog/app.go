package main

import (
	"fmt"

	"github.com/sonnes/moodlog/compact"
	"github.com/sonnes/moodlog/core"
	"github.com/sonnes/moodlog/redact"
	"github.com/sonnes/moodlog/render"
	htmlrender "github.com/sonnes/moodlog/render/html"
	jsonrender "github.com/sonnes/moodlog/render/json"
	"github.com/sonnes/moodlog/render/terminal"
	"github.com/urfave/cli/v3"
)

// app holds the renderer registry used by CLI commands.
type app struct {
	renderers map[string]func() render.Renderer
}

func newApp() *app {
	return &app{
		renderers: map[string]func() render.Renderer{
			"terminal": func() render.Renderer { return terminal.New() },
			"json":     func() render.Renderer { return jsonrender.New(true) },
			"html":     func() render.Renderer { return htmlrender.New() },
		},
	}
}

func (a *app) renderer(name string) (render.Renderer, error) {
	fn, ok := a.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return fn(), nil
}

// exportFlags are shared by commands that print a final snapshot. format is
// the default output format.
func exportFlags(format string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "o",
			Aliases: []string{"output"},
			Usage:   "Output format: terminal, json, html",
			Value:   format,
		},
		&cli.BoolFlag{
			Name:  "no-redact",
			Usage: "Disable redaction of secrets and PII in notes",
		},
		&cli.StringSliceFlag{
			Name:  "redact",
			Usage: "Allowlist of rules to redact. Example: --redact=secrets,pii",
		},
		&cli.IntFlag{
			Name:  "compact",
			Usage: "Collapse notes to one line of at most N characters (0 keeps full notes, -1 keeps full lines)",
		},
	}
}

// newRedactor builds a Redactor from CLI flags. Returns nil when --no-redact is set.
func newRedactor(cmd *cli.Command) (*redact.Redactor, error) {
	if cmd.Bool("no-redact") {
		return nil, nil
	}

	cfg := redact.Config{}
	rules := cmd.StringSlice("redact")

	if len(rules) == 0 {
		cfg.Secrets = true
		cfg.PII = true
	} else {
		for _, r := range rules {
			switch r {
			case "secrets":
				cfg.Secrets = true
			case "pii":
				cfg.PII = true
			default:
				return nil, fmt.Errorf("unknown redaction rule %q", r)
			}
		}
	}

	return redact.New(cfg), nil
}

// transformers builds the snapshot transformer chain from CLI flags.
func transformers(cmd *cli.Command) ([]core.Transformer, error) {
	var out []core.Transformer

	redactor, err := newRedactor(cmd)
	if err != nil {
		return nil, err
	}
	if redactor != nil {
		out = append(out, redactor)
	}

	switch n := int(cmd.Int("compact")); {
	case n > 0:
		out = append(out, compact.New(compact.Config{MaxWidth: n}))
	case n < 0:
		out = append(out, compact.New(compact.Config{}))
	}
	return out, nil
}

// export transforms a snapshot and writes it with the selected renderer.
func export(a *app, cmd *cli.Command, snap *core.Snapshot) error {
	chain, err := transformers(cmd)
	if err != nil {
		return err
	}
	if err := core.Chain(snap, chain...); err != nil {
		return fmt.Errorf("transform: %w", err)
	}

	rnd, err := a.renderer(cmd.String("o"))
	if err != nil {
		return err
	}
	if err := rnd.Render(cmd.Root().Writer, snap); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
