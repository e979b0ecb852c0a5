// Generates an example HTML mood report and writes it to stdout.
// Usage: go run ./render/html/cmd/example > example.html
package main

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	htmlrender "github.com/sonnes/moodlog/render/html"
	"github.com/sonnes/moodlog/script"
	"github.com/sonnes/moodlog/session"
)

// week replays a few days of check-ins; "tick" lines advance the clock.
const week = `
fav 6
select 1
save Coffee with **Sam**, finally caught up.
tick 20h
select 7
save Long day. Reading before bed.
tick 26h
add "🥳 Excited" "Full of anticipation and energy." "Channel it into something creative."
select 9
save Demo went well:\
\
` + "```go" + `\
fmt.Println("shipped")\
` + "```" + `
tick 3h
select 2
select 1
save
`

func main() {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 2, 13, 8, 15, 0, 0, time.UTC))
	s := session.New(
		session.WithClock(clock),
		session.WithLogger(log.New(io.Discard)),
	)
	defer s.Close()

	var chunk strings.Builder
	replay := func() {
		cmds, err := script.Parse(strings.NewReader(chunk.String()))
		if err != nil {
			log.Fatal(err)
		}
		if err := script.Run(s, cmds); err != nil {
			log.Fatal(err)
		}
		chunk.Reset()
	}

	for _, line := range strings.Split(week, "\n") {
		d, ok := strings.CutPrefix(line, "tick ")
		if !ok {
			chunk.WriteString(line + "\n")
			continue
		}
		replay()
		dur, err := time.ParseDuration(d)
		if err != nil {
			log.Fatal(err)
		}
		clock.Advance(dur)
	}
	replay()

	if err := htmlrender.New().Render(os.Stdout, s.Snapshot()); err != nil {
		log.Fatal(err)
	}
}
