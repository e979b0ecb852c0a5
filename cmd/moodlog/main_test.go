package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/sonnes/moodlog/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args, feeding stdin and capturing
// stdout.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.Writer = &out
	root.ErrWriter = &out
	root.Reader = strings.NewReader(stdin)
	err := root.Run(context.Background(), append([]string{"moodlog"}, args...))
	return out.String(), err
}

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "day.moodlog")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func decodeSnapshot(t *testing.T, out string) core.Snapshot {
	t.Helper()
	start := strings.Index(out, "{")
	require.GreaterOrEqual(t, start, 0, "no JSON in output: %s", out)
	var snap core.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out[start:]), &snap))
	return snap
}

const dayScript = `# a short day
add "🥳 Excited" "Full of energy"
select 9
save Demo day, emailed jo@example.com\
then celebrated
select 1
save
`

func TestReplayJSON(t *testing.T) {
	out, err := runCLI(t, "", "replay", "--file", writeScript(t, dayScript), "-o", "json")
	require.NoError(t, err)

	snap := decodeSnapshot(t, out)
	require.Len(t, snap.History, 2)
	assert.Equal(t, "😊 Happy", snap.History[0].MoodLabel)
	assert.Equal(t, "🥳 Excited", snap.History[1].MoodLabel)
	assert.Equal(t, "Demo day, emailed [REDACTED:email]\nthen celebrated", snap.History[1].Note)
	assert.Equal(t, 3, snap.Streak)
	assert.Equal(t, 9, snap.CatalogSize)
	assert.True(t, snap.LoggedToday)
}

func TestReplayNoRedactCompact(t *testing.T) {
	out, err := runCLI(t, "", "replay", "-f", writeScript(t, dayScript), "-o", "json", "--no-redact", "--compact=-1")
	require.NoError(t, err)

	snap := decodeSnapshot(t, out)
	require.Len(t, snap.History, 2)
	assert.Equal(t, "Demo day, emailed jo@example.com [+1 line]", snap.History[1].Note)
}

func TestReplayRedactRules(t *testing.T) {
	_, err := runCLI(t, "", "replay", "-f", writeScript(t, dayScript), "--redact", "vibes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown redaction rule "vibes"`)
}

func TestReplayRejectionsContinue(t *testing.T) {
	src := "delete 1\nadd \"\" \"no label\"\nselect 2\n"
	out, err := runCLI(t, "", "replay", "-f", writeScript(t, src), "-o", "json")
	require.NoError(t, err)

	snap := decodeSnapshot(t, out)
	require.NotNil(t, snap.Selected)
	assert.Equal(t, "😢 Sad", snap.Selected.Label)
	assert.Equal(t, 8, snap.CatalogSize)
}

func TestReplayParseError(t *testing.T) {
	_, err := runCLI(t, "", "replay", "-f", writeScript(t, "select 1\nboogie\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReplayStdinTerminal(t *testing.T) {
	out, err := runCLI(t, "select 3\n", "replay", "-f", "-")
	require.NoError(t, err)

	out = ansi.Strip(out)
	assert.Contains(t, out, "🔥 Streak: 2 days")
	assert.Contains(t, out, "Tip: Take deep breaths or go for a walk to cool down.")
}

func TestReplayUnknownFormat(t *testing.T) {
	_, err := runCLI(t, "", "replay", "-f", writeScript(t, ""), "-o", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "pdf"`)
}

func TestShellQuiet(t *testing.T) {
	in := "help\nselect 1\nwiggle\nnote slept well\nsave\nselect 42\nquit\nselect 2\n"
	out, err := runCLI(t, in, "shell", "--quiet", "-o", "json")
	require.NoError(t, err)

	assert.Contains(t, out, "Commands (positions are the numbers shown in the list):")
	assert.Contains(t, out, "You are feeling Happy!")
	assert.Contains(t, out, `! unknown command "wiggle"`)
	assert.Contains(t, out, "Mood and note saved!")
	assert.Contains(t, out, "no mood at that position")

	snap := decodeSnapshot(t, out)
	require.Len(t, snap.History, 1)
	assert.Equal(t, "slept well", snap.History[0].Note)
	assert.Nil(t, snap.Selected, "input after quit is ignored")
}

func TestShellRedraws(t *testing.T) {
	out, err := runCLI(t, "fav 4\nsearch surprise\n", "shell", "--width", "80")
	require.NoError(t, err)

	out = ansi.Strip(out)
	assert.Equal(t, 3, strings.Count(out, "How are you feeling today?"), "initial draw plus one per command")
	assert.Contains(t, out, "1. ★ 😱 Surprised")
	assert.Contains(t, out, "search: surprise")
	assert.NotContains(t, out, "{", "no final export by default")
}

func TestShellNoHistory(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "default", args: []string{"shell"}, want: true},
		{name: "hidden", args: []string{"shell", "--no-history"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, "select 1\nsave slept well\n", tt.args...)
			require.NoError(t, err)

			out = ansi.Strip(out)
			assert.Contains(t, out, "How are you feeling today?")
			assert.Equal(t, tt.want, strings.Contains(out, "HISTORY"))
			assert.Equal(t, tt.want, strings.Contains(out, "ANALYTICS"))
		})
	}
}

func TestMoods(t *testing.T) {
	out, err := runCLI(t, "", "moods", "--tips")
	require.NoError(t, err)
	assert.Contains(t, out, "1. 😊 Happy  Feeling or showing pleasure or contentment.")
	assert.Contains(t, out, "8. 😇 Grateful")
	assert.Contains(t, out, "Tip: Express your gratitude to someone today.")
}

func TestLogLevelFlag(t *testing.T) {
	_, err := runCLI(t, "", "--log", "shouty", "moods")
	require.Error(t, err)
}
