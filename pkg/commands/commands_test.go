package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func sandbox(t *testing.T) {
	t.Helper()
	t.Setenv("DECK_CONFIG_PATH", t.TempDir())
	t.Setenv("DECK_PATH", t.TempDir())
}

func TestCommandTree(t *testing.T) {
	cmd := New()
	want := []string{
		"ui", "modules", "add", "list", "done", "rm", "history", "export", "import",
		"clear", "register", "login", "logout", "whoami", "theme", "info", "mcp",
		"version", "upgrade", "completion", "guide",
	}
	var got []string
	for _, c := range cmd.Commands() {
		got = append(got, c.Name())
	}
	assert.Subset(t, got, want)
}

func TestModulesCommand(t *testing.T) {
	out, err := run(t, "modules")
	require.NoError(t, err)
	assert.Contains(t, out, "focusTimer")
	assert.Contains(t, out, "Focus Timer")
}

func TestAddListDone(t *testing.T) {
	sandbox(t)

	out, err := run(t, "add", "todo", "call", "the", "bank")
	require.NoError(t, err)
	assert.Contains(t, out, "• call the bank")

	out, err = run(t, "list", "todos", "--json")
	require.NoError(t, err)
	var doc map[string][]struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Done  bool   `json:"done"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc["todos"], 1)
	id := doc["todos"][0].ID

	out, err = run(t, "done", "todos", id)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ call the bank")

	out, err = run(t, "list", "--open")
	require.NoError(t, err)
	assert.NotContains(t, out, "call the bank")

	_, err = run(t, "rm", "todos", id)
	require.NoError(t, err)
}

func TestJSONErrors(t *testing.T) {
	sandbox(t)

	// Errors are written to color.Output as JSON rather than returned.
	_, err := run(t, "add", "bogus", "text", "--json")
	assert.NoError(t, err)

	_, err = run(t, "add", "bogus", "text")
	assert.Error(t, err)
}

func TestThemeCommand(t *testing.T) {
	sandbox(t)

	out, err := run(t, "theme", "light", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme": "light", "accentColor": "#7d56f4"}`, out)
}
