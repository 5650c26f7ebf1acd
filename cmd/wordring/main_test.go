package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordring/chain"
	"github.com/katalvlaran/wordring/internal/config"
)

// execute runs a fresh command tree with captured streams.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errb bytes.Buffer
	root, _ := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errb)
	root.SetIn(strings.NewReader(stdin))
	err := root.Execute()

	return out.String(), errb.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestCheck_Args(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"check", "geek", "king"}, "chainable\n"},
		{[]string{"check", "for", "geek", "rig", "kaf"}, "chainable\n"},
		{[]string{"check", "abc", "xyz"}, "not chainable\n"},
		{[]string{"check", "GeeK", "King"}, "chainable\n"},
		{[]string{"check", "--case-sensitive", "GeeK", "King"}, "not chainable\n"},
		{[]string{"check"}, "chainable\n"},
	}
	for _, tc := range cases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, _, err := execute(t, "", tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestCheck_Explain(t *testing.T) {
	out, _, err := execute(t, "", "check", "--explain", "abc", "xyz")
	require.NoError(t, err)

	assert.Contains(t, out, "not chainable\n")
	assert.Contains(t, out, "words: 2 (skipped 0)")
	assert.Contains(t, out, "characters: a c x z")
	assert.Contains(t, out, "unreachable: c x z")
	assert.Contains(t, out, "unbalanced: a ends 0, starts 1")
}

func TestCheck_JSONOutput(t *testing.T) {
	out, _, err := execute(t, "", "check", "-o", "json", "aaa", "bbb", "baa", "aab")
	require.NoError(t, err)

	var rep chain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.True(t, rep.Chainable)
	assert.Equal(t, 4, rep.Words)
	assert.Equal(t, []string{"a", "b"}, rep.Characters)
}

func TestCheck_YAMLOutput(t *testing.T) {
	out, _, err := execute(t, "", "check", "--output", "yaml", "ab", "bc")
	require.NoError(t, err)

	var rep chain.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.False(t, rep.Chainable)
	assert.Equal(t, []string{"b", "c"}, rep.Unreachable)
	assert.Len(t, rep.Unbalanced, 2)
}

func TestCheck_File(t *testing.T) {
	path := writeFile(t, "words.toml", "words = [\"for\", \"geek\", \"rig\", \"kaf\"]\n")
	out, _, err := execute(t, "", "check", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "chainable\n", out)
}

func TestCheck_Stdin(t *testing.T) {
	out, _, err := execute(t, "geek\n# note\nking\n", "check", "-f", "-")
	require.NoError(t, err)
	assert.Equal(t, "chainable\n", out)

	out, _, err = execute(t, `["abc", "xyz"]`, "check", "-f", "-", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, "not chainable\n", out)
}

func TestCheck_EmptyWordPolicy(t *testing.T) {
	path := writeFile(t, "words.json", `{"words": ["geek", "", "king"]}`)

	_, _, err := execute(t, "", "check", "--file", path)
	assert.ErrorIs(t, err, chain.ErrEmptyWord)

	out, _, err := execute(t, "", "check", "--file", path, "--skip-empty")
	require.NoError(t, err)
	assert.Equal(t, "chainable\n", out)
}

func TestCheck_ConfigFile(t *testing.T) {
	cfgPath := writeFile(t, "wordring.yaml", "words:\n  skip_empty: true\noutput:\n  format: json\n")
	words := writeFile(t, "words.yaml", "- aa\n- \"\"\n")

	out, _, err := execute(t, "", "--config", cfgPath, "check", "--file", words)
	require.NoError(t, err)

	var rep chain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.True(t, rep.Chainable)
	assert.Equal(t, 1, rep.Skipped)
}

func TestCheck_ArgsAndFile(t *testing.T) {
	path := writeFile(t, "w.txt", "a\n")
	_, _, err := execute(t, "", "check", "--file", path, "extra")
	assert.Error(t, err)
}

func TestCheck_InvalidOutput(t *testing.T) {
	_, _, err := execute(t, "", "check", "-o", "html", "a")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestCheck_ExitCode(t *testing.T) {
	_, _, err := execute(t, "", "check", "--exit-code", "abc")
	assert.ErrorIs(t, err, errNotChainable)

	_, _, err = execute(t, "", "check", "--exit-code", "aba")
	assert.NoError(t, err)

	var out, errb bytes.Buffer
	assert.Equal(t, 2, run([]string{"check", "--exit-code", "abc"}, &out, &errb))
	assert.Equal(t, 1, run([]string{"check", "-o", "html"}, &out, &errb))
}

func TestRun_ErrorUsesConfiguredLogger(t *testing.T) {
	var out, errb bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.txt")
	code := run([]string{"--log-format", "json", "check", "--file", missing}, &out, &errb)
	assert.Equal(t, 1, code)

	var line map[string]any
	lines := strings.Split(strings.TrimSpace(errb.String()), "\n")
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &line), errb.String())
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "wordring failed", line["message"])
	assert.Contains(t, line["error"], "missing.txt")
}

func TestRun_ErrorBeforeConfigFallsBackToConsole(t *testing.T) {
	var out, errb bytes.Buffer
	code := run([]string{"--log-format", "json", "check", "-o", "html", "a"}, &out, &errb)
	assert.Equal(t, 1, code)

	got := errb.String()
	assert.Contains(t, got, "wordring failed")
	assert.NotContains(t, got, `"message":`)
	assert.Empty(t, out.String())
}

func TestCheck_Logging(t *testing.T) {
	_, stderr, err := execute(t, "", "--log-level", "debug", "--log-format", "json", "check", "geek", "king")
	require.NoError(t, err)

	assert.Contains(t, stderr, `"message":"words loaded"`)
	assert.Contains(t, stderr, `"message":"chain graph built"`)
	assert.Contains(t, stderr, `"message":"check finished"`)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "wordring dev\n", out)
}
