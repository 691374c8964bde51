package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (map[string]any, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return nil, err
	}

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got), out.String())
	return got, nil
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestClassify(t *testing.T) {
	got, err := run(t, "classify", "Book", "a", "private", "jet", "to", "TEB")
	require.NoError(t, err)
	assert.Equal(t, true, got["isRelevant"])
}

func TestSubintent(t *testing.T) {
	got, err := run(t, "subintent", "Find executive assistants at private equity firms in New York")
	require.NoError(t, err)
	assert.Equal(t, "structured-search-by-person", got["intentType"])
	assert.Equal(t, true, got["requiresExternalFetch"])
}

func TestRoute(t *testing.T) {
	history := writeFile(t, "history.yaml", "- role: user\n  content: we fly on Friday\n")

	got, err := run(t, "route", "--mode", "general", "--history", history, "Search for available Gulfstream aircraft for charter")
	require.NoError(t, err)
	assert.Equal(t, "general-only", got["strategy"])

	instructions := got["instructions"].(map[string]any)
	assert.Contains(t, instructions["generalPrompt"], "user: we fly on Friday")

	got, err = run(t, "route", "Search for available Gulfstream aircraft for charter")
	require.NoError(t, err)
	assert.Equal(t, "workflow-only", got["strategy"])
}

func TestRoute_BadHistory(t *testing.T) {
	history := writeFile(t, "history.json", `[{"role":"system","content":"x"}]`)

	_, err := run(t, "route", "--history", history, "hello")
	assert.ErrorContains(t, err, "unknown role")
}

func TestRecommend(t *testing.T) {
	got, err := run(t, "recommend", "What's the weather like today?")
	require.NoError(t, err)
	assert.Equal(t, "general-only", got["strategy"])
}

func TestCustomLexicon(t *testing.T) {
	lex := writeFile(t, "lexicon.yaml", `
domain: Maritime
categories:
  - name: vessels
    keywords: [yacht, catamaran]
phrases: [yacht charter]
`)

	got, err := run(t, "--lexicon", lex, "classify", "yacht charter in the Med")
	require.NoError(t, err)
	assert.Equal(t, true, got["isRelevant"])
	assert.Contains(t, got["reason"], "Maritime")

	_, err = run(t, "--lexicon", filepath.Join(t.TempDir(), "missing.yaml"), "classify", "x")
	assert.Error(t, err)
}

func TestArgsRequired(t *testing.T) {
	_, err := run(t, "classify")
	assert.Error(t, err)
}
