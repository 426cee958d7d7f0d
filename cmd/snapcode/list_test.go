package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemesListsBuiltins(t *testing.T) {
	res := execute(t, nil, "themes")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "ID")
	assert.Contains(t, res.stdout, "palenight")
	assert.Contains(t, res.stdout, "default")
	assert.Contains(t, res.stdout, "dracula")
}

func TestThemesIncludesCustomDirectory(t *testing.T) {
	dir := t.TempDir()
	themesDir := filepath.Join(dir, "themes")
	require.NoError(t, os.MkdirAll(themesDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(themesDir, "ocean.yaml"), []byte(`id: ocean
name: Ocean
background: "#0f1c2e"
foreground: "#cdd6f4"
tokens:
  keyword: "#89b4fa"
`), 0o644))

	cfgPath := filepath.Join(dir, "snap.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("theme: ocean\nthemes_dir: "+themesDir+"\n"), 0o644))

	res := execute(t, nil, "themes", "--config", cfgPath, "--json")
	require.NoError(t, res.err, res.stderr)

	var entries []listEntry
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &entries))
	assert.Contains(t, entries, listEntry{ID: "ocean", Name: "Ocean", Detail: "default"})
}

func TestLanguagesJSON(t *testing.T) {
	res := execute(t, nil, "languages", "--json")
	require.NoError(t, res.err)

	var entries []listEntry
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &entries))
	require.NotEmpty(t, entries)
	assert.Equal(t, "csharp", entries[0].ID)
	assert.Equal(t, ".cs", entries[0].Detail)
}

func TestFontsMarksEmbedded(t *testing.T) {
	res := execute(t, nil, "fonts", "--json")
	require.NoError(t, res.err)

	var entries []listEntry
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &entries))
	assert.Contains(t, entries, listEntry{ID: "go-mono", Name: "Go Mono", Detail: "embedded"})
	assert.Contains(t, entries, listEntry{ID: "jetbrains-mono", Name: "JetBrains Mono", Detail: "remote"})
}
