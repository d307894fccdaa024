package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/arbor/internal/testutils"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "arbor version "))
}

func TestPlayCommand(t *testing.T) {
	dir := testutils.TopicDir(t, map[string]string{"animale.json": testutils.Animals})
	input := filepath.Join(t.TempDir(), "intrare.txt")
	output := filepath.Join(t.TempDir(), "raspuns.txt")
	require.NoError(t, os.WriteFile(input, []byte("animale\nnu\nda\n"), 0644))

	_, err := run(t, "play", "--config", filepath.Join(dir, "none.yaml"), "--dir", dir, "--input", input, "--output", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "pisica\n\n--- structure checks ---\ntopics: [animale(3 nodes)]\ncurrent tree (depth): 2\n", string(data))
}

func TestTopicsCommand(t *testing.T) {
	dir := testutils.TopicDir(t, map[string]string{"animale.json": testutils.Animals})

	out, err := run(t, "topics", "--config", filepath.Join(dir, "none.yaml"), "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "animale")
	assert.Contains(t, out, "TOPIC")
	assert.Contains(t, out, "Animale", "title from the document metadata")
}

func TestValidateCommand(t *testing.T) {
	dir := testutils.TopicDir(t, map[string]string{
		"animale.json": testutils.Animals,
		"stricat.json": `{"radacina": {"intrebare": "?", "da": {}}}`,
	})

	out, err := run(t, "validate", "--config", filepath.Join(dir, "none.yaml"), "--dir", dir)
	assert.Error(t, err)
	assert.Contains(t, out, "ok    animale")
	assert.Contains(t, out, "FAIL  stricat")
}
