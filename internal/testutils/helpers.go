// Package testutils holds fixtures shared by tests that need topic documents on disk.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/stretchr/testify/require"
)

// Animals is a two-question topic document in JSON form.
const Animals = `{
  "titlu": "Animale",
  "radacina": {
    "intrebare": "zboara?",
    "da": {"entitate": {"nume": "vultur", "domeniu": "animale", "tip": "pasare"}},
    "nu": {"entitate": {"nume": "pisica", "domeniu": "animale", "tip": "mamifer"}}
  }
}`

// TopicDir writes files (name to content) into a fresh temp directory
// and returns its absolute path.
func TopicDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir, err := filepath.Abs(t.TempDir())
	require.NoError(t, err)
	WriteTopics(t, dir, files)
	return dir
}

// WriteTopics writes files (name to content) into dir.
func WriteTopics(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "write %s", name)
	}
}

// SetupTopicRepo initializes a loam repository over a temp directory seeded with files.
func SetupTopicRepo(t *testing.T, files map[string]string, opts ...loam.Option) (string, core.Repository) {
	t.Helper()
	dir := TopicDir(t, files)
	repo, err := loam.Init(dir, opts...)
	require.NoError(t, err, "init loam repository")
	return dir, repo
}
