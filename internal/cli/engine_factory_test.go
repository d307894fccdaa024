package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/arbor/internal/config"
	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/internal/testutils"
	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/adapters/sqlite"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/runner"
)

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arbor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dir: ./subiecte\nlog: {level: warn}\n"), 0644))

	cfg, err := LoadConfig(GlobalOptions{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "./subiecte", cfg.Dir)
	assert.Equal(t, "warn", cfg.Log.Level)

	cfg, err = LoadConfig(GlobalOptions{ConfigPath: path, Dir: "altundeva", Debug: true})
	require.NoError(t, err)
	assert.Equal(t, "altundeva", cfg.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestCreateLogger_RejectsUnknownLevel(t *testing.T) {
	_, err := CreateLogger(config.Log{Level: "loud", Format: "text"})
	assert.Error(t, err)

	logger, err := CreateLogger(config.Log{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestOpenJournal(t *testing.T) {
	ctx := context.Background()

	j, closer, err := OpenJournal(ctx, config.Journal{Driver: config.DriverNone})
	require.NoError(t, err)
	assert.Nil(t, j)
	assert.NoError(t, closer.Close())

	j, _, err = OpenJournal(ctx, config.Journal{Driver: config.DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &memory.Journal{}, j)

	j, closer, err = OpenJournal(ctx, config.Journal{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "plays.db")})
	require.NoError(t, err)
	assert.IsType(t, &sqlite.Journal{}, j)
	assert.NoError(t, closer.Close())

	_, _, err = OpenJournal(ctx, config.Journal{Driver: "kafka"})
	assert.Error(t, err)
}

func TestCreateEngine_FromDirectory(t *testing.T) {
	dir := testutils.TopicDir(t, map[string]string{"animale.json": testutils.Animals})

	cfg := config.Default()
	cfg.Dir = dir
	cfg.MissingConfirmation = string(domain.ConfirmAccept)
	cfg.Journal = config.Journal{Driver: config.DriverMemory}
	logger := logging.NewNop()

	eng, closeFn, err := CreateEngine(context.Background(), cfg, logger)
	require.NoError(t, err)
	defer closeFn()
	require.NoError(t, LoadTopics(context.Background(), eng, logger))

	out, err := eng.Play(context.Background(), runner.NewSliceSource("animale", "nu"))
	require.NoError(t, err)
	assert.Equal(t, "pisica", out.Entity, "missing confirmation accepted")

	plays, err := eng.History(context.Background(), "animale", 0)
	require.NoError(t, err)
	assert.Len(t, plays, 1)
}

func TestLoadTopics_NothingLoaded(t *testing.T) {
	dir := testutils.TopicDir(t, map[string]string{"stricat.json": `{"titlu": "x"}`})

	cfg := config.Default()
	cfg.Dir = dir
	eng, closeFn, err := CreateEngine(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	defer closeFn()

	err = LoadTopics(context.Background(), eng, logging.NewNop())
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)
}

func TestLoadErrors(t *testing.T) {
	a, b := errors.New("a"), errors.New("b")
	assert.Equal(t, []error{a, b}, LoadErrors(errors.Join(a, b)))
	assert.Equal(t, []error{a}, LoadErrors(a))
	assert.Nil(t, LoadErrors(nil))
}
