package loam

import (
	"context"
	"testing"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"

	"github.com/aretw0/arbor/internal/testutils"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports/tests"
	"github.com/aretw0/arbor/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const countriesMD = `---
radacina:
  intrebare: e in europa?
  da:
    intrebare: are iesire la mare?
    da:
      entitate: {nume: romania, domeniu: geografie, tip: tara}
    nu:
      entitate: {nume: austria, domeniu: geografie, tip: tara}
  nu:
    entitate: {nume: japonia, domeniu: geografie, tip: tara}
---
Tari din lume.`

func TestLoader_Contract(t *testing.T) {
	_, repo := testutils.SetupTopicRepo(t, nil)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, core.Document{ID: "tari.md", Content: countriesMD}))

	loader := New(loam.NewTypedRepository[TopicMetadata](repo))

	tests.TopicLoaderContractTest(t, loader, map[string]int{"tari": 5})
}

func TestLoader_JSONDocuments(t *testing.T) {
	_, repo := testutils.SetupTopicRepo(t, map[string]string{"animale.json": testutils.Animals})

	loader := New(loam.NewTypedRepository[TopicMetadata](repo))

	doc, err := loader.GetDocument(context.Background(), "animale")
	require.NoError(t, err)

	tree, err := schema.DecodeTree("animale", doc)
	require.NoError(t, err)
	assert.Equal(t, 2, tree.Depth())
	assert.Equal(t, 3, tree.NodeCount())

	titles, err := loader.Titles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Animale", titles["animale"])
}

func TestLoader_MissingRootIsHandedToDecoder(t *testing.T) {
	_, repo := testutils.SetupTopicRepo(t, map[string]string{"gol.json": `{"titlu": "fara radacina"}`})

	loader := New(loam.NewTypedRepository[TopicMetadata](repo))

	doc, err := loader.GetDocument(context.Background(), "gol")
	require.NoError(t, err)
	assert.NotContains(t, doc, domain.KeyRoot)

	_, err = schema.DecodeTree("gol", doc)
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)
}

func TestLoader_ListTopics_NormalizesIDs(t *testing.T) {
	_, repo := testutils.SetupTopicRepo(t, map[string]string{
		"animale.json": testutils.Animals,
		"tari.md":      countriesMD,
	})

	loader := New(loam.NewTypedRepository[TopicMetadata](repo))

	ids, err := loader.ListTopics(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"animale", "tari"}, ids)
}

func TestLoader_ListTopics_DetectsCollisions(t *testing.T) {
	_, repo := testutils.SetupTopicRepo(t, map[string]string{
		"foo.md": `---
id: foo
---
Explicit ID`,
		"foo.json": `{"id": "foo"}`,
	})

	loader := New(loam.NewTypedRepository[TopicMetadata](repo))

	_, err := loader.ListTopics(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collision detected")
	assert.Contains(t, err.Error(), "foo")
}
