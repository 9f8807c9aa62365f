package json

import (
	"testing"

	"github.com/drakos74/free-screen/internal/storage"
	"github.com/stretchr/testify/assert"
)

type event struct {
	Trial int     `json:"trial"`
	Hits  int     `json:"hits"`
	Score float64 `json:"score"`
}

func TestRegistry_RoundTrip(t *testing.T) {

	storage.DefaultDir = t.TempDir()

	registry, err := EventRegistry("test-registry")("trials")
	assert.NoError(t, err)

	key := storage.K{
		Deck:  "deck-1",
		Label: "greedy",
	}

	events := []event{
		{Trial: 0, Hits: 3, Score: 0.3},
		{Trial: 1, Hits: 5, Score: 0.5},
		{Trial: 2, Hits: 2, Score: 0.2},
	}

	for _, e := range events {
		err := registry.Add(key, e)
		assert.NoError(t, err)
	}

	var got []event
	err = registry.GetAll(key, &got)
	assert.NoError(t, err)
	assert.Equal(t, events, got)

}

func TestRegistry_Empty(t *testing.T) {

	storage.DefaultDir = t.TempDir()

	registry, err := EventRegistry("test-registry")("")
	assert.NoError(t, err)
	assert.Equal(t, "test-registry", registry.Root())

	// a key that was never written to yields no events
	var got []event
	err = registry.GetAll(storage.K{Deck: "nothing", Label: "here"}, &got)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(got))

}

func TestBlobStorage_RoundTrip(t *testing.T) {

	storage.DefaultDir = t.TempDir()

	store, err := BlobShard("reports")("screen")
	assert.NoError(t, err)

	key := storage.Key{
		Hash:  42,
		Deck:  "deck-1",
		Label: "report",
	}

	in := event{Trial: 7, Hits: 11, Score: 0.11}
	assert.NoError(t, store.Store(key, in))

	var out event
	assert.NoError(t, store.Load(key, &out))
	assert.Equal(t, in, out)

	err = store.Load(storage.Key{Hash: 1, Deck: "missing", Label: "report"}, &out)
	assert.True(t, err != nil)

}
