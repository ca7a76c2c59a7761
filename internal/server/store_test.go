package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet"
	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet/models"
)

func newTestSession(store *Store) string {
	sheets := []models.Sheet{{Name: "PG", Rows: models.Grid{{"Game Code"}, {"G1"}}}}
	infos := []models.SheetInfo{{Name: "PG", Selected: true, VendorCode: "PG"}}
	return store.Create("catalog.xlsx", sheets, infos, vendorsheet.DefaultOptions())
}

func TestStoreLifecycle(t *testing.T) {
	store := NewStore(time.Hour)
	id := newTestSession(store)
	require.NotEmpty(t, id)
	assert.Equal(t, 1, store.Len())

	var fileName string
	ok := store.View(id, func(sess *Session) { fileName = sess.FileName })
	require.True(t, ok)
	assert.Equal(t, "catalog.xlsx", fileName)

	ok = store.Update(id, func(sess *Session) { sess.Options.BaseURL = "https://x.test" })
	require.True(t, ok)

	store.View(id, func(sess *Session) {
		assert.Equal(t, "https://x.test", sess.Options.BaseURL)
	})

	store.Delete(id)
	assert.False(t, store.View(id, func(*Session) {}))
	assert.Equal(t, 0, store.Len())
}

func TestStoreUnknownID(t *testing.T) {
	store := NewStore(time.Hour)
	assert.False(t, store.View("nope", func(*Session) {}))
	assert.False(t, store.Update("nope", func(*Session) {}))
	store.Delete("nope") // no-op
}

func TestStoreExpiry(t *testing.T) {
	store := NewStore(10 * time.Millisecond)
	id := newTestSession(store)

	time.Sleep(25 * time.Millisecond)
	assert.False(t, store.View(id, func(*Session) {}), "expired session must be invisible")

	removed := store.Sweep()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, store.Len())
}

func TestStoreUpdateRefreshesExpiry(t *testing.T) {
	store := NewStore(40 * time.Millisecond)
	id := newTestSession(store)

	time.Sleep(25 * time.Millisecond)
	require.True(t, store.Update(id, func(*Session) {}))
	time.Sleep(25 * time.Millisecond)

	assert.True(t, store.View(id, func(*Session) {}), "an update must reset the idle timer")
}
