package catalog

import (
	"testing"

	"github.com/certhub/certhub/pkg/kvstore"
	"github.com/certhub/certhub/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSweeper struct {
	swept []string
}

func (f *fakeSweeper) DeleteForEvent(eventId string) error {
	f.swept = append(f.swept, eventId)
	return nil
}

func newTestCatalog(t *testing.T) (*Catalog, kvstore.Store) {
	t.Helper()
	store := kvstore.NewMemory()
	c, err := NewCatalog(store)
	require.NoError(t, err)
	return c, store
}

func TestCreateRequiresTitleAndDate(t *testing.T) {
	c, _ := newTestCatalog(t)

	_, err := c.Create("", "desc", "2025-01-01", "admin-1")
	assert.Error(t, err)

	_, err = c.Create("Workshop", "desc", "", "admin-1")
	assert.Error(t, err)

	assert.Empty(t, c.List())
}

func TestCreateAssignsIdAndTimestamp(t *testing.T) {
	c, _ := newTestCatalog(t)

	event, err := c.Create("Workshop", "intro", "2025-01-01", "admin-1")
	require.NoError(t, err)
	assert.NotEmpty(t, event.Id)
	assert.Equal(t, "admin-1", event.CreatedBy)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestUpdatePartialFields(t *testing.T) {
	c, _ := newTestCatalog(t)

	event, err := c.Create("Workshop", "intro", "2025-01-01", "admin-1")
	require.NoError(t, err)

	title := "Workshop v2"
	updated, err := c.Update(event.Id, Fields{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Workshop v2", updated.Title)
	assert.Equal(t, "intro", updated.Description)
	assert.Equal(t, "2025-01-01", updated.EventDate)
	assert.Equal(t, event.Id, updated.Id)
	assert.Equal(t, event.CreatedBy, updated.CreatedBy)
	assert.Equal(t, event.CreatedAt, updated.CreatedAt)
}

func TestUpdateUnknownEvent(t *testing.T) {
	c, _ := newTestCatalog(t)

	title := "x"
	_, err := c.Update("no-such-id", Fields{Title: &title})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteCascades(t *testing.T) {
	c, _ := newTestCatalog(t)
	sweeper := &fakeSweeper{}
	c.SetSweeper(sweeper)

	event, err := c.Create("Workshop", "", "2025-01-01", "admin-1")
	require.NoError(t, err)
	other, err := c.Create("Summit", "", "2025-02-01", "admin-1")
	require.NoError(t, err)

	require.NoError(t, c.Delete(event.Id))

	events := c.List()
	require.Len(t, events, 1)
	assert.Equal(t, other.Id, events[0].Id)
	assert.Equal(t, []string{event.Id}, sweeper.swept)
}

func TestDeleteUnknownEventIsNoOp(t *testing.T) {
	c, _ := newTestCatalog(t)
	sweeper := &fakeSweeper{}
	c.SetSweeper(sweeper)

	_, err := c.Create("Workshop", "", "2025-01-01", "admin-1")
	require.NoError(t, err)

	require.NoError(t, c.Delete("no-such-id"))
	assert.Len(t, c.List(), 1)
	assert.Empty(t, sweeper.swept)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	c, _ := newTestCatalog(t)

	first, err := c.Create("A", "", "2025-01-01", "admin-1")
	require.NoError(t, err)
	second, err := c.Create("B", "", "2025-01-02", "admin-1")
	require.NoError(t, err)

	events := c.List()
	require.Len(t, events, 2)
	assert.Equal(t, first.Id, events[0].Id)
	assert.Equal(t, second.Id, events[1].Id)
}

func TestCatalogReloadsFromStore(t *testing.T) {
	c, store := newTestCatalog(t)

	event, err := c.Create("Workshop", "intro", "2025-01-01", "admin-1")
	require.NoError(t, err)

	reloaded, err := NewCatalog(store)
	require.NoError(t, err)

	events := reloaded.List()
	require.Len(t, events, 1)
	assert.Equal(t, event.Id, events[0].Id)
	assert.Equal(t, event.Title, events[0].Title)
}
