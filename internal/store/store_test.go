package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "data", "skyline.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetMissingKeyReturnsNil(t *testing.T) {
	s := openTestStore(t)

	value, err := s.Get(context.Background(), "projects")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestPutThenGetRoundtrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "settings", []byte(`{"company":"Skyline"}`)))
	value, err := s.Get(ctx, "settings")
	require.NoError(t, err)
	assert.JSONEq(t, `{"company":"Skyline"}`, string(value))

	// Overwrite.
	require.NoError(t, s.PutJSON(ctx, "settings", map[string]string{"company": "Skyline Homes"}))
	value, err = s.Get(ctx, "settings")
	require.NoError(t, err)
	assert.JSONEq(t, `{"company":"Skyline Homes"}`, string(value))
}

func TestPutRejectsInvalidJSON(t *testing.T) {
	s := openTestStore(t)

	err := s.Put(context.Background(), "settings", []byte("{not json"))
	assert.Error(t, err)
}

func TestAddAssignsIDsAndListKeepsOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id1, err := s.Add(ctx, "enquiries", map[string]string{"name": "Asha"})
	require.NoError(t, err)
	id2, err := s.Add(ctx, "enquiries", map[string]string{"name": "Ravi"})
	require.NoError(t, err)
	_, err = s.Add(ctx, "leads", map[string]string{"name": "Other"})
	require.NoError(t, err)

	assert.NotEmpty(t, id1)
	assert.NotEqual(t, id1, id2)

	items, err := s.List(ctx, "enquiries")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, id1, items[0].ID)
	assert.Equal(t, id2, items[1].ID)

	var body map[string]string
	require.NoError(t, json.Unmarshal(items[1].Body, &body))
	assert.Equal(t, "Ravi", body["name"])
	assert.False(t, items[0].CreatedAt.IsZero())
}

func TestAddRequiresCollection(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Add(context.Background(), "", map[string]string{})
	assert.Error(t, err)
}

func TestWritesPublishEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	sub := s.Bus().Subscribe()
	defer sub.Close()

	require.NoError(t, s.Put(ctx, "banners", []byte(`[]`)))
	_, err := s.Add(ctx, "leads", map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, Event{Key: "banners"}, <-sub.C())
	assert.Equal(t, Event{Collection: "leads"}, <-sub.C())
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skyline.db")
	ctx := context.Background()

	s, err := Open(ctx, path, nil)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "blog", []byte(`[]`)))
	require.NoError(t, s.Close())

	s, err = Open(ctx, path, nil)
	require.NoError(t, err)
	defer s.Close()
	value, err := s.Get(ctx, "blog")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(value))
	assert.Equal(t, path, s.Path())
}
