package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/adapters/memory"
	"github.com/aretw0/jot/pkg/core"
)

func note(id, title string) core.Note {
	return core.Note{ID: id, Title: title, Description: "d", Date: "2024-01-02", Priority: core.PriorityLow}
}

func TestStore_PreservesInsertionOrder(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, s.Add(ctx, note(id, id)))
	}

	notes, err := s.List(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestStore_EditInPlace(t *testing.T) {
	s := memory.NewStore(note("1", "one"), note("2", "two"), note("3", "three"))
	ctx := context.Background()

	require.NoError(t, s.Edit(ctx, note("2", "TWO")))

	notes, _ := s.List(ctx)
	assert.Equal(t, []core.Note{note("1", "one"), note("2", "TWO"), note("3", "three")}, notes)

	assert.ErrorIs(t, s.Edit(ctx, note("9", "nine")), core.ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	s := memory.NewStore(note("1", "one"), note("2", "two"))
	ctx := context.Background()

	before, _ := s.List(ctx)
	require.NoError(t, s.Delete(ctx, "missing"))
	after, _ := s.List(ctx)
	assert.Equal(t, before, after)

	require.NoError(t, s.Delete(ctx, "1"))
	_, err := s.Get(ctx, "1")
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Equal(t, 1, s.Len())
}

func TestStore_DuplicateID(t *testing.T) {
	s := memory.NewStore(note("1", "one"))

	err := s.Add(context.Background(), note("1", "again"))
	assert.ErrorIs(t, err, core.ErrDuplicateID)
	assert.Equal(t, 1, s.Len())
}

func TestStore_ListIsSnapshot(t *testing.T) {
	s := memory.NewStore(note("1", "one"))
	ctx := context.Background()

	notes, _ := s.List(ctx)
	notes[0].Title = "mutated"

	got, _ := s.Get(ctx, "1")
	assert.Equal(t, "one", got.Title)
}

func TestStore_Watch(t *testing.T) {
	s := memory.NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := s.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Add(ctx, note("1", "one")))
	require.NoError(t, s.Edit(ctx, note("1", "uno")))
	require.NoError(t, s.Delete(ctx, "1"))
	require.NoError(t, s.Delete(ctx, "1")) // no-op, no event

	var got []core.EventType
	for i := 0; i < 3; i++ {
		select {
		case e := <-events:
			assert.Equal(t, "1", e.ID)
			got = append(got, e.Type)
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for event")
		}
	}
	assert.Equal(t, []core.EventType{core.EventCreate, core.EventModify, core.EventDelete}, got)

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)

	state := s.State().(memory.StoreState)
	assert.Equal(t, 0, state.Subscribers)
}

func TestStore_WatchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := memory.NewStore().Watch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
