package history

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediasort/internal/organize"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store, err := New(db)
	require.NoError(t, err)
	return store
}

// Open must work without any caller importing the driver; the store
// registers it itself.
func TestOpen_RegistersDriver(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	report := &organize.Report{
		TotalFiles: 1,
		Moved:      []organize.MoveRecord{{From: "/src/a.mkv", To: "/dst/a.mkv"}},
		TotalMoved: 1,
	}
	require.NoError(t, store.RecordBatch("video", "/dst", false, report))

	batches, err := store.RecentBatches(1)
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, 1, batches[0].TotalMoved)
}

func TestRecordBatchAndRecentBatches(t *testing.T) {
	store := newTestStore(t)

	report := &organize.Report{
		TotalFiles: 3,
		Moved: []organize.MoveRecord{
			{From: "/src/a.mkv", To: "/dst/a.mkv"},
			{From: "/src/b.mkv", To: "/dst/b.mkv"},
		},
		Skipped:    []organize.SkipRecord{{File: "/src/c.mkv", Reason: "File already exists"}},
		TotalMoved: 2,
	}
	require.NoError(t, store.RecordBatch("video", "/dst", false, report))

	batches, err := store.RecentBatches(10)
	require.NoError(t, err)
	require.Len(t, batches, 1)

	b := batches[0]
	assert.Equal(t, "video", b.MediaType)
	assert.Equal(t, "/dst", b.DestRoot)
	assert.False(t, b.DryRun)
	assert.Equal(t, 3, b.TotalFiles)
	assert.Equal(t, 2, b.TotalMoved)
	assert.Equal(t, 1, b.Skipped)
	assert.Zero(t, b.Errors)
	assert.False(t, b.CreatedAt.IsZero())
}

func TestBatchMoves(t *testing.T) {
	store := newTestStore(t)

	report := &organize.Report{
		TotalFiles: 1,
		Moved:      []organize.MoveRecord{{From: "/src/a.mp3", To: "/dst/01 - A.mp3"}},
		TotalMoved: 1,
	}
	require.NoError(t, store.RecordBatch("music", "/dst", true, report))

	batches, err := store.RecentBatches(1)
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.True(t, batches[0].DryRun)

	moves, err := store.BatchMoves(batches[0].ID)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, "/src/a.mp3", moves[0].From)
	assert.Equal(t, "/dst/01 - A.mp3", moves[0].To)
}

func TestRecentBatches_Ordering(t *testing.T) {
	store := newTestStore(t)
	for _, mt := range []string{"video", "music", "book"} {
		require.NoError(t, store.RecordBatch(mt, "/dst", false, &organize.Report{}))
	}

	batches, err := store.RecentBatches(2)
	require.NoError(t, err)
	require.Len(t, batches, 2)
	assert.Equal(t, "book", batches[0].MediaType)
	assert.Equal(t, "music", batches[1].MediaType)
}

func TestStoreImplementsHistorySink(t *testing.T) {
	var _ organize.HistorySink = newTestStore(t)
}
