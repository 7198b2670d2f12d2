package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nspatel/eventtags/internal/repo"
	"github.com/nspatel/eventtags/testutil"
)

// newTestRepos opens a single transaction and returns EventTypeRepo and
// HashtagRepo both backed by the same tx — so tests can create a full
// event-type → hashtag hierarchy within one rolled-back transaction.
func newTestRepos(t *testing.T) (repo.EventTypeRepo, repo.HashtagRepo) {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewEventTypeRepo(tx), repo.NewHashtagRepo(tx)
}

// ---- GetOrCreate -----------------------------------------------------------

func TestEventTypeRepo_GetOrCreate_Create(t *testing.T) {
	eventTypes, _ := newTestRepos(t)
	ctx := context.Background()

	got, err := eventTypes.GetOrCreate(ctx, "wedding")

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "wedding", got.Name)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestEventTypeRepo_GetOrCreate_IdempotentByName(t *testing.T) {
	eventTypes, _ := newTestRepos(t)
	ctx := context.Background()

	first, err := eventTypes.GetOrCreate(ctx, "hackathon")
	require.NoError(t, err)

	second, err := eventTypes.GetOrCreate(ctx, "hackathon")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same name must return same event type")
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}

// ---- List ------------------------------------------------------------------

func TestEventTypeRepo_List_OrderedByName(t *testing.T) {
	eventTypes, _ := newTestRepos(t)
	ctx := context.Background()

	_, err := eventTypes.GetOrCreate(ctx, "wedding")
	require.NoError(t, err)
	_, err = eventTypes.GetOrCreate(ctx, "baptism")
	require.NoError(t, err)

	got, err := eventTypes.List(ctx)

	require.NoError(t, err)
	require.GreaterOrEqual(t, len(got), 2)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Name, got[i].Name, "list should be ordered by name")
	}
}
