package repo

import (
	"OptiTools/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRepository_SaveAndList(t *testing.T) {
	r := NewMessageRepository(newTestDB(t))
	ctx := context.Background()

	// пустой батч — не ошибка
	assert.NoError(t, r.SaveBatch(ctx, nil))

	require.NoError(t, r.SaveBatch(ctx, []model.SentMessage{
		{EventID: "e1", Content: "a", Destination: "111", CustomerID: "c"},
		{EventID: "e1", Content: "b", Destination: "222", CustomerID: "c"},
	}))
	require.NoError(t, r.SaveBatch(ctx, []model.SentMessage{
		{EventID: "e2", Content: "c", Destination: "333"},
	}))

	got, err := r.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "333", got[0].Destination)
	assert.Equal(t, "222", got[1].Destination)
	assert.False(t, got[0].CreatedAt.IsZero())
}

func TestDialector(t *testing.T) {
	assert.Equal(t, "postgres", Dialector("postgres://u:p@localhost:5432/db").Name())
	assert.Equal(t, "postgres", Dialector("host=localhost user=u dbname=db").Name())
	assert.Equal(t, "sqlite", Dialector("/tmp/test.db").Name())
	assert.Equal(t, "sqlite", Dialector("file::memory:?cache=shared").Name())
}
