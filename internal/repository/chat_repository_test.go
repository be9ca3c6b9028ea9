package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clippy-oss/whatsapp-bridged/internal/domain"
)

func TestChatRepository_UpsertAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatRepository(db)
	ctx := context.Background()

	jid := domain.MustParseJID("123456-78@g.us")
	chat := domain.NewGroupChat(jid, "Friends", nil)
	require.NoError(t, repo.Upsert(ctx, chat))

	got, err := repo.GetByJID(ctx, jid)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Friends", got.Name)

	chat.Name = "Friends Renamed"
	require.NoError(t, repo.Upsert(ctx, chat))

	got, err = repo.GetByJID(ctx, jid)
	require.NoError(t, err)
	assert.Equal(t, "Friends Renamed", got.Name)
}

func TestChatRepository_IncrementDecrementUnreadCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatRepository(db)
	ctx := context.Background()

	jid := domain.MustParseJID("1111111111@s.whatsapp.net")
	require.NoError(t, repo.Upsert(ctx, domain.NewPrivateChat(jid, "Alice")))

	require.NoError(t, repo.IncrementUnreadCount(ctx, jid))
	require.NoError(t, repo.IncrementUnreadCount(ctx, jid))

	got, err := repo.GetByJID(ctx, jid)
	require.NoError(t, err)
	assert.Equal(t, 2, got.UnreadCount)

	// Decrementing past zero floors at zero rather than going negative.
	require.NoError(t, repo.DecrementUnreadCount(ctx, jid, 10))
	got, err = repo.GetByJID(ctx, jid)
	require.NoError(t, err)
	assert.Equal(t, 0, got.UnreadCount)
}

func TestChatRepository_UpdateArchived(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatRepository(db)
	ctx := context.Background()

	jid := domain.MustParseJID("1111111111@s.whatsapp.net")
	require.NoError(t, repo.Upsert(ctx, domain.NewPrivateChat(jid, "Alice")))

	require.NoError(t, repo.UpdateArchived(ctx, jid, true))
	got, err := repo.GetByJID(ctx, jid)
	require.NoError(t, err)
	assert.True(t, got.IsArchived)

	require.NoError(t, repo.UpdateArchived(ctx, jid, false))
	got, err = repo.GetByJID(ctx, jid)
	require.NoError(t, err)
	assert.False(t, got.IsArchived)
}

func TestChatRepository_GetByJID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatRepository(db)
	ctx := context.Background()

	got, err := repo.GetByJID(ctx, domain.MustParseJID("9999999999@s.whatsapp.net"))
	require.NoError(t, err)
	assert.Nil(t, got)
}
