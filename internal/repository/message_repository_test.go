package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clippy-oss/whatsapp-bridged/internal/domain"
)

func newTestMessage(id string, chatJID, senderJID domain.JID) *domain.Message {
	return domain.NewTextMessage(id, chatJID, senderJID, "hello", time.Now(), false)
}

func TestMessageRepository_CreateOrIgnore_Dedup(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	chatJID := domain.MustParseJID("123456-78@g.us")
	senderJID := domain.MustParseJID("1111111111@s.whatsapp.net")
	msg := newTestMessage("wamid-1", chatJID, senderJID)

	result, err := repo.CreateOrIgnore(ctx, msg)
	require.NoError(t, err)
	assert.True(t, result.Inserted)

	result, err = repo.CreateOrIgnore(ctx, msg)
	require.NoError(t, err)
	assert.False(t, result.Inserted, "replaying the same message id must not re-insert")
}

func TestMessageRepository_CountUnread(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	chatJID := domain.MustParseJID("123456-78@g.us")
	senderJID := domain.MustParseJID("1111111111@s.whatsapp.net")

	unread := newTestMessage("wamid-unread", chatJID, senderJID)
	require.NoError(t, repo.Create(ctx, unread))

	read := newTestMessage("wamid-read", chatJID, senderJID)
	read.IsRead = true
	require.NoError(t, repo.Create(ctx, read))

	outbound := domain.NewTextMessage("wamid-out", chatJID, senderJID, "hi", time.Now(), true)
	require.NoError(t, repo.Create(ctx, outbound))

	count, err := repo.CountUnread(ctx, chatJID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMessageRepository_Search_EscapesLikeWildcards(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	chatJID := domain.MustParseJID("123456-78@g.us")
	senderJID := domain.MustParseJID("1111111111@s.whatsapp.net")

	literal := domain.NewTextMessage("wamid-literal", chatJID, senderJID, "50% off today", time.Now(), false)
	require.NoError(t, repo.Create(ctx, literal))

	other := domain.NewTextMessage("wamid-other", chatJID, senderJID, "50xyz off today", time.Now(), false)
	require.NoError(t, repo.Create(ctx, other))

	results, err := repo.Search(ctx, "50% off", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "wamid-literal", results[0].ID)
}

func TestMessageRepository_UpsertReaction(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	chatJID := domain.MustParseJID("123456-78@g.us")
	senderJID := domain.MustParseJID("1111111111@s.whatsapp.net")
	target := newTestMessage("wamid-target", chatJID, senderJID)
	require.NoError(t, repo.Create(ctx, target))

	require.NoError(t, repo.UpsertReaction(ctx, chatJID, target.ID, senderJID, "\U0001F44D", time.Now()))

	messages, err := repo.GetByChatJID(ctx, chatJID, 10, 0)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	// Re-reacting from the same sender on the same target replaces in place.
	require.NoError(t, repo.UpsertReaction(ctx, chatJID, target.ID, senderJID, "❤️", time.Now()))
	messages, err = repo.GetByChatJID(ctx, chatJID, 10, 0)
	require.NoError(t, err)
	require.Len(t, messages, 2, "upsert must replace, not accumulate, the reaction row")

	// Clearing with an empty emoji removes the reaction row entirely.
	require.NoError(t, repo.UpsertReaction(ctx, chatJID, target.ID, senderJID, "", time.Now()))
	messages, err = repo.GetByChatJID(ctx, chatJID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestMessageRepository_MarkChatRead(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	chatJID := domain.MustParseJID("123456-78@g.us")
	senderJID := domain.MustParseJID("1111111111@s.whatsapp.net")

	require.NoError(t, repo.Create(ctx, newTestMessage("wamid-1", chatJID, senderJID)))
	require.NoError(t, repo.Create(ctx, newTestMessage("wamid-2", chatJID, senderJID)))

	require.NoError(t, repo.MarkChatRead(ctx, chatJID))

	count, err := repo.CountUnread(ctx, chatJID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
