package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/clippy-oss/whatsapp-bridged/internal/domain"
	"github.com/clippy-oss/whatsapp-bridged/internal/repository"
)

func newServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&repository.MessageModel{}, &repository.ChatModel{}))
	return db
}

// These cover the read-path methods MessageService exposes as pure
// pass-throughs to the repositories; the send/react/mark-read methods
// delegate to WhatsAppService's whatsmeow client and aren't exercised
// here since there is no fake whatsmeow client in the pack to build on.
func TestMessageService_ReadPassthroughs(t *testing.T) {
	db := newServiceTestDB(t)
	msgRepo := repository.NewMessageRepository(db)
	chatRepo := repository.NewChatRepository(db)
	svc := NewMessageService(msgRepo, chatRepo, nil)
	ctx := context.Background()

	chatJID := domain.MustParseJID("123456-78@g.us")
	senderJID := domain.MustParseJID("1111111111@s.whatsapp.net")

	require.NoError(t, chatRepo.Upsert(ctx, domain.NewGroupChat(chatJID, "Friends", []domain.JID{senderJID})))
	msg := domain.NewTextMessage("wamid-1", chatJID, senderJID, "hi there", time.Now(), false)
	require.NoError(t, msgRepo.Create(ctx, msg))

	got, err := svc.GetMessages(ctx, chatJID, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "hi there", got[0].Text)

	gotOne, err := svc.GetMessage(ctx, "wamid-1")
	require.NoError(t, err)
	require.NotNil(t, gotOne)
	assert.Equal(t, msg.ID, gotOne.ID)

	since, err := svc.GetMessagesSince(ctx, chatJID, time.Now().Add(-time.Hour), 10)
	require.NoError(t, err)
	assert.Len(t, since, 1)

	found, err := svc.SearchMessages(ctx, "hi there", 10)
	require.NoError(t, err)
	assert.Len(t, found, 1)

	chats, err := svc.GetChats(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, "Friends", chats[0].Name)

	chat, err := svc.GetChat(ctx, chatJID)
	require.NoError(t, err)
	require.NotNil(t, chat)
	assert.Equal(t, chatJID, chat.JID)
}
