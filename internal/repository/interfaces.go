package repository

import (
	"context"
	"time"

	"github.com/clippy-oss/whatsapp-bridged/internal/domain"
)

// CreateResult reports whether a CreateOrIgnore call inserted a fresh row or
// silently ignored a duplicate primary key. Callers must gate unread-count
// and event-publish side effects on Inserted, never assume a duplicate was a
// fresh message.
type CreateResult struct {
	Inserted bool
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	CreateOrIgnore(ctx context.Context, msg *domain.Message) (CreateResult, error)
	GetByID(ctx context.Context, id string) (*domain.Message, error)
	GetByChatJID(ctx context.Context, chatJID domain.JID, limit, offset int) ([]*domain.Message, error)
	GetByChatJIDSince(ctx context.Context, chatJID domain.JID, since time.Time, limit int) ([]*domain.Message, error)
	UpdateReadStatus(ctx context.Context, ids []string, isRead bool) error
	// MarkChatRead flips every inbound message in chatJID to read, used when
	// a companion device reports the whole chat as read rather than a
	// specific set of message IDs.
	MarkChatRead(ctx context.Context, chatJID domain.JID) error
	Search(ctx context.Context, query string, limit int) ([]*domain.Message, error)
	DeleteByChatJID(ctx context.Context, chatJID domain.JID) error
	// CountUnread returns the number of messages in chatJID that are neither
	// from the bridge's own account nor marked read. It is the sole source
	// of truth MarkAsRead recomputes a chat's unread_count from.
	CountUnread(ctx context.Context, chatJID domain.JID) (int, error)
	// UpsertReaction replaces any existing reaction by senderJID on
	// targetMessageID with emoji. An empty emoji clears the reaction
	// instead, matching WhatsApp's own remove-by-resend semantics.
	UpsertReaction(ctx context.Context, chatJID domain.JID, targetMessageID string, senderJID domain.JID, emoji string, timestamp time.Time) error
}

type ChatRepository interface {
	Upsert(ctx context.Context, chat *domain.Chat) error
	GetByJID(ctx context.Context, jid domain.JID) (*domain.Chat, error)
	GetAll(ctx context.Context, limit, offset int) ([]*domain.Chat, error)
	UpdateLastMessage(ctx context.Context, jid domain.JID, text, sender string, timestamp time.Time) error
	UpdateUnreadCount(ctx context.Context, jid domain.JID, count int) error
	IncrementUnreadCount(ctx context.Context, jid domain.JID) error
	DecrementUnreadCount(ctx context.Context, jid domain.JID, count int) error
	UpdateArchived(ctx context.Context, jid domain.JID, archived bool) error
	Delete(ctx context.Context, jid domain.JID) error
}

// There is no ContactRepository: contacts are stored by whatsmeow's built-in
// ContactStore. WhatsAppService.GetContacts()/GetContact() read through it
// directly instead of maintaining a second copy in the bridge's own schema.
