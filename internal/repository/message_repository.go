package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clippy-oss/whatsapp-bridged/internal/domain"
)

type gormMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: db}
}

func (r *gormMessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	model := MessageDomainToModel(msg)
	return r.db.WithContext(ctx).Create(model).Error
}

func (r *gormMessageRepository) CreateOrIgnore(ctx context.Context, msg *domain.Message) (CreateResult, error) {
	if err := msg.Validate(); err != nil {
		return CreateResult{}, err
	}
	model := MessageDomainToModel(msg)
	// INSERT OR IGNORE: RowsAffected is 0 when the primary key already
	// existed, which is how callers distinguish a fresh message from a
	// replay of one they've already ingested.
	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model)
	if tx.Error != nil {
		return CreateResult{}, tx.Error
	}
	return CreateResult{Inserted: tx.RowsAffected > 0}, nil
}

func (r *gormMessageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	var model MessageModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return MessageModelToDomain(&model), nil
}

func (r *gormMessageRepository) GetByChatJID(ctx context.Context, chatJID domain.JID, limit, offset int) ([]*domain.Message, error) {
	var models []MessageModel
	err := r.db.WithContext(ctx).
		Where("chat_jid = ?", chatJID.String()).
		Order("timestamp DESC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*domain.Message, len(models))
	for i := range models {
		messages[i] = MessageModelToDomain(&models[i])
	}
	return messages, nil
}

func (r *gormMessageRepository) GetByChatJIDSince(ctx context.Context, chatJID domain.JID, since time.Time, limit int) ([]*domain.Message, error) {
	var models []MessageModel
	err := r.db.WithContext(ctx).
		Where("chat_jid = ? AND timestamp > ?", chatJID.String(), since).
		Order("timestamp ASC, id ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*domain.Message, len(models))
	for i := range models {
		messages[i] = MessageModelToDomain(&models[i])
	}
	return messages, nil
}

func (r *gormMessageRepository) UpdateReadStatus(ctx context.Context, ids []string, isRead bool) error {
	return r.db.WithContext(ctx).
		Model(&MessageModel{}).
		Where("id IN ?", ids).
		Update("is_read", isRead).Error
}

func (r *gormMessageRepository) MarkChatRead(ctx context.Context, chatJID domain.JID) error {
	return r.db.WithContext(ctx).
		Model(&MessageModel{}).
		Where("chat_jid = ? AND is_from_me = ?", chatJID.String(), false).
		Update("is_read", true).Error
}

func (r *gormMessageRepository) Search(ctx context.Context, query string, limit int) ([]*domain.Message, error) {
	// Escape LIKE wildcards so a user-supplied % or _ matches literally
	escapedQuery := strings.ReplaceAll(query, "%", "\\%")
	escapedQuery = strings.ReplaceAll(escapedQuery, "_", "\\_")
	likePattern := "%" + escapedQuery + "%"

	var models []MessageModel
	err := r.db.WithContext(ctx).
		Where("text LIKE ? ESCAPE '\\' OR caption LIKE ? ESCAPE '\\'", likePattern, likePattern).
		Order("timestamp DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*domain.Message, len(models))
	for i := range models {
		messages[i] = MessageModelToDomain(&models[i])
	}
	return messages, nil
}

func (r *gormMessageRepository) DeleteByChatJID(ctx context.Context, chatJID domain.JID) error {
	return r.db.WithContext(ctx).
		Where("chat_jid = ?", chatJID.String()).
		Delete(&MessageModel{}).Error
}

func (r *gormMessageRepository) CountUnread(ctx context.Context, chatJID domain.JID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&MessageModel{}).
		Where("chat_jid = ? AND is_from_me = ? AND is_read = ?", chatJID.String(), false, false).
		Count(&count).Error
	return int(count), err
}

// reactionRowID derives a deterministic primary key for the synthetic
// reaction row so a repeat SendReaction from the same sender on the same
// target upserts in place rather than accumulating rows.
func reactionRowID(chatJID domain.JID, targetMessageID string, senderJID domain.JID) string {
	return "reaction:" + chatJID.String() + ":" + targetMessageID + ":" + senderJID.String()
}

func (r *gormMessageRepository) UpsertReaction(ctx context.Context, chatJID domain.JID, targetMessageID string, senderJID domain.JID, emoji string, timestamp time.Time) error {
	id := reactionRowID(chatJID, targetMessageID, senderJID)
	if emoji == "" {
		return r.db.WithContext(ctx).Where("id = ?", id).Delete(&MessageModel{}).Error
	}
	model := &MessageModel{
		ID:             id,
		ChatJID:        chatJID.String(),
		SenderJID:      senderJID.String(),
		Type:           string(domain.MessageTypeReaction),
		Timestamp:      timestamp,
		IsRead:         true,
		ReactionEmoji:  emoji,
		ReactionTarget: targetMessageID,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(model).Error
}
