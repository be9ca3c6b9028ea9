package domain

import (
	"fmt"
	"time"
)

// maxFutureSkew bounds how far a message timestamp may sit ahead of the
// bridge's own clock before it is clamped. Phones occasionally report
// clock-skewed timestamps during history sync.
const maxFutureSkew = 60 * time.Second

type MessageType string

const (
	MessageTypeText     MessageType = "text"
	MessageTypeImage    MessageType = "image"
	MessageTypeVideo    MessageType = "video"
	MessageTypeAudio    MessageType = "audio"
	MessageTypeDocument MessageType = "document"
	MessageTypeSticker  MessageType = "sticker"
	MessageTypeReaction MessageType = "reaction"
	MessageTypeLocation MessageType = "location"
	MessageTypeContact  MessageType = "contact"
)

type Message struct {
	ID              string
	ChatJID         JID
	SenderJID       JID
	Type            MessageType
	Text            string
	Caption         string
	MediaURL        string
	MediaMimeType   string
	MediaFileName   string
	MediaFileSize   int64
	Timestamp       time.Time
	IsFromMe        bool
	IsRead          bool
	QuotedMessageID string
	Reaction        *Reaction
	Location        *Location
	ContactCard     *ContactCard
}

type Reaction struct {
	TargetMessageID string
	Emoji           string
	SenderJID       JID
	Timestamp       time.Time
}

type Location struct {
	Latitude  float64
	Longitude float64
	Name      string
	Address   string
}

type ContactCard struct {
	Name        string
	PhoneNumber string
	VCard       string
}

func NewTextMessage(id string, chatJID, senderJID JID, text string, timestamp time.Time, isFromMe bool) *Message {
	return &Message{
		ID:        id,
		ChatJID:   chatJID,
		SenderJID: senderJID,
		Type:      MessageTypeText,
		Text:      text,
		Timestamp: timestamp,
		IsFromMe:  isFromMe,
		IsRead:    isFromMe,
	}
}

func NewMediaMessage(id string, chatJID, senderJID JID, msgType MessageType, caption, mediaURL, mimeType, fileName string, fileSize int64, timestamp time.Time, isFromMe bool) *Message {
	return &Message{
		ID:            id,
		ChatJID:       chatJID,
		SenderJID:     senderJID,
		Type:          msgType,
		Caption:       caption,
		MediaURL:      mediaURL,
		MediaMimeType: mimeType,
		MediaFileName: fileName,
		MediaFileSize: fileSize,
		Timestamp:     timestamp,
		IsFromMe:      isFromMe,
		IsRead:        isFromMe,
	}
}

// Normalize clamps an implausibly-future timestamp (clock-skewed phones
// during history sync) to now, and forces IsRead for anything the bridge
// itself sent.
func (m *Message) Normalize(now time.Time) {
	if m.Timestamp.After(now.Add(maxFutureSkew)) {
		m.Timestamp = now
	}
	if m.IsFromMe {
		m.IsRead = true
	}
}

// Validate enforces the invariants every message must satisfy before it is
// persisted: a reaction can't target itself, media sizes can't be negative,
// and an outbound message is always already read.
func (m *Message) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("message: id is required")
	}
	if m.MediaFileSize < 0 {
		return fmt.Errorf("message %s: negative media file size", m.ID)
	}
	if m.Reaction != nil && m.Reaction.TargetMessageID == m.ID {
		return fmt.Errorf("message %s: reaction cannot target itself", m.ID)
	}
	if m.IsFromMe && !m.IsRead {
		return fmt.Errorf("message %s: outbound message must be marked read", m.ID)
	}
	return nil
}
