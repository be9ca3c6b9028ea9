package domain

import (
	"fmt"
	"time"
)

type ChatType string

const (
	ChatTypePrivate ChatType = "private"
	ChatTypeGroup   ChatType = "group"
)

type Chat struct {
	JID               JID
	Type              ChatType
	Name              string
	LastMessageTime   time.Time
	LastMessageText   string
	LastMessageSender string
	UnreadCount       int
	IsMuted           bool
	IsArchived        bool
	IsPinned          bool
	GroupParticipants []JID
}

func NewPrivateChat(jid JID, name string) *Chat {
	return &Chat{
		JID:  jid,
		Type: ChatTypePrivate,
		Name: name,
	}
}

func NewGroupChat(jid JID, name string, participants []JID) *Chat {
	return &Chat{
		JID:               jid,
		Type:              ChatTypeGroup,
		Name:              name,
		GroupParticipants: participants,
	}
}

// Validate enforces that a group chat's participant list includes the
// bridge's own account, and that unread counts never go negative.
func (c *Chat) Validate(ownJID JID) error {
	if c.UnreadCount < 0 {
		return fmt.Errorf("chat %s: negative unread count", c.JID)
	}
	if c.Type != ChatTypeGroup {
		return nil
	}
	for _, p := range c.GroupParticipants {
		if p.User == ownJID.User && p.Server == ownJID.Server {
			return nil
		}
	}
	return fmt.Errorf("chat %s: group participants missing own JID %s", c.JID, ownJID)
}
