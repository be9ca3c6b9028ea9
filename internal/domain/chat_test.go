package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChat_Validate(t *testing.T) {
	ownJID := MustParseJID("1111111111@s.whatsapp.net")
	otherJID := MustParseJID("2222222222@s.whatsapp.net")
	groupJID := MustParseJID("123456-78@g.us")

	t.Run("negative unread count", func(t *testing.T) {
		c := NewPrivateChat(otherJID, "Alice")
		c.UnreadCount = -1
		assert.Error(t, c.Validate(ownJID))
	})

	t.Run("private chat ignores participants", func(t *testing.T) {
		c := NewPrivateChat(otherJID, "Alice")
		assert.NoError(t, c.Validate(ownJID))
	})

	t.Run("group missing own jid", func(t *testing.T) {
		c := NewGroupChat(groupJID, "Friends", []JID{otherJID})
		assert.Error(t, c.Validate(ownJID))
	})

	t.Run("group containing own jid", func(t *testing.T) {
		c := NewGroupChat(groupJID, "Friends", []JID{otherJID, ownJID})
		assert.NoError(t, c.Validate(ownJID))
	})
}
