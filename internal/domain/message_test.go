package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMessage_Normalize_ClampsFutureSkew(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	msg := &Message{Timestamp: now.Add(5 * time.Minute)}
	msg.Normalize(now)
	assert.Equal(t, now, msg.Timestamp)

	msg2 := &Message{Timestamp: now.Add(30 * time.Second)}
	msg2.Normalize(now)
	assert.Equal(t, now.Add(30*time.Second), msg2.Timestamp)
}

func TestMessage_Normalize_ForcesReadForOutbound(t *testing.T) {
	now := time.Now()
	msg := &Message{Timestamp: now, IsFromMe: true, IsRead: false}
	msg.Normalize(now)
	assert.True(t, msg.IsRead)
}

func TestMessage_Validate(t *testing.T) {
	base := func() *Message {
		return &Message{ID: "msg-1", IsFromMe: false, IsRead: false}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("missing id", func(t *testing.T) {
		m := base()
		m.ID = ""
		assert.Error(t, m.Validate())
	})

	t.Run("negative media size", func(t *testing.T) {
		m := base()
		m.MediaFileSize = -1
		assert.Error(t, m.Validate())
	})

	t.Run("self reaction rejected", func(t *testing.T) {
		m := base()
		m.Reaction = &Reaction{TargetMessageID: m.ID}
		assert.Error(t, m.Validate())
	})

	t.Run("outbound must be read", func(t *testing.T) {
		m := base()
		m.IsFromMe = true
		m.IsRead = false
		assert.Error(t, m.Validate())
	})

	t.Run("outbound read is valid", func(t *testing.T) {
		m := base()
		m.IsFromMe = true
		m.IsRead = true
		assert.NoError(t, m.Validate())
	})
}
