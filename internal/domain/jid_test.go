package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJID_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"user", "1234567890@s.whatsapp.net"},
		{"group", "123456-78@g.us"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jid, err := ParseJID(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.in, jid.String())
		})
	}
}

func TestJID_IsGroupIsUser(t *testing.T) {
	user := MustParseJID("1234567890@s.whatsapp.net")
	group := MustParseJID("123456-78@g.us")

	assert.True(t, user.IsUser())
	assert.False(t, user.IsGroup())
	assert.Equal(t, "1234567890", user.PhoneNumber())

	assert.True(t, group.IsGroup())
	assert.False(t, group.IsUser())
	assert.Equal(t, "", group.PhoneNumber())
}

func TestParseJID_InvalidFormat(t *testing.T) {
	_, err := ParseJID("not-a-jid")
	assert.Error(t, err)
}

func TestMustParseJID_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustParseJID("not-a-jid")
	})
}
