package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCode_DirectError(t *testing.T) {
	err := NotFound("chat %s not found", "123@g.us")
	assert.Equal(t, CodeNotFound, GetCode(err))
}

func TestGetCode_WrappedChain(t *testing.T) {
	base := InvalidArgument("bad jid")
	wrapped := fmt.Errorf("send message: %w", base)
	assert.Equal(t, CodeInvalidArgument, GetCode(wrapped))
}

func TestGetCode_NonAppError(t *testing.T) {
	assert.Equal(t, CodeInternal, GetCode(errors.New("boom")))
}

func TestGetCode_Nil(t *testing.T) {
	assert.Equal(t, CodeUnknown, GetCode(nil))
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(CodeUnavailable, "whatsapp connect failed", cause)
	assert.ErrorIs(t, err, cause)
}

func TestConstructors_Message(t *testing.T) {
	err := FailedPrecondition("device %s not paired", "abc")
	assert.Contains(t, err.Error(), "not paired")
	assert.Equal(t, CodeFailedPrecondition, GetCode(err))
}
