package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestErrnoMatchesUnix(t *testing.T) {
	err := fmt.Errorf("openat: %w", Errno(unix.ENOENT))

	require.Error(t, err)
	assert.True(t, stderrors.Is(err, unix.ENOENT))
	assert.False(t, stderrors.Is(err, unix.EBADF))

	var e Errno
	require.True(t, stderrors.As(err, &e))
	assert.Equal(t, Errno(unix.ENOENT), e)
	assert.Equal(t, unix.ENOENT, e.Errno())
}

func TestErrnoMessage(t *testing.T) {
	assert.Equal(t, "ENOENT (errno 2)", Errno(unix.ENOENT).Error())
	assert.Equal(t, "errno 4095", Errno(MaxErrno).Error())
}

func TestNew(t *testing.T) {
	assert.NoError(t, New(0))
	assert.True(t, IsCode(New(Errno(unix.EINTR)), Errno(unix.EINTR)))
	assert.False(t, IsCode(stderrors.New("x"), Errno(unix.EINTR)))
}
