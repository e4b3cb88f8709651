//go:build linux

package linuxcall

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func collect(t *testing.T, d *Dir) map[string]int {
	t.Helper()
	seen := map[string]int{}
	for ent, err := range d.All() {
		require.NoError(t, err)
		seen[ent.Name]++
	}
	return seen
}

func TestDirEnumerate(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a", "b"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), nil, 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o700))

	dirfd, err := Openat(unix.AT_FDCWD, root, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	require.NoError(t, err)
	defer Close(dirfd)

	d, err := ReadFrom(dirfd)
	require.NoError(t, err)
	defer d.Close()

	assert.Equal(t, map[string]int{".": 1, "..": 1, "a": 1, "b": 1, "sub": 1}, collect(t, d))

	_, err = d.Next()
	assert.Equal(t, io.EOF, err)
}

func TestDirLargeDirectory(t *testing.T) {
	root := t.TempDir()
	// enough names to need several getdents64 rounds
	for i := range 400 {
		name := filepath.Join(root, fmt.Sprintf("file-with-a-fairly-long-name-%03d", i))
		require.NoError(t, os.WriteFile(name, nil, 0o600))
	}

	d, err := ReadFrom(mustOpen(t, root))
	require.NoError(t, err)
	defer d.Close()

	seen := collect(t, d)
	assert.Len(t, seen, 402)
	for name, n := range seen {
		assert.Equal(t, 1, n, name)
	}
}

func TestDirEarlyBreakAndClose(t *testing.T) {
	d, err := ReadFrom(unix.AT_FDCWD)
	require.NoError(t, err)

	for _, err := range d.All() {
		require.NoError(t, err)
		break
	}
	require.NoError(t, d.Close())
	require.NoError(t, d.Close())

	_, err = d.Next()
	assert.ErrorIs(t, err, unix.EBADF)
}

func TestReadFromBadFd(t *testing.T) {
	_, err := ReadFrom(-1)
	assert.ErrorIs(t, err, unix.EBADF)
}

func TestParseDirent(t *testing.T) {
	rec := make([]byte, 24)
	binary.NativeEndian.PutUint64(rec[direntIno:], 7)
	binary.NativeEndian.PutUint64(rec[direntOff:], 1)
	binary.NativeEndian.PutUint16(rec[direntReclen:], 24)
	rec[direntType] = unix.DT_DIR
	copy(rec[direntName:], ".\x00")

	ent, size, err := parseDirent(rec)
	require.NoError(t, err)
	assert.Equal(t, 24, size)
	assert.Equal(t, Dirent{Ino: 7, Off: 1, Type: unix.DT_DIR, Name: "."}, ent)
	assert.True(t, ent.IsDir())

	_, _, err = parseDirent(rec[:10])
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	binary.NativeEndian.PutUint16(rec[direntReclen:], 64)
	_, _, err = parseDirent(rec)
	assert.Error(t, err)
}

func mustOpen(t *testing.T, path string) int {
	t.Helper()
	fd, err := Openat(unix.AT_FDCWD, path, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	require.NoError(t, err)
	t.Cleanup(func() { Close(fd) })
	return fd
}
