package reg

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/carved4/go-linuxcall/pkg/errors"
)

func TestSlotIndex(t *testing.T) {
	assert.Equal(t, 0, SlotIndex[A0]())
	assert.Equal(t, 3, SlotIndex[A3]())
	assert.Equal(t, 6, SlotIndex[A6]())
	assert.Equal(t, 2, To[A2](Fd(3)).Slot())
}

func TestRoundTrip32(t *testing.T) {
	for _, v := range []uint32{0, math.MaxUint32, 0x0804_8000, 16} {
		w := ToWord[uint32](v)
		assert.Equal(t, v, FromWord[uint32](w))
	}
	assert.Equal(t, int32(-100), FromWord[int32](ToWord[uint32](int32(-100))))
}

func TestRoundTrip64(t *testing.T) {
	for _, v := range []uint64{0, math.MaxUint64, 0x7fff_dead_b000, 16} {
		w := ToWord[uint64](v)
		assert.Equal(t, v, FromWord[uint64](w))
	}
	assert.Equal(t, int64(math.MinInt64), FromWord[int64](ToWord[uint64](int64(math.MinInt64))))
}

func TestArgKinds(t *testing.T) {
	assert.Equal(t, ^uintptr(0), Uint(math.MaxUint).Word())
	assert.Equal(t, uintptr(16), Size(16).Word())
	assert.Equal(t, uintptr(1), Bool(true).Word())
	assert.Equal(t, uintptr(0), Bool(false).Word())
	assert.Equal(t, uintptr(unix.O_RDONLY|unix.O_CLOEXEC), Flags(unix.O_RDONLY|unix.O_CLOEXEC).Word())

	// AT_FDCWD must arrive in the register as a negative value.
	w := Fd(unix.AT_FDCWD).Word()
	assert.Equal(t, int(unix.AT_FDCWD), int(w))
	assert.Equal(t, ^uintptr(0), Int(-1).Word())

	// A mask with the top bit set is zero extended, not sign extended.
	assert.Equal(t, uintptr(0x8000_0000), Flags(0x8000_0000).Word())
}

func TestPointerArgs(t *testing.T) {
	buf := make([]byte, 8)
	p := BufPtr(buf)
	assert.Equal(t, uintptr(unsafe.Pointer(&buf[0])), p.Word())
	assert.True(t, BufPtr(nil).IsNull())

	s, err := CStr("go.mod")
	require.NoError(t, err)
	b := unsafe.Slice((*byte)(s.Unsafe()), 7)
	assert.Equal(t, "go.mod\x00", string(b))

	_, err = CStr("a\x00b")
	assert.ErrorIs(t, err, unix.EINVAL)
}

func TestClassifyBand(t *testing.T) {
	cases := []struct {
		name  string
		word  int64
		errno errors.Errno
	}{
		{"zero", 0, 0},
		{"one", 1, 0},
		{"max positive", math.MaxInt64, 0},
		{"below band", -4096, 0},
		{"band low edge", -4095, 4095},
		{"enoent", -2, 2},
		{"band high edge", -1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload, errno, ok := Classify(uint64(tc.word))
			assert.Equal(t, tc.errno, errno)
			assert.Equal(t, tc.errno == 0, ok)
			if ok {
				assert.Equal(t, uint64(tc.word), payload)
			}
		})
	}
}

func TestClassifyBand32(t *testing.T) {
	_, errno, ok := Classify(uint32(0xffff_f001))
	assert.False(t, ok)
	assert.Equal(t, errors.Errno(4095), errno)

	// A high user-space address on a 32-bit machine is still a payload.
	payload, _, ok := Classify(uint32(0xffff_f000))
	assert.True(t, ok)
	assert.Equal(t, uint32(0xffff_f000), payload)
}

func TestRetDecoders(t *testing.T) {
	fd, err := FromRaw[R0](3).Fd()
	require.NoError(t, err)
	assert.Equal(t, 3, fd)

	neg := ToWord[uintptr](-int(unix.EBADF))
	fd, err = FromRaw[R0](neg).Fd()
	assert.Equal(t, -1, fd)
	assert.ErrorIs(t, err, unix.EBADF)
	assert.True(t, FromRaw[R0](neg).IsError())

	n, err := FromRaw[R0](42).Int()
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	addr := uintptr(0x7f00_0000)
	p, err := FromRaw[R0](addr).Pointer()
	require.NoError(t, err)
	assert.Equal(t, addr, uintptr(p))

	assert.NoError(t, FromRaw[R0](0).Err())
}
