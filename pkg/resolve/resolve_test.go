//go:build linux

package resolve

import (
	"encoding/binary"
	"os"
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuxv(t *testing.T) {
	vec, err := Auxv()
	require.NoError(t, err)
	require.NotEmpty(t, vec)
	assert.Equal(t, os.Getpagesize(), PageSize())
}

func TestParseAuxv(t *testing.T) {
	word := int(unsafe.Sizeof(uintptr(0)))
	buf := make([]byte, 6*word)
	put := func(i int, v uintptr) {
		if word == 8 {
			binary.NativeEndian.PutUint64(buf[i*word:], uint64(v))
		} else {
			binary.NativeEndian.PutUint32(buf[i*word:], uint32(v))
		}
	}
	put(0, atPagesz)
	put(1, 4096)
	put(2, atSysinfoEhdr)
	put(3, 0x1000)
	// atNull terminator left as zero

	vec, err := parseAuxv(buf)
	require.NoError(t, err)
	assert.Equal(t, [][2]uintptr{{atPagesz, 4096}, {atSysinfoEhdr, 0x1000}}, vec)

	_, err = parseAuxv(buf[:word])
	assert.Error(t, err)
}

func TestProcAuxvMatchesRuntime(t *testing.T) {
	fromProc, err := readProcAuxv("/proc/self/auxv")
	if err != nil {
		t.Skipf("auxv not readable: %v", err)
	}
	vec, err := Auxv()
	require.NoError(t, err)
	assert.Equal(t, lookup(fromProc, atPagesz), lookup(vec, atPagesz))
	assert.Equal(t, lookup(fromProc, atSysinfoEhdr), lookup(vec, atSysinfoEhdr))
}

func lookup(vec [][2]uintptr, key uintptr) uintptr {
	for _, kv := range vec {
		if kv[0] == key {
			return kv[1]
		}
	}
	return 0
}

func TestImageSize(t *testing.T) {
	hdr := make([]byte, 64)
	copy(hdr, "\x7fELF")
	hdr[eiClass] = elfClass64
	hdr[eiData] = elfData2LSB
	le := binary.LittleEndian
	le.PutUint64(hdr[0x20:], 64)   // phoff
	le.PutUint64(hdr[0x28:], 4000) // shoff
	le.PutUint16(hdr[0x34:], 64)   // ehsize
	le.PutUint16(hdr[0x36:], 56)   // phentsize
	le.PutUint16(hdr[0x38:], 4)    // phnum
	le.PutUint16(hdr[0x3a:], 64)   // shentsize
	le.PutUint16(hdr[0x3c:], 10)   // shnum

	size, err := imageSize(hdr)
	require.NoError(t, err)
	assert.Equal(t, 4000+640, size)

	hdr[0] = 0
	_, err = imageSize(hdr)
	assert.Error(t, err)
}

func TestVDSO(t *testing.T) {
	img, err := VDSO()
	if err == ErrNoVDSO {
		t.Skip("no vDSO mapped")
	}
	require.NoError(t, err)
	require.NotEmpty(t, img.Symbols())

	names := []string{"__vdso_clock_gettime", "__kernel_clock_gettime"}
	var addr uintptr
	for _, n := range names {
		if addr = img.Lookup(n); addr != 0 {
			break
		}
	}
	require.NotZero(t, addr, "no clock_gettime export in vDSO")
	assert.GreaterOrEqual(t, addr, img.Base)
	assert.Less(t, addr, img.Base+uintptr(img.Size)+1<<16)
	assert.Zero(t, img.Lookup("no_such_symbol"))
}

func TestMapped(t *testing.T) {
	buf := []byte("\x7fELF")
	addr := uintptr(unsafe.Pointer(&buf[0]))
	assert.Equal(t, buf, mapped(addr, len(buf)))
}

func TestKernelVsyscall(t *testing.T) {
	entry := KernelVsyscall()
	if runtime.GOARCH == "386" {
		assert.NotZero(t, entry)
		return
	}
	// only i386 processes get the helper
	assert.Zero(t, entry)
}
