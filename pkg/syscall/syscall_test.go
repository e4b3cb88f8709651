//go:build linux

package syscall

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/carved4/go-linuxcall/pkg/reg"
)

var nrGetpid = reg.Nr(unix.SYS_GETPID)

// The kernel ignores registers beyond an operation's arity, so getpid
// answers the same through every call shape.
func getpidShapes() map[string]func() result {
	var b Selected
	j0, j1, j2 := reg.RawArg[reg.A0](0xdead), reg.RawArg[reg.A1](1), reg.RawArg[reg.A2](2)
	j3, j4, j5 := reg.RawArg[reg.A3](3), reg.RawArg[reg.A4](4), reg.RawArg[reg.A5](5)
	return map[string]func() result{
		"plain0": func() result { return b.Syscall0(nrGetpid) },
		"plain1": func() result { return b.Syscall1(nrGetpid, j0) },
		"plain2": func() result { return b.Syscall2(nrGetpid, j0, j1) },
		"plain3": func() result { return b.Syscall3(nrGetpid, j0, j1, j2) },
		"plain4": func() result { return b.Syscall4(nrGetpid, j0, j1, j2, j3) },
		"plain5": func() result { return b.Syscall5(nrGetpid, j0, j1, j2, j3, j4) },
		"plain6": func() result { return b.Syscall6(nrGetpid, j0, j1, j2, j3, j4, j5) },
		"ro0":    func() result { return b.Syscall0Readonly(nrGetpid) },
		"ro1":    func() result { return b.Syscall1Readonly(nrGetpid, j0) },
		"ro2":    func() result { return b.Syscall2Readonly(nrGetpid, j0, j1) },
		"ro3":    func() result { return b.Syscall3Readonly(nrGetpid, j0, j1, j2) },
		"ro4":    func() result { return b.Syscall4Readonly(nrGetpid, j0, j1, j2, j3) },
		"ro5":    func() result { return b.Syscall5Readonly(nrGetpid, j0, j1, j2, j3, j4) },
		"ro6":    func() result { return b.Syscall6Readonly(nrGetpid, j0, j1, j2, j3, j4, j5) },
	}
}

func TestGetpidEveryShape(t *testing.T) {
	want := uintptr(unix.Getpid())
	for name, call := range getpidShapes() {
		t.Run(name, func(t *testing.T) {
			for range 3 {
				r := call()
				require.False(t, r.IsError())
				assert.Equal(t, want, r.Raw())
			}
		})
	}
}

func TestErrorWordPreserved(t *testing.T) {
	var b Selected
	// close(-1) fails with EBADF; the band must come back untouched.
	r := b.Syscall1(reg.Nr(unix.SYS_CLOSE), reg.To[reg.A0](reg.Fd(-1)))
	require.True(t, r.IsError())
	_, e := r.Decode()
	ebadf := uintptr(unix.EBADF)
	assert.Equal(t, ebadf, uintptr(e))
	assert.Equal(t, -ebadf, r.Raw())
}

func TestGettidLockedThread(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var b Selected
	r := b.Syscall0Readonly(reg.Nr(unix.SYS_GETTID))
	assert.Equal(t, uintptr(unix.Gettid()), r.Raw())
}

func TestBackendName(t *testing.T) {
	assert.Contains(t, []string{"inline", "outline", "vsyscall"}, Name)
	switch Name {
	case "vsyscall":
		assert.NotZero(t, Helper())
	default:
		assert.Zero(t, Helper())
	}
}
