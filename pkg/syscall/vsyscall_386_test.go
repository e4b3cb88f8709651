//go:build linux && !gccgo

package syscall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"

	"github.com/carved4/go-linuxcall/pkg/reg"
	"github.com/carved4/go-linuxcall/pkg/resolve"
)

func TestHelperEntry(t *testing.T) {
	assert.Equal(t, "vsyscall", Name)
	if kv := resolve.KernelVsyscall(); kv != 0 {
		assert.Equal(t, kv, Helper())
		return
	}
	assert.Equal(t, int80Addr(), Helper())
}

// The int $0x80 stand-in must honor the same register contract as the
// kernel helper.
func TestInt80StandIn(t *testing.T) {
	saved := entry
	entry = int80Addr()
	defer func() { entry = saved }()

	var b Selected
	assert.Equal(t, uintptr(unix.Getpid()), b.Syscall0Readonly(nrGetpid).Raw())
	r := b.Syscall1(reg.Nr(unix.SYS_CLOSE), reg.To[reg.A0](reg.Fd(-1)))
	_, e := r.Decode()
	assert.Equal(t, uintptr(unix.EBADF), uintptr(e))
}
