//go:build linux && arm && !purego && !gccgo

package syscall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"

	"github.com/carved4/go-linuxcall/pkg/reg"
)

func TestSyscall7(t *testing.T) {
	var b Selected
	r := b.Syscall7(nrGetpid,
		reg.RawArg[reg.A0](0), reg.RawArg[reg.A1](1), reg.RawArg[reg.A2](2),
		reg.RawArg[reg.A3](3), reg.RawArg[reg.A4](4), reg.RawArg[reg.A5](5),
		reg.RawArg[reg.A6](6))
	assert.Equal(t, uintptr(unix.Getpid()), r.Raw())

	r = b.Syscall7Readonly(nrGetpid,
		reg.RawArg[reg.A0](0), reg.RawArg[reg.A1](1), reg.RawArg[reg.A2](2),
		reg.RawArg[reg.A3](3), reg.RawArg[reg.A4](4), reg.RawArg[reg.A5](5),
		reg.RawArg[reg.A6](6))
	assert.Equal(t, uintptr(unix.Getpid()), r.Raw())
}
