//go:build linux && !(386 && !gccgo) && !(!purego && !gccgo && (amd64 || arm64 || riscv64 || arm))

package syscall

import (
	"golang.org/x/sys/unix"

	"github.com/carved4/go-linuxcall/pkg/reg"
)

// Name identifies the backend linked into this build.
const Name = "outline"

// Selected is the backend of this build: the trap code shipped with
// golang.org/x/sys/unix.
type Selected struct{}

var _ Backend = Selected{}

// Helper returns the fast-path helper entry. x/sys uses none.
func Helper() uintptr { return 0 }

// join folds x/sys's split result back into the raw word the kernel left
// in the return register.
func join(r1 uintptr, errno unix.Errno) result {
	if errno != 0 {
		return reg.FromRaw[reg.R0](-uintptr(errno))
	}
	return reg.FromRaw[reg.R0](r1)
}

func plain(nr reg.Nr, w0, w1, w2, w3, w4, w5 uintptr) result {
	r1, _, errno := unix.Syscall6(nr.Raw(), w0, w1, w2, w3, w4, w5)
	return join(r1, errno)
}

func readonly(nr reg.Nr, w0, w1, w2, w3, w4, w5 uintptr) result {
	r1, _, errno := unix.RawSyscall6(nr.Raw(), w0, w1, w2, w3, w4, w5)
	return join(r1, errno)
}

func (Selected) Syscall0(nr reg.Nr) result {
	return plain(nr, 0, 0, 0, 0, 0, 0)
}

func (Selected) Syscall1(nr reg.Nr, x0 arg0) result {
	return plain(nr, x0.Raw(), 0, 0, 0, 0, 0)
}

func (Selected) Syscall2(nr reg.Nr, x0 arg0, x1 arg1) result {
	return plain(nr, x0.Raw(), x1.Raw(), 0, 0, 0, 0)
}

func (Selected) Syscall3(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2) result {
	return plain(nr, x0.Raw(), x1.Raw(), x2.Raw(), 0, 0, 0)
}

func (Selected) Syscall4(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3) result {
	return plain(nr, x0.Raw(), x1.Raw(), x2.Raw(), x3.Raw(), 0, 0)
}

func (Selected) Syscall5(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3, x4 arg4) result {
	return plain(nr, x0.Raw(), x1.Raw(), x2.Raw(), x3.Raw(), x4.Raw(), 0)
}

func (Selected) Syscall6(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3, x4 arg4, x5 arg5) result {
	return plain(nr, x0.Raw(), x1.Raw(), x2.Raw(), x3.Raw(), x4.Raw(), x5.Raw())
}

func (Selected) Syscall0Readonly(nr reg.Nr) result {
	return readonly(nr, 0, 0, 0, 0, 0, 0)
}

func (Selected) Syscall1Readonly(nr reg.Nr, x0 arg0) result {
	return readonly(nr, x0.Raw(), 0, 0, 0, 0, 0)
}

func (Selected) Syscall2Readonly(nr reg.Nr, x0 arg0, x1 arg1) result {
	return readonly(nr, x0.Raw(), x1.Raw(), 0, 0, 0, 0)
}

func (Selected) Syscall3Readonly(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2) result {
	return readonly(nr, x0.Raw(), x1.Raw(), x2.Raw(), 0, 0, 0)
}

func (Selected) Syscall4Readonly(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3) result {
	return readonly(nr, x0.Raw(), x1.Raw(), x2.Raw(), x3.Raw(), 0, 0)
}

func (Selected) Syscall5Readonly(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3, x4 arg4) result {
	return readonly(nr, x0.Raw(), x1.Raw(), x2.Raw(), x3.Raw(), x4.Raw(), 0)
}

func (Selected) Syscall6Readonly(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3, x4 arg4, x5 arg5) result {
	return readonly(nr, x0.Raw(), x1.Raw(), x2.Raw(), x3.Raw(), x4.Raw(), x5.Raw())
}

func (Selected) Syscall1NoReturn(nr reg.Nr, x0 arg0) {
	unix.RawSyscall(nr.Raw(), x0.Raw(), 0, 0)
	for {
	}
}
