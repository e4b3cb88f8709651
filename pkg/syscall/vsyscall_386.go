//go:build linux && !gccgo

package syscall

import (
	"github.com/carved4/go-linuxcall/pkg/reg"
	"github.com/carved4/go-linuxcall/pkg/resolve"
)

// Name identifies the backend linked into this build.
const Name = "vsyscall"

// On 32-bit x86 every call goes through __kernel_vsyscall, which picks
// sysenter or syscall and beats int $0x80. The helper takes the int $0x80
// register contract, so the stubs below only swap the trap for a call.

// implemented in asm_linux_386.s; each calls through entry
func vsyscall0(nr uintptr) uintptr
func vsyscall1(nr, a0 uintptr) uintptr
func vsyscall2(nr, a0, a1 uintptr) uintptr
func vsyscall3(nr, a0, a1, a2 uintptr) uintptr
func vsyscall4(nr, a0, a1, a2, a3 uintptr) uintptr
func vsyscall5(nr, a0, a1, a2, a3, a4 uintptr) uintptr
func vsyscall6(nr, a0, a1, a2, a3, a4, a5 uintptr) uintptr
func int80()
func int80NoReturn(nr, a0 uintptr)
func int80Addr() uintptr

// entry is written once during package init, before any call. The stubs
// read it as ·entry(SB).
var entry uintptr

func init() {
	entry = resolve.KernelVsyscall()
	if entry == 0 {
		// no helper mapped; int80 has the same register contract
		entry = int80Addr()
	}
}

// Helper returns the entry every call goes through.
func Helper() uintptr { return entry }

// Selected is the backend of this build: calls via __kernel_vsyscall.
type Selected struct{}

var _ Backend = Selected{}

//go:nosplit
func (Selected) Syscall0(nr reg.Nr) result {
	n := nr.Raw()
	entersyscall()
	r := vsyscall0(n)
	exitsyscall()
	return reg.FromRaw[reg.R0](r)
}

//go:nosplit
func (Selected) Syscall1(nr reg.Nr, x0 arg0) result {
	n, w0 := nr.Raw(), x0.Raw()
	entersyscall()
	r := vsyscall1(n, w0)
	exitsyscall()
	return reg.FromRaw[reg.R0](r)
}

//go:nosplit
func (Selected) Syscall2(nr reg.Nr, x0 arg0, x1 arg1) result {
	n, w0, w1 := nr.Raw(), x0.Raw(), x1.Raw()
	entersyscall()
	r := vsyscall2(n, w0, w1)
	exitsyscall()
	return reg.FromRaw[reg.R0](r)
}

//go:nosplit
func (Selected) Syscall3(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2) result {
	n, w0, w1, w2 := nr.Raw(), x0.Raw(), x1.Raw(), x2.Raw()
	entersyscall()
	r := vsyscall3(n, w0, w1, w2)
	exitsyscall()
	return reg.FromRaw[reg.R0](r)
}

//go:nosplit
func (Selected) Syscall4(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3) result {
	n, w0, w1, w2, w3 := nr.Raw(), x0.Raw(), x1.Raw(), x2.Raw(), x3.Raw()
	entersyscall()
	r := vsyscall4(n, w0, w1, w2, w3)
	exitsyscall()
	return reg.FromRaw[reg.R0](r)
}

//go:nosplit
func (Selected) Syscall5(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3, x4 arg4) result {
	n, w0, w1, w2, w3, w4 := nr.Raw(), x0.Raw(), x1.Raw(), x2.Raw(), x3.Raw(), x4.Raw()
	entersyscall()
	r := vsyscall5(n, w0, w1, w2, w3, w4)
	exitsyscall()
	return reg.FromRaw[reg.R0](r)
}

//go:nosplit
func (Selected) Syscall6(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3, x4 arg4, x5 arg5) result {
	n := nr.Raw()
	w0, w1, w2, w3, w4, w5 := x0.Raw(), x1.Raw(), x2.Raw(), x3.Raw(), x4.Raw(), x5.Raw()
	entersyscall()
	r := vsyscall6(n, w0, w1, w2, w3, w4, w5)
	exitsyscall()
	return reg.FromRaw[reg.R0](r)
}

//go:nosplit
func (Selected) Syscall0Readonly(nr reg.Nr) result {
	return reg.FromRaw[reg.R0](vsyscall0(nr.Raw()))
}

//go:nosplit
func (Selected) Syscall1Readonly(nr reg.Nr, x0 arg0) result {
	return reg.FromRaw[reg.R0](vsyscall1(nr.Raw(), x0.Raw()))
}

//go:nosplit
func (Selected) Syscall2Readonly(nr reg.Nr, x0 arg0, x1 arg1) result {
	return reg.FromRaw[reg.R0](vsyscall2(nr.Raw(), x0.Raw(), x1.Raw()))
}

//go:nosplit
func (Selected) Syscall3Readonly(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2) result {
	return reg.FromRaw[reg.R0](vsyscall3(nr.Raw(), x0.Raw(), x1.Raw(), x2.Raw()))
}

//go:nosplit
func (Selected) Syscall4Readonly(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3) result {
	return reg.FromRaw[reg.R0](vsyscall4(nr.Raw(), x0.Raw(), x1.Raw(), x2.Raw(), x3.Raw()))
}

//go:nosplit
func (Selected) Syscall5Readonly(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3, x4 arg4) result {
	return reg.FromRaw[reg.R0](vsyscall5(nr.Raw(), x0.Raw(), x1.Raw(), x2.Raw(), x3.Raw(), x4.Raw()))
}

//go:nosplit
func (Selected) Syscall6Readonly(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3, x4 arg4, x5 arg5) result {
	return reg.FromRaw[reg.R0](vsyscall6(nr.Raw(), x0.Raw(), x1.Raw(), x2.Raw(), x3.Raw(), x4.Raw(), x5.Raw()))
}

// Syscall1NoReturn uses int $0x80 directly; there is no result to hurry
// back with.
func (Selected) Syscall1NoReturn(nr reg.Nr, x0 arg0) {
	int80NoReturn(nr.Raw(), x0.Raw())
	for {
	}
}
