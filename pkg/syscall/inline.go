//go:build linux && !purego && !gccgo && (amd64 || arm64 || riscv64 || arm)

package syscall

import "github.com/carved4/go-linuxcall/pkg/reg"

// Name identifies the backend linked into this build.
const Name = "inline"

// implemented in asm_linux_$GOARCH.s
func rawSyscall0(nr uintptr) uintptr
func rawSyscall1(nr, a0 uintptr) uintptr
func rawSyscall2(nr, a0, a1 uintptr) uintptr
func rawSyscall3(nr, a0, a1, a2 uintptr) uintptr
func rawSyscall4(nr, a0, a1, a2, a3 uintptr) uintptr
func rawSyscall5(nr, a0, a1, a2, a3, a4 uintptr) uintptr
func rawSyscall6(nr, a0, a1, a2, a3, a4, a5 uintptr) uintptr
func rawSyscall1NoReturn(nr, a0 uintptr)

// Selected is the backend of this build: direct trap stubs.
type Selected struct{}

var _ Backend = Selected{}

// Helper returns the fast-path helper entry. The trap stubs use none.
func Helper() uintptr { return 0 }

//go:nosplit
func (Selected) Syscall0(nr reg.Nr) result {
	entersyscall()
	r := rawSyscall0(nr.Raw())
	exitsyscall()
	return reg.FromRaw[reg.R0](r)
}

//go:nosplit
func (Selected) Syscall1(nr reg.Nr, x0 arg0) result {
	w0 := x0.Raw()
	entersyscall()
	r := rawSyscall1(nr.Raw(), w0)
	exitsyscall()
	return reg.FromRaw[reg.R0](r)
}

//go:nosplit
func (Selected) Syscall2(nr reg.Nr, x0 arg0, x1 arg1) result {
	w0, w1 := x0.Raw(), x1.Raw()
	entersyscall()
	r := rawSyscall2(nr.Raw(), w0, w1)
	exitsyscall()
	return reg.FromRaw[reg.R0](r)
}

//go:nosplit
func (Selected) Syscall3(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2) result {
	w0, w1, w2 := x0.Raw(), x1.Raw(), x2.Raw()
	entersyscall()
	r := rawSyscall3(nr.Raw(), w0, w1, w2)
	exitsyscall()
	return reg.FromRaw[reg.R0](r)
}

//go:nosplit
func (Selected) Syscall4(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3) result {
	w0, w1, w2, w3 := x0.Raw(), x1.Raw(), x2.Raw(), x3.Raw()
	entersyscall()
	r := rawSyscall4(nr.Raw(), w0, w1, w2, w3)
	exitsyscall()
	return reg.FromRaw[reg.R0](r)
}

//go:nosplit
func (Selected) Syscall5(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3, x4 arg4) result {
	w0, w1, w2, w3, w4 := x0.Raw(), x1.Raw(), x2.Raw(), x3.Raw(), x4.Raw()
	entersyscall()
	r := rawSyscall5(nr.Raw(), w0, w1, w2, w3, w4)
	exitsyscall()
	return reg.FromRaw[reg.R0](r)
}

//go:nosplit
func (Selected) Syscall6(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3, x4 arg4, x5 arg5) result {
	w0, w1, w2, w3, w4, w5 := x0.Raw(), x1.Raw(), x2.Raw(), x3.Raw(), x4.Raw(), x5.Raw()
	entersyscall()
	r := rawSyscall6(nr.Raw(), w0, w1, w2, w3, w4, w5)
	exitsyscall()
	return reg.FromRaw[reg.R0](r)
}

//go:nosplit
func (Selected) Syscall0Readonly(nr reg.Nr) result {
	return reg.FromRaw[reg.R0](rawSyscall0(nr.Raw()))
}

//go:nosplit
func (Selected) Syscall1Readonly(nr reg.Nr, x0 arg0) result {
	return reg.FromRaw[reg.R0](rawSyscall1(nr.Raw(), x0.Raw()))
}

//go:nosplit
func (Selected) Syscall2Readonly(nr reg.Nr, x0 arg0, x1 arg1) result {
	return reg.FromRaw[reg.R0](rawSyscall2(nr.Raw(), x0.Raw(), x1.Raw()))
}

//go:nosplit
func (Selected) Syscall3Readonly(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2) result {
	return reg.FromRaw[reg.R0](rawSyscall3(nr.Raw(), x0.Raw(), x1.Raw(), x2.Raw()))
}

//go:nosplit
func (Selected) Syscall4Readonly(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3) result {
	return reg.FromRaw[reg.R0](rawSyscall4(nr.Raw(), x0.Raw(), x1.Raw(), x2.Raw(), x3.Raw()))
}

//go:nosplit
func (Selected) Syscall5Readonly(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3, x4 arg4) result {
	return reg.FromRaw[reg.R0](rawSyscall5(nr.Raw(), x0.Raw(), x1.Raw(), x2.Raw(), x3.Raw(), x4.Raw()))
}

//go:nosplit
func (Selected) Syscall6Readonly(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3, x4 arg4, x5 arg5) result {
	return reg.FromRaw[reg.R0](rawSyscall6(nr.Raw(), x0.Raw(), x1.Raw(), x2.Raw(), x3.Raw(), x4.Raw(), x5.Raw()))
}

// Syscall1NoReturn traps and never comes back. The stub faults if the
// kernel ever returns; the loop only satisfies the compiler.
func (Selected) Syscall1NoReturn(nr reg.Nr, x0 arg0) {
	rawSyscall1NoReturn(nr.Raw(), x0.Raw())
	for {
	}
}
