//go:build linux && arm && !purego && !gccgo

package syscall

import "github.com/carved4/go-linuxcall/pkg/reg"

// EABI passes a seventh argument in r6.
func rawSyscall7(nr, a0, a1, a2, a3, a4, a5, a6 uintptr) uintptr

var _ Backend7 = Selected{}

//go:nosplit
func (Selected) Syscall7(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3, x4 arg4, x5 arg5, x6 arg6) result {
	w0, w1, w2, w3, w4, w5, w6 := x0.Raw(), x1.Raw(), x2.Raw(), x3.Raw(), x4.Raw(), x5.Raw(), x6.Raw()
	entersyscall()
	r := rawSyscall7(nr.Raw(), w0, w1, w2, w3, w4, w5, w6)
	exitsyscall()
	return reg.FromRaw[reg.R0](r)
}

//go:nosplit
func (Selected) Syscall7Readonly(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3, x4 arg4, x5 arg5, x6 arg6) result {
	return reg.FromRaw[reg.R0](rawSyscall7(nr.Raw(), x0.Raw(), x1.Raw(), x2.Raw(), x3.Raw(), x4.Raw(), x5.Raw(), x6.Raw()))
}
