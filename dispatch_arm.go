//go:build linux && arm && !purego && !gccgo

package linuxcall

import (
	"runtime"

	"github.com/carved4/go-linuxcall/pkg/reg"
)

// Call7 is CallN for the seventh EABI argument register.
func Call7[T0 reg.Arg, T1 reg.Arg, T2 reg.Arg, T3 reg.Arg, T4 reg.Arg, T5 reg.Arg, T6 reg.Arg](nr reg.Nr, a0 T0, a1 T1, a2 T2, a3 T3, a4 T4, a5 T5, a6 T6) Result {
	r := sel.Syscall7(nr, reg.To[reg.A0](a0), reg.To[reg.A1](a1), reg.To[reg.A2](a2), reg.To[reg.A3](a3), reg.To[reg.A4](a4), reg.To[reg.A5](a5), reg.To[reg.A6](a6))
	runtime.KeepAlive(a0)
	runtime.KeepAlive(a1)
	runtime.KeepAlive(a2)
	runtime.KeepAlive(a3)
	runtime.KeepAlive(a4)
	runtime.KeepAlive(a5)
	runtime.KeepAlive(a6)
	return r
}

// Readonly7 is ReadonlyN for the seventh EABI argument register.
func Readonly7[T0 reg.Arg, T1 reg.Arg, T2 reg.Arg, T3 reg.Arg, T4 reg.Arg, T5 reg.Arg, T6 reg.Arg](nr reg.Nr, a0 T0, a1 T1, a2 T2, a3 T3, a4 T4, a5 T5, a6 T6) Result {
	r := sel.Syscall7Readonly(nr, reg.To[reg.A0](a0), reg.To[reg.A1](a1), reg.To[reg.A2](a2), reg.To[reg.A3](a3), reg.To[reg.A4](a4), reg.To[reg.A5](a5), reg.To[reg.A6](a6))
	runtime.KeepAlive(a0)
	runtime.KeepAlive(a1)
	runtime.KeepAlive(a2)
	runtime.KeepAlive(a3)
	runtime.KeepAlive(a4)
	runtime.KeepAlive(a5)
	runtime.KeepAlive(a6)
	return r
}
