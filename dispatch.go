//go:build linux

package linuxcall

import (
	"runtime"

	"github.com/carved4/go-linuxcall/pkg/reg"
	"github.com/carved4/go-linuxcall/pkg/syscall"
)

// Result is the raw word an operation left in the return register.
type Result = reg.RetReg[reg.R0]

var sel syscall.Selected

// CallN issues operation nr with N arguments. The operation may have side
// effects and may block; the Go scheduler is told so another goroutine
// can run meanwhile. Arguments are marshaled into their positional slots
// and kept alive until the kernel returns.
func Call0(nr reg.Nr) Result {
	return sel.Syscall0(nr)
}

func Call1[T0 reg.Arg](nr reg.Nr, a0 T0) Result {
	r := sel.Syscall1(nr, reg.To[reg.A0](a0))
	runtime.KeepAlive(a0)
	return r
}

func Call2[T0 reg.Arg, T1 reg.Arg](nr reg.Nr, a0 T0, a1 T1) Result {
	r := sel.Syscall2(nr, reg.To[reg.A0](a0), reg.To[reg.A1](a1))
	runtime.KeepAlive(a0)
	runtime.KeepAlive(a1)
	return r
}

func Call3[T0 reg.Arg, T1 reg.Arg, T2 reg.Arg](nr reg.Nr, a0 T0, a1 T1, a2 T2) Result {
	r := sel.Syscall3(nr, reg.To[reg.A0](a0), reg.To[reg.A1](a1), reg.To[reg.A2](a2))
	runtime.KeepAlive(a0)
	runtime.KeepAlive(a1)
	runtime.KeepAlive(a2)
	return r
}

func Call4[T0 reg.Arg, T1 reg.Arg, T2 reg.Arg, T3 reg.Arg](nr reg.Nr, a0 T0, a1 T1, a2 T2, a3 T3) Result {
	r := sel.Syscall4(nr, reg.To[reg.A0](a0), reg.To[reg.A1](a1), reg.To[reg.A2](a2), reg.To[reg.A3](a3))
	runtime.KeepAlive(a0)
	runtime.KeepAlive(a1)
	runtime.KeepAlive(a2)
	runtime.KeepAlive(a3)
	return r
}

func Call5[T0 reg.Arg, T1 reg.Arg, T2 reg.Arg, T3 reg.Arg, T4 reg.Arg](nr reg.Nr, a0 T0, a1 T1, a2 T2, a3 T3, a4 T4) Result {
	r := sel.Syscall5(nr, reg.To[reg.A0](a0), reg.To[reg.A1](a1), reg.To[reg.A2](a2), reg.To[reg.A3](a3), reg.To[reg.A4](a4))
	runtime.KeepAlive(a0)
	runtime.KeepAlive(a1)
	runtime.KeepAlive(a2)
	runtime.KeepAlive(a3)
	runtime.KeepAlive(a4)
	return r
}

func Call6[T0 reg.Arg, T1 reg.Arg, T2 reg.Arg, T3 reg.Arg, T4 reg.Arg, T5 reg.Arg](nr reg.Nr, a0 T0, a1 T1, a2 T2, a3 T3, a4 T4, a5 T5) Result {
	r := sel.Syscall6(nr, reg.To[reg.A0](a0), reg.To[reg.A1](a1), reg.To[reg.A2](a2), reg.To[reg.A3](a3), reg.To[reg.A4](a4), reg.To[reg.A5](a5))
	runtime.KeepAlive(a0)
	runtime.KeepAlive(a1)
	runtime.KeepAlive(a2)
	runtime.KeepAlive(a3)
	runtime.KeepAlive(a4)
	runtime.KeepAlive(a5)
	return r
}

// ReadonlyN issues operation nr as a bare trap. Use it only for pure
// queries that write nothing the caller can observe and never block, such
// as getpid; a blocking operation issued this way stalls its P.
func Readonly0(nr reg.Nr) Result {
	return sel.Syscall0Readonly(nr)
}

func Readonly1[T0 reg.Arg](nr reg.Nr, a0 T0) Result {
	r := sel.Syscall1Readonly(nr, reg.To[reg.A0](a0))
	runtime.KeepAlive(a0)
	return r
}

func Readonly2[T0 reg.Arg, T1 reg.Arg](nr reg.Nr, a0 T0, a1 T1) Result {
	r := sel.Syscall2Readonly(nr, reg.To[reg.A0](a0), reg.To[reg.A1](a1))
	runtime.KeepAlive(a0)
	runtime.KeepAlive(a1)
	return r
}

func Readonly3[T0 reg.Arg, T1 reg.Arg, T2 reg.Arg](nr reg.Nr, a0 T0, a1 T1, a2 T2) Result {
	r := sel.Syscall3Readonly(nr, reg.To[reg.A0](a0), reg.To[reg.A1](a1), reg.To[reg.A2](a2))
	runtime.KeepAlive(a0)
	runtime.KeepAlive(a1)
	runtime.KeepAlive(a2)
	return r
}

func Readonly4[T0 reg.Arg, T1 reg.Arg, T2 reg.Arg, T3 reg.Arg](nr reg.Nr, a0 T0, a1 T1, a2 T2, a3 T3) Result {
	r := sel.Syscall4Readonly(nr, reg.To[reg.A0](a0), reg.To[reg.A1](a1), reg.To[reg.A2](a2), reg.To[reg.A3](a3))
	runtime.KeepAlive(a0)
	runtime.KeepAlive(a1)
	runtime.KeepAlive(a2)
	runtime.KeepAlive(a3)
	return r
}

func Readonly5[T0 reg.Arg, T1 reg.Arg, T2 reg.Arg, T3 reg.Arg, T4 reg.Arg](nr reg.Nr, a0 T0, a1 T1, a2 T2, a3 T3, a4 T4) Result {
	r := sel.Syscall5Readonly(nr, reg.To[reg.A0](a0), reg.To[reg.A1](a1), reg.To[reg.A2](a2), reg.To[reg.A3](a3), reg.To[reg.A4](a4))
	runtime.KeepAlive(a0)
	runtime.KeepAlive(a1)
	runtime.KeepAlive(a2)
	runtime.KeepAlive(a3)
	runtime.KeepAlive(a4)
	return r
}

func Readonly6[T0 reg.Arg, T1 reg.Arg, T2 reg.Arg, T3 reg.Arg, T4 reg.Arg, T5 reg.Arg](nr reg.Nr, a0 T0, a1 T1, a2 T2, a3 T3, a4 T4, a5 T5) Result {
	r := sel.Syscall6Readonly(nr, reg.To[reg.A0](a0), reg.To[reg.A1](a1), reg.To[reg.A2](a2), reg.To[reg.A3](a3), reg.To[reg.A4](a4), reg.To[reg.A5](a5))
	runtime.KeepAlive(a0)
	runtime.KeepAlive(a1)
	runtime.KeepAlive(a2)
	runtime.KeepAlive(a3)
	runtime.KeepAlive(a4)
	runtime.KeepAlive(a5)
	return r
}

// NoReturn1 issues an operation that never returns control, such as
// exit_group. Nothing after it runs, deferred calls included.
func NoReturn1[T0 reg.Arg](nr reg.Nr, a0 T0) {
	sel.Syscall1NoReturn(nr, reg.To[reg.A0](a0))
}
