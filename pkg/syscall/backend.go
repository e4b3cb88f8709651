// Package syscall holds the trap sequences that enter the kernel.
//
// Exactly one backend is compiled into a binary, chosen by build
// constraints:
//
//	inline    linux/amd64, arm64, riscv64, arm: Go assembly trap stubs
//	vsyscall  linux/386: calls through the kernel's __kernel_vsyscall helper
//	outline   everything else, or the purego/gccgo tags: the precompiled
//	          trap code of golang.org/x/sys/unix
//
// All three expose the same Selected type. There is no runtime probing;
// the choice is a property of the build.
//
// Call shapes carry a contract the compiler cannot check. SyscallN may
// have side effects and may block; the Go scheduler is told about it.
// SyscallNReadonly is for pure queries that never block and is issued
// as a bare trap. Syscall1NoReturn never returns; no code after it runs,
// deferred calls included. Picking the wrong shape is a caller bug.
package syscall

import "github.com/carved4/go-linuxcall/pkg/reg"

type (
	arg0 = reg.ArgReg[reg.A0]
	arg1 = reg.ArgReg[reg.A1]
	arg2 = reg.ArgReg[reg.A2]
	arg3 = reg.ArgReg[reg.A3]
	arg4 = reg.ArgReg[reg.A4]
	arg5 = reg.ArgReg[reg.A5]
	arg6 = reg.ArgReg[reg.A6]

	result = reg.RetReg[reg.R0]
)

// Backend is the call surface every backend provides.
type Backend interface {
	Syscall0(nr reg.Nr) result
	Syscall1(nr reg.Nr, x0 arg0) result
	Syscall2(nr reg.Nr, x0 arg0, x1 arg1) result
	Syscall3(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2) result
	Syscall4(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3) result
	Syscall5(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3, x4 arg4) result
	Syscall6(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3, x4 arg4, x5 arg5) result

	Syscall0Readonly(nr reg.Nr) result
	Syscall1Readonly(nr reg.Nr, x0 arg0) result
	Syscall2Readonly(nr reg.Nr, x0 arg0, x1 arg1) result
	Syscall3Readonly(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2) result
	Syscall4Readonly(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3) result
	Syscall5Readonly(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3, x4 arg4) result
	Syscall6Readonly(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3, x4 arg4, x5 arg5) result

	Syscall1NoReturn(nr reg.Nr, x0 arg0)
}

// Backend7 is implemented where the kernel convention has a seventh
// argument register.
type Backend7 interface {
	Backend
	Syscall7(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3, x4 arg4, x5 arg5, x6 arg6) result
	Syscall7Readonly(nr reg.Nr, x0 arg0, x1 arg1, x2 arg2, x3 arg3, x4 arg4, x5 arg5, x6 arg6) result
}
