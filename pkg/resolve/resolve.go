//go:build linux

// Package resolve finds kernel-provided code and data mapped into the
// process: the auxiliary vector, the vDSO and, on 32-bit x86, the
// __kernel_vsyscall fast-path helper.
package resolve

import (
	"fmt"
	"log/slog"
)

// KernelVsyscallSymbol is the vDSO export of the i386 syscall helper.
const KernelVsyscallSymbol = "__kernel_vsyscall"

// KernelVsyscall returns the entry of the i386 syscall helper, or 0 when
// the kernel did not map one. The kernel publishes it in AT_SYSINFO; the
// vDSO symbol table is the fallback.
func KernelVsyscall() uintptr {
	if entry := AuxValue(atSysinfo); entry != 0 {
		slog.Debug("kernel vsyscall from auxv", "entry", fmt.Sprintf("%#x", entry))
		return entry
	}
	img, err := VDSO()
	if err != nil {
		slog.Debug("kernel vsyscall unavailable", "error", err)
		return 0
	}
	return img.Lookup(KernelVsyscallSymbol)
}

// PageSize returns AT_PAGESZ, or 0 when the auxiliary vector is unreadable.
func PageSize() int {
	return int(AuxValue(atPagesz))
}
