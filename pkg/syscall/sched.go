//go:build linux && !gccgo && (386 || (!purego && (amd64 || arm64 || riscv64 || arm)))

package syscall

import _ "unsafe"

// The runtime must know when a goroutine may sit in the kernel so it can
// hand the P to another thread. These are the same hooks the standard
// syscall package calls around blocking traps.

//go:linkname entersyscall runtime.entersyscall
func entersyscall()

//go:linkname exitsyscall runtime.exitsyscall
func exitsyscall()
