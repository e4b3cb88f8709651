//go:build linux

// Package linuxcall issues Linux system calls directly, without libc and
// without the standard library's syscall wrappers.
//
// Every call names its operation number and passes logical arguments
// that are marshaled into the architecture's argument registers by
// position. The raw return word comes back unmodified as a Result; its
// Decode method splits it into payload and kernel error.
//
//	r := linuxcall.Call4(sysno.Openat, reg.Fd(unix.AT_FDCWD), path, reg.Flags(unix.O_RDONLY), reg.Mode(0))
//	fd, err := r.Fd()
//
// Three call shapes exist per arity: CallN (may block, scheduler aware),
// ReadonlyN (pure query, bare trap) and NoReturn1. Which trap sequence
// backs them is fixed at build time; see package syscall.
package linuxcall

import (
	"github.com/carved4/go-linuxcall/pkg/errors"
	"github.com/carved4/go-linuxcall/pkg/reg"
	"github.com/carved4/go-linuxcall/pkg/syscall"
)

// Backend names the trap sequence linked into this binary.
const Backend = syscall.Name

// Errno is the kernel error identifier carried by a failed Result.
type Errno = errors.Errno

var (
	Convention = syscall.Current
	Helper     = syscall.Helper
)

// Str converts s to a NUL terminated argument.
func Str(s string) (reg.Pointer, error) {
	return reg.CStr(s)
}

// Buf passes the backing array of b.
func Buf(b []byte) reg.Pointer {
	return reg.BufPtr(b)
}
