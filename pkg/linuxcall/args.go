//go:build linux

package linuxcall

import "golang.org/x/sys/unix"

// cstring reads a NUL terminated string out of a kernel-filled buffer.
// Without a terminator the whole buffer is the string.
func cstring(b []byte) string {
	return unix.ByteSliceToString(b)
}

// Utsname field helpers; the kernel fills fixed arrays.

func Sysname(u *unix.Utsname) string { return cstring(u.Sysname[:]) }
func Release(u *unix.Utsname) string { return cstring(u.Release[:]) }
func Machine(u *unix.Utsname) string { return cstring(u.Machine[:]) }
