package errors

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// MaxErrno is the largest error identifier the kernel encodes in a return
// word. Words whose signed value lies in [-MaxErrno, -1] are errors.
const MaxErrno = 4095

// Errno is a raw kernel error identifier taken from the error band of a
// return word. It carries no meaning beyond the number.
type Errno uint16

func (e Errno) Error() string {
	if name := unix.ErrnoName(syscall.Errno(e)); name != "" {
		return fmt.Sprintf("%s (errno %d)", name, uint16(e))
	}
	return fmt.Sprintf("errno %d", uint16(e))
}

// Is lets errors.Is match an Errno against syscall.Errno and unix.Errno
// values such as unix.ENOENT.
func (e Errno) Is(target error) bool {
	switch t := target.(type) {
	case Errno:
		return e == t
	case syscall.Errno:
		return uintptr(e) == uintptr(t)
	}
	return false
}

// Errno converts to the standard library representation.
func (e Errno) Errno() syscall.Errno {
	return syscall.Errno(e)
}

// New returns e as an error, or nil when e is zero.
func New(e Errno) error {
	if e == 0 {
		return nil
	}
	return e
}

// IsCode checks if an error carries a specific kernel error identifier
func IsCode(err error, code Errno) bool {
	if e, ok := err.(Errno); ok {
		return e == code
	}
	return false
}
