package reg

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Arg is implemented by every logical argument kind.
type Arg interface {
	Word() uintptr
}

// Machine is the set of word widths a register can have.
type Machine interface {
	~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of logical integer values that fit a register.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// ToWord converts v to a register of width W. Signed values are sign
// extended, unsigned values zero extended.
func ToWord[W Machine, T Integer](v T) W {
	return W(v)
}

// FromWord is the inverse of ToWord for values that fit T.
func FromWord[T Integer, W Machine](w W) T {
	return T(w)
}

type (
	// Word is an already raw machine word.
	Word uintptr
	// Int is a signed integer argument.
	Int int
	// Uint is an unsigned integer argument.
	Uint uint
	// Fd is a file descriptor. Negative values such as AT_FDCWD keep their
	// sign in the register.
	Fd int32
	// Flags is a bitmask argument.
	Flags uint32
	// Mode is a permission bits argument.
	Mode uint32
	// Size is a byte count.
	Size uintptr
	// Bool is passed as 1 or 0.
	Bool bool
)

func (w Word) Word() uintptr  { return uintptr(w) }
func (i Int) Word() uintptr   { return ToWord[uintptr](i) }
func (u Uint) Word() uintptr  { return ToWord[uintptr](u) }
func (f Fd) Word() uintptr    { return ToWord[uintptr](int(f)) }
func (f Flags) Word() uintptr { return ToWord[uintptr](f) }
func (m Mode) Word() uintptr  { return ToWord[uintptr](m) }
func (s Size) Word() uintptr  { return uintptr(s) }

func (b Bool) Word() uintptr {
	if b {
		return 1
	}
	return 0
}

// Pointer is a borrowed address. The referent must stay reachable until
// the call returns; the dispatch functions keep their Pointer arguments
// alive across the trap.
type Pointer struct {
	p unsafe.Pointer
}

// Ptr wraps an address.
func Ptr(p unsafe.Pointer) Pointer { return Pointer{p: p} }

// BufPtr returns the address of b's backing array, or a null pointer for an
// empty slice.
func BufPtr(b []byte) Pointer {
	if len(b) == 0 {
		return Pointer{}
	}
	return Pointer{p: unsafe.Pointer(unsafe.SliceData(b))}
}

// CStr copies s into a NUL terminated buffer and returns its address.
// It fails with EINVAL when s contains a NUL byte.
func CStr(s string) (Pointer, error) {
	b, err := unix.BytePtrFromString(s)
	if err != nil {
		return Pointer{}, err
	}
	return Pointer{p: unsafe.Pointer(b)}, nil
}

func (p Pointer) Word() uintptr { return uintptr(p.p) }

// Unsafe returns the wrapped address.
func (p Pointer) Unsafe() unsafe.Pointer { return p.p }

// IsNull reports whether p carries the zero address.
func (p Pointer) IsNull() bool { return p.p == nil }
