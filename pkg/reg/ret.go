package reg

import (
	"unsafe"

	"github.com/carved4/go-linuxcall/pkg/errors"
)

// Classify splits a raw return word of any width. A word whose signed
// value lies in [-4095, -1] is an error and its magnitude is returned with
// ok == false. Every other word, including large addresses, is a payload.
func Classify[W Machine](w W) (payload W, errno errors.Errno, ok bool) {
	if w > ^W(0)-errors.MaxErrno {
		return 0, errors.Errno(-w), false
	}
	return w, 0, true
}

// Decode splits the return word into payload and error identifier.
func (r RetReg[R]) Decode() (uintptr, errors.Errno) {
	v, e, _ := Classify(r.raw)
	return v, e
}

// Err returns the error carried by the word, if any.
func (r RetReg[R]) Err() error {
	_, e := r.Decode()
	return errors.New(e)
}

// IsError reports whether the word lies in the error band.
func (r RetReg[R]) IsError() bool {
	_, _, ok := Classify(r.raw)
	return !ok
}

// Fd interprets a successful word as a descriptor.
func (r RetReg[R]) Fd() (int, error) {
	v, e := r.Decode()
	if e != 0 {
		return -1, e
	}
	return int(FromWord[int32](v)), nil
}

// Int interprets a successful word as a signed count.
func (r RetReg[R]) Int() (int, error) {
	v, e := r.Decode()
	if e != 0 {
		return 0, e
	}
	return FromWord[int](v), nil
}

// Uint interprets a successful word as an unsigned value.
func (r RetReg[R]) Uint() (uint, error) {
	v, e := r.Decode()
	if e != 0 {
		return 0, e
	}
	return FromWord[uint](v), nil
}

// Size interprets a successful word as a byte count.
func (r RetReg[R]) Size() (uintptr, error) {
	v, e := r.Decode()
	if e != 0 {
		return 0, e
	}
	return v, nil
}

// Pointer interprets a successful word as an address returned by the
// kernel, for example from mmap.
func (r RetReg[R]) Pointer() (unsafe.Pointer, error) {
	v, e := r.Decode()
	if e != 0 {
		return nil, e
	}
	return *(*unsafe.Pointer)(unsafe.Pointer(&v)), nil
}
