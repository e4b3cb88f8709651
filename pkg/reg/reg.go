// Package reg converts logical syscall arguments and results to and from
// machine words.
//
// Arguments are bound to a fixed positional slot (A0..A6) by their type, so
// passing the third argument where the second is expected fails to compile
// instead of corrupting the register assignment at run time.
package reg

// Nr is a kernel operation number. Its value is architecture specific; the
// constants in package sysno resolve it per GOARCH at compile time.
type Nr uintptr

//go:nosplit
func (n Nr) Raw() uintptr { return uintptr(n) }

// Argument slot markers. They carry no data; ArgReg uses them to tag a
// word with the position it must occupy.
type (
	A0 struct{}
	A1 struct{}
	A2 struct{}
	A3 struct{}
	A4 struct{}
	A5 struct{}
	A6 struct{}
)

// ArgSlot is the closed set of argument positions.
type ArgSlot interface {
	A0 | A1 | A2 | A3 | A4 | A5 | A6
}

// R0 marks the return register.
type R0 struct{}

// RetSlot is the closed set of result registers.
type RetSlot interface {
	R0
}

// ArgReg is one marshaled argument bound to slot P.
type ArgReg[P ArgSlot] struct {
	raw uintptr
}

// Raw returns the machine word held in the slot.
//
//go:nosplit
func (a ArgReg[P]) Raw() uintptr { return a.raw }

// Slot returns the zero-based position P stands for.
func (a ArgReg[P]) Slot() int { return SlotIndex[P]() }

// To marshals a logical argument into slot P.
func To[P ArgSlot, T Arg](v T) ArgReg[P] {
	return ArgReg[P]{raw: v.Word()}
}

// RawArg wraps an already marshaled word.
func RawArg[P ArgSlot](w uintptr) ArgReg[P] {
	return ArgReg[P]{raw: w}
}

// SlotIndex returns the position of slot type P.
func SlotIndex[P ArgSlot]() int {
	var p P
	switch any(p).(type) {
	case A0:
		return 0
	case A1:
		return 1
	case A2:
		return 2
	case A3:
		return 3
	case A4:
		return 4
	case A5:
		return 5
	case A6:
		return 6
	}
	panic("unreachable")
}

// RetReg is the raw word the kernel left in result register R.
type RetReg[R RetSlot] struct {
	raw uintptr
}

// FromRaw tags a word read from result register R.
//
//go:nosplit
func FromRaw[R RetSlot](w uintptr) RetReg[R] {
	return RetReg[R]{raw: w}
}

// Raw returns the unmodified return word.
func (r RetReg[R]) Raw() uintptr { return r.raw }
