//go:build linux

package linuxcall

import (
	"fmt"
	"reflect"
	"runtime"
	"unsafe"

	"github.com/carved4/go-linuxcall/pkg/reg"
	"github.com/carved4/go-linuxcall/pkg/sysno"
)

// Invoke issues a catalog operation chosen by name at run time. It is for
// tools that take operations from user input; code that knows its
// operation at compile time should use CallN or ReadonlyN.
//
// The call shape follows the catalog entry. Missing trailing arguments
// are passed as zero, extra ones are an error. Operations that never
// return are refused; use NoReturn1 for those.
func Invoke(name string, args ...any) (Result, error) {
	e, ok := sysno.Lookup(name)
	if !ok {
		return Result{}, fmt.Errorf("linuxcall: unknown operation %q", name)
	}
	if e.Class == sysno.NoReturn {
		return Result{}, fmt.Errorf("linuxcall: %s does not return; use NoReturn1", name)
	}
	if len(args) > e.Args {
		return Result{}, fmt.Errorf("linuxcall: %s takes %d arguments, got %d", name, e.Args, len(args))
	}

	var w [6]uintptr
	var keep []any
	for i, a := range args {
		v, pin, err := processArg(a)
		if err != nil {
			return Result{}, fmt.Errorf("linuxcall: %s argument %d: %w", name, i, err)
		}
		w[i] = v
		if pin != nil {
			keep = append(keep, pin)
		}
	}
	r := invokeWords(e, w)
	runtime.KeepAlive(keep)
	return r, nil
}

func invokeWords(e sysno.Entry, w [6]uintptr) Result {
	a0, a1, a2 := reg.RawArg[reg.A0](w[0]), reg.RawArg[reg.A1](w[1]), reg.RawArg[reg.A2](w[2])
	a3, a4, a5 := reg.RawArg[reg.A3](w[3]), reg.RawArg[reg.A4](w[4]), reg.RawArg[reg.A5](w[5])
	if e.Class == sysno.ReadOnly {
		switch e.Args {
		case 0:
			return sel.Syscall0Readonly(e.Nr)
		case 1:
			return sel.Syscall1Readonly(e.Nr, a0)
		case 2:
			return sel.Syscall2Readonly(e.Nr, a0, a1)
		case 3:
			return sel.Syscall3Readonly(e.Nr, a0, a1, a2)
		case 4:
			return sel.Syscall4Readonly(e.Nr, a0, a1, a2, a3)
		case 5:
			return sel.Syscall5Readonly(e.Nr, a0, a1, a2, a3, a4)
		}
		return sel.Syscall6Readonly(e.Nr, a0, a1, a2, a3, a4, a5)
	}
	switch e.Args {
	case 0:
		return sel.Syscall0(e.Nr)
	case 1:
		return sel.Syscall1(e.Nr, a0)
	case 2:
		return sel.Syscall2(e.Nr, a0, a1)
	case 3:
		return sel.Syscall3(e.Nr, a0, a1, a2)
	case 4:
		return sel.Syscall4(e.Nr, a0, a1, a2, a3)
	case 5:
		return sel.Syscall5(e.Nr, a0, a1, a2, a3, a4)
	}
	return sel.Syscall6(e.Nr, a0, a1, a2, a3, a4, a5)
}

// processArg lowers one dynamic argument to a register word. The second
// result is a value that must stay alive until the trap returns.
func processArg(arg any) (uintptr, any, error) {
	if arg == nil {
		return 0, nil, nil
	}
	// fast path for common types, avoids reflect
	switch v := arg.(type) {
	case reg.Arg:
		return v.Word(), v, nil
	case uintptr:
		return v, nil, nil
	case unsafe.Pointer:
		return uintptr(v), v, nil
	case []byte:
		p := reg.BufPtr(v)
		return p.Word(), v, nil
	case string:
		p, err := reg.CStr(v)
		if err != nil {
			return 0, nil, err
		}
		return p.Word(), p, nil
	case int:
		return reg.ToWord[uintptr](v), nil, nil
	case int32:
		return reg.ToWord[uintptr](v), nil, nil
	case int64:
		return reg.ToWord[uintptr](v), nil, nil
	case uint:
		return reg.ToWord[uintptr](v), nil, nil
	case uint32:
		return reg.ToWord[uintptr](v), nil, nil
	case uint64:
		return reg.ToWord[uintptr](v), nil, nil
	case bool:
		return reg.Bool(v).Word(), nil, nil
	}

	val := reflect.ValueOf(arg)
	switch val.Kind() {
	case reflect.Ptr, reflect.UnsafePointer:
		return val.Pointer(), arg, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reg.ToWord[uintptr](val.Int()), nil, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return reg.ToWord[uintptr](val.Uint()), nil, nil
	case reflect.Bool:
		return reg.Bool(val.Bool()).Word(), nil, nil
	}
	return 0, nil, fmt.Errorf("unsupported argument type %T", arg)
}
