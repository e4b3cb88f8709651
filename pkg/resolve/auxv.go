//go:build linux

package resolve

import (
	"encoding/binary"
	"fmt"
	"os"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// auxiliary vector keys, see getauxval(3)
const (
	atNull        = 0
	atPagesz      = 6
	atSysinfo     = 32
	atSysinfoEhdr = 33
)

var (
	auxv     [][2]uintptr
	auxvErr  error
	auxvOnce sync.Once
)

// Auxv returns the process auxiliary vector as key/value pairs.
func Auxv() ([][2]uintptr, error) {
	auxvOnce.Do(func() {
		auxv, auxvErr = unix.Auxv()
		if auxvErr == nil && len(auxv) > 0 {
			return
		}
		// some build modes hide the runtime copy, the kernel one is always there
		auxv, auxvErr = readProcAuxv("/proc/self/auxv")
	})
	return auxv, auxvErr
}

// AuxValue returns the value stored under key, or 0 when absent.
func AuxValue(key uintptr) uintptr {
	vec, err := Auxv()
	if err != nil {
		return 0
	}
	for _, kv := range vec {
		if kv[0] == key {
			return kv[1]
		}
	}
	return 0
}

func readProcAuxv(path string) ([][2]uintptr, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read auxv: %w", err)
	}
	return parseAuxv(data)
}

func parseAuxv(data []byte) ([][2]uintptr, error) {
	const word = int(unsafe.Sizeof(uintptr(0)))
	if len(data)%(2*word) != 0 {
		return nil, fmt.Errorf("auxv length %d is not a multiple of %d", len(data), 2*word)
	}
	var out [][2]uintptr
	for i := 0; i+2*word <= len(data); i += 2 * word {
		k := readWord(data[i:])
		if k == atNull {
			break
		}
		out = append(out, [2]uintptr{k, readWord(data[i+word:])})
	}
	return out, nil
}

func readWord(b []byte) uintptr {
	if unsafe.Sizeof(uintptr(0)) == 8 {
		return uintptr(binary.NativeEndian.Uint64(b))
	}
	return uintptr(binary.NativeEndian.Uint32(b))
}
