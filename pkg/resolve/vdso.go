//go:build linux

package resolve

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"unsafe"

	"github.com/Binject/debug/elf"
)

// ErrNoVDSO is returned when the kernel mapped no vDSO into the process.
var ErrNoVDSO = errors.New("resolve: no vDSO mapped")

// Symbol is a function exported by the vDSO, at its runtime address.
type Symbol struct {
	Name string  `json:"name" yaml:"name"`
	Addr uintptr `json:"addr" yaml:"addr"`
	Size uint64  `json:"size" yaml:"size"`
}

// Image is the parsed in-memory vDSO.
type Image struct {
	Base       uintptr
	Size       int
	loadOffset uintptr
	symbols    []Symbol
}

type memoryReaderAt struct {
	data []byte
}

func (m *memoryReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

var (
	vdso     *Image
	vdsoErr  error
	vdsoOnce sync.Once
)

// VDSO locates and parses the vDSO once per process.
func VDSO() (*Image, error) {
	vdsoOnce.Do(func() {
		base := AuxValue(atSysinfoEhdr)
		if base == 0 {
			vdsoErr = ErrNoVDSO
			return
		}
		vdso, vdsoErr = parseImage(base)
		if vdsoErr == nil {
			slog.Debug("vdso parsed", "base", fmt.Sprintf("%#x", base), "size", vdso.Size, "symbols", len(vdso.symbols))
		}
	})
	return vdso, vdsoErr
}

// mapped views kernel-mapped memory at addr. The vDSO is outside the Go
// heap and never moves, so holding its address as an integer is safe.
func mapped(addr uintptr, n int) []byte {
	return unsafe.Slice((*byte)(*(*unsafe.Pointer)(unsafe.Pointer(&addr))), n)
}

func parseImage(base uintptr) (*Image, error) {
	size, err := imageSize(mapped(base, elfHeaderMax))
	if err != nil {
		return nil, err
	}
	data := mapped(base, size)
	img, err := parseELF(data)
	if err != nil {
		return nil, err
	}
	img.Base = base
	img.loadOffset += base
	for i := range img.symbols {
		img.symbols[i].Addr += base
	}
	return img, nil
}

// parseELF reads the dynamic symbols of an image. Addresses in the result
// are relative to the start of data.
func parseELF(data []byte) (*Image, error) {
	f, err := elf.NewFile(&memoryReaderAt{data: data})
	if err != nil {
		return nil, fmt.Errorf("parse vdso: %w", err)
	}
	defer f.Close()

	img := &Image{Size: len(data)}
	found := false
	for _, p := range f.Progs {
		if p.Type == elf.PT_LOAD {
			img.loadOffset = uintptr(p.Off) - uintptr(p.Vaddr)
			found = true
			break
		}
	}
	if !found {
		return nil, errors.New("parse vdso: no PT_LOAD segment")
	}

	syms, err := f.DynamicSymbols()
	if err != nil {
		return nil, fmt.Errorf("vdso symbols: %w", err)
	}
	for _, s := range syms {
		if s.Value == 0 || s.Section == elf.SHN_UNDEF {
			continue
		}
		if t := elf.ST_TYPE(s.Info); t != elf.STT_FUNC && t != elf.STT_NOTYPE {
			continue
		}
		img.symbols = append(img.symbols, Symbol{
			Name: s.Name,
			Addr: img.loadOffset + uintptr(s.Value),
			Size: s.Size,
		})
	}
	sort.Slice(img.symbols, func(i, j int) bool { return img.symbols[i].Name < img.symbols[j].Name })
	return img, nil
}

// Symbols returns the exported functions sorted by name.
func (img *Image) Symbols() []Symbol {
	return img.symbols
}

// Lookup returns the runtime address of name, or 0.
func (img *Image) Lookup(name string) uintptr {
	i := sort.Search(len(img.symbols), func(i int) bool { return img.symbols[i].Name >= name })
	if i < len(img.symbols) && img.symbols[i].Name == name {
		return img.symbols[i].Addr
	}
	return 0
}

// offsets into the ELF file header
const (
	elfHeaderMax = 64

	eiClass     = 4
	eiData      = 5
	elfClass32  = 1
	elfClass64  = 2
	elfData2LSB = 1
)

// imageSize derives the file size of an ELF image from its header: the end
// of whichever header table lies last. The kernel places the section
// headers at the end of the vDSO.
func imageSize(hdr []byte) (int, error) {
	if len(hdr) < 52 || string(hdr[:4]) != elf.ELFMAG {
		return 0, errors.New("parse vdso: bad ELF magic")
	}
	if hdr[eiData] != elfData2LSB {
		return 0, errors.New("parse vdso: big-endian image")
	}
	le := binary.LittleEndian
	var phoff, shoff uint64
	var phentsize, phnum, shentsize, shnum, ehsize uint16
	switch hdr[eiClass] {
	case elfClass64:
		if len(hdr) < 64 {
			return 0, errors.New("parse vdso: short header")
		}
		phoff = le.Uint64(hdr[0x20:])
		shoff = le.Uint64(hdr[0x28:])
		ehsize = le.Uint16(hdr[0x34:])
		phentsize = le.Uint16(hdr[0x36:])
		phnum = le.Uint16(hdr[0x38:])
		shentsize = le.Uint16(hdr[0x3a:])
		shnum = le.Uint16(hdr[0x3c:])
	case elfClass32:
		phoff = uint64(le.Uint32(hdr[0x1c:]))
		shoff = uint64(le.Uint32(hdr[0x20:]))
		ehsize = le.Uint16(hdr[0x28:])
		phentsize = le.Uint16(hdr[0x2a:])
		phnum = le.Uint16(hdr[0x2c:])
		shentsize = le.Uint16(hdr[0x2e:])
		shnum = le.Uint16(hdr[0x30:])
	default:
		return 0, fmt.Errorf("parse vdso: unknown ELF class %d", hdr[eiClass])
	}
	size := uint64(ehsize)
	if end := phoff + uint64(phnum)*uint64(phentsize); end > size {
		size = end
	}
	if end := shoff + uint64(shnum)*uint64(shentsize); end > size {
		size = end
	}
	if size > 1<<20 {
		return 0, fmt.Errorf("parse vdso: implausible size %d", size)
	}
	return int(size), nil
}
