//go:build linux

package linuxcall

import (
	"encoding/binary"
	"fmt"
	"io"
	"iter"

	"golang.org/x/sys/unix"
)

// linux_dirent64 layout
const (
	direntIno    = 0
	direntOff    = 8
	direntReclen = 16
	direntType   = 18
	direntName   = 19
)

// Dirent is one directory entry as the kernel reports it.
type Dirent struct {
	Ino  uint64 `json:"ino" yaml:"ino"`
	Off  int64  `json:"off" yaml:"off"`
	Type uint8  `json:"type" yaml:"type"`
	Name string `json:"name" yaml:"name"`
}

// IsDir reports whether the entry is a directory. File systems that do not
// fill d_type report DT_UNKNOWN and IsDir is false.
func (d Dirent) IsDir() bool { return d.Type == unix.DT_DIR }

// Dir enumerates a directory with getdents64. It owns its descriptor, so
// enumeration never moves the offset of the descriptor it was opened from.
// A Dir is not safe for concurrent use.
type Dir struct {
	fd   int
	buf  []byte
	off  int
	n    int
	done bool
}

// ReadFrom opens the directory referred to by fd for enumeration. fd may
// be unix.AT_FDCWD.
func ReadFrom(fd int) (*Dir, error) {
	nfd, err := Openat(fd, ".", unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open directory: %w", err)
	}
	return &Dir{fd: nfd, buf: make([]byte, 8192)}, nil
}

// Next returns the following entry, including "." and "..", or io.EOF
// once the directory is exhausted.
func (d *Dir) Next() (Dirent, error) {
	if d.fd < 0 {
		return Dirent{}, unix.EBADF
	}
	if d.off >= d.n {
		if d.done {
			return Dirent{}, io.EOF
		}
		n, err := Getdents64(d.fd, d.buf)
		if err != nil {
			return Dirent{}, fmt.Errorf("getdents64: %w", err)
		}
		if n == 0 {
			d.done = true
			return Dirent{}, io.EOF
		}
		d.off, d.n = 0, n
	}

	ent, size, err := parseDirent(d.buf[d.off:d.n])
	if err != nil {
		return Dirent{}, fmt.Errorf("dirent at %d: %w", d.off, err)
	}
	d.off += size
	return ent, nil
}

// All yields every remaining entry. Iteration stops after the first error.
func (d *Dir) All() iter.Seq2[Dirent, error] {
	return func(yield func(Dirent, error) bool) {
		for {
			ent, err := d.Next()
			if err == io.EOF {
				return
			}
			if !yield(ent, err) || err != nil {
				return
			}
		}
	}
}

// Close releases the descriptor. Closing twice is a no-op.
func (d *Dir) Close() error {
	if d.fd < 0 {
		return nil
	}
	err := Close(d.fd)
	d.fd = -1
	return err
}

// parseDirent decodes the record at the start of b and returns its length.
// unix.ParseDirent is not used because it drops "." and "..".
func parseDirent(b []byte) (Dirent, int, error) {
	if len(b) < direntName {
		return Dirent{}, 0, io.ErrUnexpectedEOF
	}
	reclen := int(binary.NativeEndian.Uint16(b[direntReclen:]))
	if reclen <= direntName || reclen > len(b) {
		return Dirent{}, 0, fmt.Errorf("bad record length %d", reclen)
	}
	return Dirent{
		Ino:  binary.NativeEndian.Uint64(b[direntIno:]),
		Off:  int64(binary.NativeEndian.Uint64(b[direntOff:])),
		Type: b[direntType],
		Name: cstring(b[direntName:reclen]),
	}, reclen, nil
}
