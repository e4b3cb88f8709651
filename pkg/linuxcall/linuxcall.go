//go:build linux

// Package linuxcall wraps common operations in typed Go signatures. Every
// wrapper is a single dispatch call; failures come back as errors.Errno.
package linuxcall

import (
	"unsafe"

	"golang.org/x/sys/unix"

	lc "github.com/carved4/go-linuxcall"
	"github.com/carved4/go-linuxcall/pkg/reg"
	"github.com/carved4/go-linuxcall/pkg/sysno"
)

func Getpid() int {
	n, _ := lc.Readonly0(sysno.Getpid).Int()
	return n
}

func Getppid() int {
	n, _ := lc.Readonly0(sysno.Getppid).Int()
	return n
}

func Gettid() int {
	n, _ := lc.Readonly0(sysno.Gettid).Int()
	return n
}

// Openat opens path relative to the directory dirfd, or to the working
// directory when dirfd is unix.AT_FDCWD.
func Openat(dirfd int, path string, flags int, mode uint32) (int, error) {
	p, err := reg.CStr(path)
	if err != nil {
		return -1, err
	}
	return lc.Call4(sysno.Openat, reg.Fd(dirfd), p, reg.Flags(flags), reg.Mode(mode)).Fd()
}

func Close(fd int) error {
	return lc.Call1(sysno.Close, reg.Fd(fd)).Err()
}

func Read(fd int, p []byte) (int, error) {
	return lc.Call3(sysno.Read, reg.Fd(fd), reg.BufPtr(p), reg.Size(len(p))).Int()
}

func Write(fd int, p []byte) (int, error) {
	return lc.Call3(sysno.Write, reg.Fd(fd), reg.BufPtr(p), reg.Size(len(p))).Int()
}

// Lseek repositions fd. On 32-bit machines the offset is limited to the
// range of a long.
func Lseek(fd int, offset int64, whence int) (int64, error) {
	n, err := lc.Call3(sysno.Lseek, reg.Fd(fd), reg.Int(offset), reg.Int(whence)).Int()
	return int64(n), err
}

// Getdents64 fills buf with linux_dirent64 records and returns the number
// of bytes used, 0 at the end of the directory.
func Getdents64(fd int, buf []byte) (int, error) {
	return lc.Call3(sysno.Getdents64, reg.Fd(fd), reg.BufPtr(buf), reg.Size(len(buf))).Int()
}

func Getcwd() (string, error) {
	buf := make([]byte, unix.PathMax)
	n, err := lc.Call2(sysno.Getcwd, reg.BufPtr(buf), reg.Size(len(buf))).Int()
	if err != nil {
		return "", err
	}
	return cstring(buf[:n]), nil
}

func Uname(u *unix.Utsname) error {
	return lc.Call1(sysno.Uname, reg.Ptr(unsafe.Pointer(u))).Err()
}

func SchedYield() error {
	return lc.Call0(sysno.SchedYield).Err()
}

func Getrandom(p []byte, flags int) (int, error) {
	return lc.Call3(sysno.Getrandom, reg.BufPtr(p), reg.Size(len(p)), reg.Flags(flags)).Int()
}

// ExitGroup terminates every thread of the process with code. Deferred
// calls do not run.
func ExitGroup(code int) {
	lc.NoReturn1(sysno.ExitGroup, reg.Int(code))
}

// SetThreadName names the calling thread. The kernel keeps the first 15
// bytes.
func SetThreadName(name string) error {
	p, err := reg.CStr(name)
	if err != nil {
		return err
	}
	return lc.Call5(sysno.Prctl, reg.Int(unix.PR_SET_NAME), p, reg.Word(0), reg.Word(0), reg.Word(0)).Err()
}

// ThreadName returns the name of the calling thread.
func ThreadName() (string, error) {
	var buf [16]byte
	r := lc.Call5(sysno.Prctl, reg.Int(unix.PR_GET_NAME), reg.BufPtr(buf[:]), reg.Word(0), reg.Word(0), reg.Word(0))
	if err := r.Err(); err != nil {
		return "", err
	}
	return cstring(buf[:]), nil
}
