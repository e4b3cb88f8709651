//go:build linux

// Package sysno is the catalog of kernel operations known to linuxcall.
//
// Numbers come from golang.org/x/sys/unix, which carries one table per
// GOARCH, so every constant here resolves to the current architecture's
// value at compile time.
package sysno

import (
	"fmt"
	"sort"

	"golang.org/x/sys/unix"

	"github.com/carved4/go-linuxcall/pkg/reg"
)

// Class is the side-effect contract of a call shape.
type Class uint8

const (
	// Plain calls may have side effects and may block.
	Plain Class = iota
	// ReadOnly calls are pure queries: no observable write, never block.
	ReadOnly
	// NoReturn calls never give control back to the caller.
	NoReturn
)

func (c Class) String() string {
	switch c {
	case Plain:
		return "plain"
	case ReadOnly:
		return "readonly"
	case NoReturn:
		return "noreturn"
	}
	return "unknown"
}

func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Class) UnmarshalText(b []byte) error {
	for _, k := range []Class{Plain, ReadOnly, NoReturn} {
		if k.String() == string(b) {
			*c = k
			return nil
		}
	}
	return fmt.Errorf("sysno: unknown class %q", b)
}

const (
	Read         reg.Nr = unix.SYS_READ
	Write        reg.Nr = unix.SYS_WRITE
	Close        reg.Nr = unix.SYS_CLOSE
	Openat       reg.Nr = unix.SYS_OPENAT
	Lseek        reg.Nr = unix.SYS_LSEEK
	Fcntl        reg.Nr = unix.SYS_FCNTL
	Dup3         reg.Nr = unix.SYS_DUP3
	Getdents64   reg.Nr = unix.SYS_GETDENTS64
	Pipe2        reg.Nr = unix.SYS_PIPE2
	Getcwd       reg.Nr = unix.SYS_GETCWD
	Getpid       reg.Nr = unix.SYS_GETPID
	Getppid      reg.Nr = unix.SYS_GETPPID
	Gettid       reg.Nr = unix.SYS_GETTID
	Getpgid      reg.Nr = unix.SYS_GETPGID
	Getsid       reg.Nr = unix.SYS_GETSID
	Uname        reg.Nr = unix.SYS_UNAME
	SchedYield   reg.Nr = unix.SYS_SCHED_YIELD
	ClockGettime reg.Nr = unix.SYS_CLOCK_GETTIME
	Getrandom    reg.Nr = unix.SYS_GETRANDOM
	Kill         reg.Nr = unix.SYS_KILL
	Tgkill       reg.Nr = unix.SYS_TGKILL
	Munmap       reg.Nr = unix.SYS_MUNMAP
	Mprotect     reg.Nr = unix.SYS_MPROTECT
	Madvise      reg.Nr = unix.SYS_MADVISE
	Prctl        reg.Nr = unix.SYS_PRCTL
	Exit         reg.Nr = unix.SYS_EXIT
	ExitGroup    reg.Nr = unix.SYS_EXIT_GROUP
)

// Entry describes one catalog operation.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Nr    reg.Nr `json:"nr" yaml:"nr"`
	Args  int    `json:"args" yaml:"args"`
	Class Class  `json:"class" yaml:"class"`
}

// Table lists every operation with its reviewed classification. An entry
// is ReadOnly only if the kernel operation writes nothing the caller can
// observe and cannot block; a wrong tag lets callers misuse the raw call
// shapes, so changes here need review against the kernel source.
var Table = []Entry{
	{"read", Read, 3, Plain},
	{"write", Write, 3, Plain},
	{"close", Close, 1, Plain},
	{"openat", Openat, 4, Plain},
	{"lseek", Lseek, 3, Plain},
	{"fcntl", Fcntl, 3, Plain},
	{"dup3", Dup3, 3, Plain},
	{"getdents64", Getdents64, 3, Plain},
	{"pipe2", Pipe2, 2, Plain},
	{"getcwd", Getcwd, 2, Plain},
	{"getpid", Getpid, 0, ReadOnly},
	{"getppid", Getppid, 0, ReadOnly},
	{"gettid", Gettid, 0, ReadOnly},
	{"getpgid", Getpgid, 1, ReadOnly},
	{"getsid", Getsid, 1, ReadOnly},
	{"uname", Uname, 1, Plain},
	{"sched_yield", SchedYield, 0, Plain},
	{"clock_gettime", ClockGettime, 2, Plain},
	{"getrandom", Getrandom, 3, Plain},
	{"kill", Kill, 2, Plain},
	{"tgkill", Tgkill, 3, Plain},
	{"munmap", Munmap, 2, Plain},
	{"mprotect", Mprotect, 3, Plain},
	{"madvise", Madvise, 3, Plain},
	{"prctl", Prctl, 5, Plain},
	{"exit", Exit, 1, NoReturn},
	{"exit_group", ExitGroup, 1, NoReturn},
}

var byName = func() map[string]Entry {
	m := make(map[string]Entry, len(Table))
	for _, e := range Table {
		m[e.Name] = e
	}
	return m
}()

// Lookup resolves an operation by its kernel name.
func Lookup(name string) (Entry, bool) {
	e, ok := byName[name]
	return e, ok
}

// Names returns the catalog names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Table))
	for _, e := range Table {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}
