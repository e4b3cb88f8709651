//go:build linux

package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	lc "github.com/carved4/go-linuxcall"
	"github.com/carved4/go-linuxcall/pkg/linuxcall"
	"github.com/carved4/go-linuxcall/pkg/reg"
	"github.com/carved4/go-linuxcall/pkg/sysno"
)

var failures int

func main() {
	fmt.Printf("=== Testing linuxcall (%s backend) ===\n", lc.Backend)

	// every call shape against the libc-free reference
	testGetpidArities()
	testGettid()

	// directory scenario, run from the module root
	testOpenat()
	testEnumerate()

	// error band
	testErrorHandling()

	// stability
	testMultipleCallsStability()

	fmt.Printf("\n=== All tests completed, %d failed ===\n", failures)
	linuxcall.ExitGroup(failures)
}

func pass(format string, args ...any) {
	fmt.Printf("PASSED: "+format+"\n", args...)
}

func fail(format string, args ...any) {
	failures++
	fmt.Printf("FAILED: "+format+"\n", args...)
}

func testGetpidArities() {
	fmt.Print("Testing getpid at every arity... ")
	want := uintptr(unix.Getpid())
	j := reg.Word(0)
	got := []lc.Result{
		lc.Call0(sysno.Getpid),
		lc.Call1(sysno.Getpid, j),
		lc.Call2(sysno.Getpid, j, j),
		lc.Call3(sysno.Getpid, j, j, j),
		lc.Call4(sysno.Getpid, j, j, j, j),
		lc.Call5(sysno.Getpid, j, j, j, j, j),
		lc.Call6(sysno.Getpid, j, j, j, j, j, j),
		lc.Readonly0(sysno.Getpid),
		lc.Readonly1(sysno.Getpid, j),
		lc.Readonly2(sysno.Getpid, j, j),
		lc.Readonly3(sysno.Getpid, j, j, j),
		lc.Readonly4(sysno.Getpid, j, j, j, j),
		lc.Readonly5(sysno.Getpid, j, j, j, j, j),
		lc.Readonly6(sysno.Getpid, j, j, j, j, j, j),
	}
	for i, r := range got {
		if r.Raw() != want {
			fail("shape %d returned %#x, expected %d", i, r.Raw(), want)
			return
		}
	}
	pass("PID = %d across %d shapes", want, len(got))
}

func testGettid() {
	fmt.Print("Testing gettid... ")
	if tid := linuxcall.Gettid(); tid <= 0 {
		fail("gettid returned %d", tid)
		return
	}
	pass("TID = %d", linuxcall.Gettid())
}

func testOpenat() {
	fmt.Print("Testing openat(go.mod)... ")
	dirfd, err := linuxcall.Openat(unix.AT_FDCWD, ".", unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		fail("open .: %v", err)
		return
	}
	defer linuxcall.Close(dirfd)

	fd, err := linuxcall.Openat(dirfd, "go.mod", unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		fail("open go.mod: %v (run from the module root)", err)
		return
	}
	defer linuxcall.Close(fd)

	buf := make([]byte, 6)
	n, err := linuxcall.Read(fd, buf)
	if err != nil || string(buf[:n]) != "module" {
		fail("read go.mod: %q, %v", buf[:n], err)
		return
	}
	pass("fd = %d", fd)
}

func testEnumerate() {
	fmt.Print("Testing getdents64 enumeration... ")
	d, err := linuxcall.ReadFrom(unix.AT_FDCWD)
	if err != nil {
		fail("%v", err)
		return
	}
	defer d.Close()

	seen := map[string]int{}
	for ent, err := range d.All() {
		if err != nil {
			fail("%v", err)
			return
		}
		seen[ent.Name]++
	}
	for _, name := range []string{".", "..", "go.mod"} {
		if seen[name] != 1 {
			fail("%s seen %d times", name, seen[name])
			return
		}
	}
	pass("%d entries", len(seen))
}

func testErrorHandling() {
	fmt.Print("Testing error band... ")
	r := lc.Call1(sysno.Close, reg.Fd(-1))
	if _, e := r.Decode(); e != lc.Errno(unix.EBADF) {
		fail("close(-1) decoded errno %d, raw %#x", e, r.Raw())
		return
	}
	if _, err := linuxcall.Openat(unix.AT_FDCWD, "/nonexistent/path", unix.O_RDONLY, 0); err == nil {
		fail("openat of a missing path succeeded")
		return
	}
	pass("close(-1) = %v", r.Err())
}

func testMultipleCallsStability() {
	fmt.Print("Testing 10000 consecutive calls... ")
	pid := os.Getpid()
	for i := range 10000 {
		if got := linuxcall.Getpid(); got != pid {
			fail("call %d returned %d", i, got)
			return
		}
	}
	pass("stable")
}
