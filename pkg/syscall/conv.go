package syscall

import (
	"fmt"
	"runtime"
	"strings"
)

// Convention is the kernel's register assignment for one architecture.
// The tables below follow syscall(2) and are what the trap stubs in the
// asm_linux_*.s files implement; a change to either needs the other.
type Convention struct {
	Arch   string   `json:"arch" yaml:"arch"`
	Trap   string   `json:"trap" yaml:"trap"`
	Number string   `json:"number" yaml:"number"`
	Return string   `json:"return" yaml:"return"`
	Args   []string `json:"args" yaml:"args"`
	Helper string   `json:"helper,omitempty" yaml:"helper,omitempty"`
}

// ARCH     NR   RETURN  ARG0 ARG1 ARG2 ARG3 ARG4 ARG5 ARG6
// amd64    rax  rax     rdi  rsi  rdx  r10  r8   r9
// arm64    x8   x0      x0   x1   x2   x3   x4   x5
// riscv64  a7   a0      a0   a1   a2   a3   a4   a5
// arm      r7   r0      r0   r1   r2   r3   r4   r5   r6
// 386      eax  eax     ebx  ecx  edx  esi  edi  ebp
var Conventions = []Convention{
	{
		Arch:   "amd64",
		Trap:   "syscall",
		Number: "rax",
		Return: "rax",
		Args:   []string{"rdi", "rsi", "rdx", "r10", "r8", "r9"},
	},
	{
		Arch:   "arm64",
		Trap:   "svc #0",
		Number: "x8",
		Return: "x0",
		Args:   []string{"x0", "x1", "x2", "x3", "x4", "x5"},
	},
	{
		Arch:   "riscv64",
		Trap:   "ecall",
		Number: "a7",
		Return: "a0",
		Args:   []string{"a0", "a1", "a2", "a3", "a4", "a5"},
	},
	{
		Arch:   "arm",
		Trap:   "swi #0",
		Number: "r7",
		Return: "r0",
		Args:   []string{"r0", "r1", "r2", "r3", "r4", "r5", "r6"},
	},
	{
		Arch:   "386",
		Trap:   "int $0x80",
		Number: "eax",
		Return: "eax",
		Args:   []string{"ebx", "ecx", "edx", "esi", "edi", "ebp"},
		Helper: "call *__kernel_vsyscall",
	},
}

// LookupConvention returns the table for a GOARCH value.
func LookupConvention(arch string) (Convention, bool) {
	for _, c := range Conventions {
		if c.Arch == arch {
			return c, true
		}
	}
	return Convention{}, false
}

// Current returns the convention of the running architecture. The second
// result is false on architectures without a table, which use the outline
// backend.
func Current() (Convention, bool) {
	return LookupConvention(runtime.GOARCH)
}

// MaxArgs is the number of argument registers.
func (c Convention) MaxArgs() int { return len(c.Args) }

func (c Convention) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "arch: %s\n", c.Arch)
	fmt.Fprintf(&b, "trap: %s\n", c.Trap)
	if c.Helper != "" {
		fmt.Fprintf(&b, "helper: %s\n", c.Helper)
	}
	fmt.Fprintf(&b, "number: %s\n", c.Number)
	fmt.Fprintf(&b, "return: %s\n", c.Return)
	for i, r := range c.Args {
		fmt.Fprintf(&b, "arg%d: %s\n", i, r)
	}
	return b.String()
}
