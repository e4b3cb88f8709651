//go:build linux

package main

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/spf13/cobra"

	lc "github.com/carved4/go-linuxcall"
)

// Info describes the backend and the kernel it talks to.
type Info struct {
	Backend       string `json:"backend" yaml:"backend"`
	GOARCH        string `json:"goarch" yaml:"goarch"`
	Trap          string `json:"trap,omitempty" yaml:"trap,omitempty"`
	Helper        string `json:"helper,omitempty" yaml:"helper,omitempty"`
	KernelVersion string `json:"kernel_version,omitempty" yaml:"kernel_version,omitempty"`
	KernelArch    string `json:"kernel_arch,omitempty" yaml:"kernel_arch,omitempty"`
}

func (i Info) Text(w io.Writer) error {
	fmt.Fprintf(w, "backend: %s\n", i.Backend)
	fmt.Fprintf(w, "goarch:  %s\n", i.GOARCH)
	if i.Trap != "" {
		fmt.Fprintf(w, "trap:    %s\n", i.Trap)
	}
	if i.Helper != "" {
		fmt.Fprintf(w, "helper:  %s\n", i.Helper)
	}
	fmt.Fprintf(w, "kernel:  %s %s\n", i.KernelVersion, i.KernelArch)
	return nil
}

func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the selected backend and the running kernel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newFormatter(rootOpts, cmd).Print(collectInfo())
		},
	}
}

func collectInfo() Info {
	info := Info{Backend: lc.Backend, GOARCH: runtime.GOARCH}
	if c, ok := lc.Convention(); ok {
		info.Trap = c.Trap
	}
	if h := lc.Helper(); h != 0 {
		info.Helper = hex(h)
	}
	var err error
	if info.KernelVersion, err = host.KernelVersion(); err != nil {
		slog.Debug("kernel version unavailable", "error", err)
	}
	if info.KernelArch, err = host.KernelArch(); err != nil {
		slog.Debug("kernel arch unavailable", "error", err)
	}
	return info
}
