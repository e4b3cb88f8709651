//go:build linux

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/carved4/go-linuxcall/pkg/syscall"
)

// Tables is a list of register conventions.
type Tables []syscall.Convention

func (ts Tables) Text(w io.Writer) error {
	for i, c := range ts {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if _, err := io.WriteString(w, c.String()); err != nil {
			return err
		}
	}
	return nil
}

func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "table [arch...]",
		Short: "Print kernel register conventions",
		Long:  "Print the register assignment of each supported architecture, or of the named GOARCH values.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ts := Tables(syscall.Conventions)
			if len(args) > 0 {
				ts = ts[:0:0]
				for _, arch := range args {
					c, ok := syscall.LookupConvention(arch)
					if !ok {
						return fmt.Errorf("no convention for %q", arch)
					}
					ts = append(ts, c)
				}
			}
			return newFormatter(rootOpts, cmd).Print(ts)
		},
	}
}
