//go:build linux

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/carved4/go-linuxcall/pkg/resolve"
)

// VDSOReport lists the exports of the vDSO mapped into this process.
type VDSOReport struct {
	Base    string           `json:"base" yaml:"base"`
	Size    int              `json:"size" yaml:"size"`
	Symbols []resolve.Symbol `json:"symbols" yaml:"symbols"`
}

func (v VDSOReport) Text(w io.Writer) error {
	fmt.Fprintf(w, "base %s size %d\n", v.Base, v.Size)
	for _, s := range v.Symbols {
		fmt.Fprintf(w, "%#016x %6d %s\n", s.Addr, s.Size, s.Name)
	}
	return nil
}

func NewVDSOCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "vdso",
		Short: "List vDSO symbols and their addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := resolve.VDSO()
			if err != nil {
				return err
			}
			return newFormatter(rootOpts, cmd).Print(VDSOReport{
				Base:    hex(img.Base),
				Size:    img.Size,
				Symbols: img.Symbols(),
			})
		},
	}
}
