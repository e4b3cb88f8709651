//go:build linux

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	lc "github.com/carved4/go-linuxcall"
	"github.com/carved4/go-linuxcall/pkg/sysno"
)

// CallResult is the outcome of one invoked operation.
type CallResult struct {
	Name    string      `json:"name" yaml:"name"`
	Nr      uintptr     `json:"nr" yaml:"nr"`
	Class   sysno.Class `json:"class" yaml:"class"`
	Raw     string      `json:"raw" yaml:"raw"`
	Value   uintptr     `json:"value" yaml:"value"`
	Errno   uint16      `json:"errno,omitempty" yaml:"errno,omitempty"`
	Message string      `json:"error,omitempty" yaml:"error,omitempty"`
}

func (r CallResult) Text(w io.Writer) error {
	fmt.Fprintf(w, "%s (nr %d, %s) = %s\n", r.Name, r.Nr, r.Class, r.Raw)
	if r.Errno != 0 {
		fmt.Fprintf(w, "error: %s\n", r.Message)
		return nil
	}
	fmt.Fprintf(w, "value: %d\n", r.Value)
	return nil
}

func NewCallCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call <name> [args...]",
		Short: "Invoke a catalog operation",
		Long: `Invoke a catalog operation by name.

Integer arguments may be decimal, 0x hex or negative; anything else is
passed as a NUL terminated string. Operations that never return are
refused.

Example:
  linuxcall call openat -100 go.mod 0`,
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return sysno.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := invoke(args[0], args[1:])
			if err != nil {
				return err
			}
			return newFormatter(rootOpts, cmd).Print(res)
		},
	}
	// stop flag parsing at the operation name so -100 stays an argument
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func invoke(name string, raw []string) (CallResult, error) {
	args := make([]any, len(raw))
	for i, s := range raw {
		args[i] = parseArg(s)
	}
	slog.Debug("invoke", "name", name, "args", args)

	r, err := lc.Invoke(name, args...)
	if err != nil {
		return CallResult{}, err
	}
	e, _ := sysno.Lookup(name)
	v, errno := r.Decode()
	res := CallResult{
		Name:  name,
		Nr:    e.Nr.Raw(),
		Class: e.Class,
		Raw:   hex(r.Raw()),
		Value: v,
		Errno: uint16(errno),
	}
	if errno != 0 {
		res.Message = errno.Error()
	}
	return res, nil
}

// parseArg reads s as an integer when it looks like one.
func parseArg(s string) any {
	if strings.HasPrefix(s, "-") {
		if n, err := strconv.ParseInt(s, 0, 64); err == nil {
			return int(n)
		}
	}
	if n, err := strconv.ParseUint(s, 0, 64); err == nil {
		return uintptr(n)
	}
	return s
}
