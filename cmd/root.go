//go:build linux

package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the linuxcall command tree. LINUXCALL_FORMAT and
// LINUXCALL_VERBOSE set the flag defaults.
func NewRootCommand() *cobra.Command {
	// env caches lookups; reread so changes since the last command count
	env.Load()
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "linuxcall",
		Short:         "Issue Linux system calls directly",
		Long:          "Inspect the syscall backend of this build and issue catalog operations without libc.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", env.Bool("LINUXCALL_VERBOSE"), "debug logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", env.Str("LINUXCALL_FORMAT", "text"), "output format (text|json|yaml)")

	cmd.AddCommand(NewInfoCommand(opts))
	cmd.AddCommand(NewTableCommand(opts))
	cmd.AddCommand(NewCallCommand(opts))
	cmd.AddCommand(NewVDSOCommand(opts))
	cmd.AddCommand(NewLsCommand(opts))

	return cmd
}
