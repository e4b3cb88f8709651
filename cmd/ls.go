//go:build linux

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/carved4/go-linuxcall/pkg/linuxcall"
)

// Listing is a directory enumerated through getdents64.
type Listing struct {
	Path    string             `json:"path" yaml:"path"`
	Entries []linuxcall.Dirent `json:"entries" yaml:"entries"`
}

func (l Listing) Text(w io.Writer) error {
	for _, e := range l.Entries {
		suffix := ""
		if e.IsDir() {
			suffix = "/"
		}
		fmt.Fprintf(w, "%10d %s%s\n", e.Ino, e.Name, suffix)
	}
	return nil
}

func NewLsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [dir]",
		Short: "List a directory with raw getdents64, including . and ..",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			l, err := list(path)
			if err != nil {
				return err
			}
			return newFormatter(rootOpts, cmd).Print(l)
		},
	}
}

func list(path string) (Listing, error) {
	fd, err := linuxcall.Openat(unix.AT_FDCWD, path, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return Listing{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer linuxcall.Close(fd)

	d, err := linuxcall.ReadFrom(fd)
	if err != nil {
		return Listing{}, err
	}
	defer d.Close()

	l := Listing{Path: path}
	for ent, err := range d.All() {
		if err != nil {
			return Listing{}, err
		}
		l.Entries = append(l.Entries, ent)
	}
	return l, nil
}
