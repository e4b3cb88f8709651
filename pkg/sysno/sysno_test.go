//go:build linux

package sysno

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestLookup(t *testing.T) {
	e, ok := Lookup("getpid")
	require.True(t, ok)
	assert.Equal(t, Getpid, e.Nr)
	assert.EqualValues(t, unix.SYS_GETPID, e.Nr)
	assert.Equal(t, ReadOnly, e.Class)

	_, ok = Lookup("no_such_call")
	assert.False(t, ok)
}

func TestTableUnique(t *testing.T) {
	seenName := map[string]bool{}
	seenNr := map[uintptr]string{}
	for _, e := range Table {
		assert.False(t, seenName[e.Name], "duplicate name %s", e.Name)
		seenName[e.Name] = true
		if prev, ok := seenNr[e.Nr.Raw()]; ok {
			t.Errorf("%s and %s share number %d", prev, e.Name, e.Nr)
		}
		seenNr[e.Nr.Raw()] = e.Name
		assert.LessOrEqual(t, e.Args, 6, e.Name)
	}
	assert.Len(t, Names(), len(Table))
}

// The classification tags are a contract the compiler cannot check. This
// pins the reviewed sets so a change shows up here.
func TestClassificationReview(t *testing.T) {
	readonly := map[string]bool{
		"getpid": true, "getppid": true, "gettid": true,
		"getpgid": true, "getsid": true,
	}
	noreturn := map[string]bool{"exit": true, "exit_group": true}

	for _, e := range Table {
		switch e.Class {
		case ReadOnly:
			assert.True(t, readonly[e.Name], "%s tagged readonly", e.Name)
		case NoReturn:
			assert.True(t, noreturn[e.Name], "%s tagged noreturn", e.Name)
			assert.Equal(t, 1, e.Args, e.Name)
		}
	}
}

func TestClassText(t *testing.T) {
	b, err := ReadOnly.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "readonly", string(b))
	assert.Equal(t, "unknown", Class(9).String())

	var c Class
	require.NoError(t, c.UnmarshalText([]byte("noreturn")))
	assert.Equal(t, NoReturn, c)
	assert.Error(t, c.UnmarshalText([]byte("sometimes")))
}
