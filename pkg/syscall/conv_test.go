package syscall

import (
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConventionGolden(t *testing.T) {
	g := goldie.New(t)
	for _, c := range Conventions {
		t.Run(c.Arch, func(t *testing.T) {
			g.Assert(t, c.Arch, []byte(c.String()))
		})
	}
}

func TestLookupConvention(t *testing.T) {
	c, ok := LookupConvention("arm")
	require.True(t, ok)
	assert.Equal(t, 7, c.MaxArgs())
	assert.Equal(t, "r6", c.Args[6])

	c, ok = LookupConvention("amd64")
	require.True(t, ok)
	assert.Equal(t, "r10", c.Args[3], "fourth argument is not in rcx")

	_, ok = LookupConvention("s390x")
	assert.False(t, ok)
}

func TestCurrent(t *testing.T) {
	c, ok := Current()
	switch runtime.GOARCH {
	case "amd64", "arm64", "riscv64", "arm", "386":
		require.True(t, ok)
		assert.Equal(t, runtime.GOARCH, c.Arch)
	default:
		assert.False(t, ok)
		assert.Equal(t, "outline", Name)
	}
}

func TestConventionShapes(t *testing.T) {
	for _, c := range Conventions {
		assert.GreaterOrEqual(t, c.MaxArgs(), 6, c.Arch)
		assert.NotEmpty(t, c.Trap, c.Arch)
		seen := map[string]bool{}
		for _, r := range c.Args {
			assert.False(t, seen[r], "%s: %s used twice", c.Arch, r)
			seen[r] = true
		}
	}
}
