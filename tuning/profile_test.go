// File: tuning/profile_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package tuning_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-vec/api"
	"github.com/momentics/hioload-vec/pool"
	"github.com/momentics/hioload-vec/tuning"
)

func writeProfile(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestDefaultProfileMirrorsBuiltins(t *testing.T) {
	p := tuning.DefaultProfile()
	assert.Equal(t, pool.DefaultSizeClasses(), p.SizeClasses)
	assert.Equal(t, pool.DefaultListDepth(), p.RecyclerDepth)
	assert.Equal(t, tuning.ArenaHeap, p.Arena)
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := writeProfile(t, "recycler_depth: 16\narena: mmap\n")

	p, err := tuning.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, p.RecyclerDepth)
	assert.Equal(t, tuning.ArenaMmap, p.Arena)
	assert.Equal(t, pool.DefaultSizeClasses(), p.SizeClasses, "absent fields keep defaults")
}

func TestLoadFullProfile(t *testing.T) {
	path := writeProfile(t, `
size_classes: [128, 512, 4096]
recycler_depth: 64
arena: hugepage
`)

	p, err := tuning.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{128, 512, 4096}, p.SizeClasses)
	assert.Equal(t, 64, p.RecyclerDepth)
	assert.Equal(t, tuning.ArenaHugePage, p.Arena)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	p, err := tuning.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, tuning.DefaultProfile(), p)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeProfile(t, "size_classes: [64,\n")
	_, err := tuning.Load(path)
	assert.Error(t, err)
}

func TestValidateRejections(t *testing.T) {
	base := tuning.DefaultProfile()

	cases := []struct {
		name   string
		mutate func(*tuning.Profile)
	}{
		{"negative depth", func(p *tuning.Profile) { p.RecyclerDepth = -1 }},
		{"zero class", func(p *tuning.Profile) { p.SizeClasses = []int{0, 64} }},
		{"unsorted classes", func(p *tuning.Profile) { p.SizeClasses = []int{256, 64} }},
		{"unknown arena", func(p *tuning.Profile) { p.Arena = "nvram" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := base
			tc.mutate(&p)
			err := p.Validate()
			require.Error(t, err)

			var apiErr *api.Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, api.ErrCodeInvalidArgument, apiErr.Code)
		})
	}
}

func TestBuildHonorsClassTable(t *testing.T) {
	p := tuning.Profile{
		SizeClasses:   []int{128, 1024},
		RecyclerDepth: 8,
		Arena:         tuning.ArenaHeap,
	}
	require.NoError(t, p.Validate())

	alloc := p.Build()
	b := alloc.Allocate(1)
	assert.Equal(t, 128, len(b), "smallest profile class serves small requests")
	alloc.Free(b)
}
