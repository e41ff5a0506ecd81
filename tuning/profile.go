// File: tuning/profile.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Deployment tuning profiles. A profile captures the allocator knobs that
// vary between hosts (free-list classes and depth, arena backend) as a YAML
// document layered over built-in defaults.

package tuning

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/momentics/hioload-vec/api"
	"github.com/momentics/hioload-vec/pool"
)

// Arena backend selectors.
const (
	ArenaHeap     = "heap"
	ArenaMmap     = "mmap"
	ArenaHugePage = "hugepage"
)

// Profile tunes allocator behavior for a deployment.
type Profile struct {
	// SizeClasses lists recycler free-list classes in bytes, ascending.
	SizeClasses []int `yaml:"size_classes"`

	// RecyclerDepth bounds each per-class free list.
	RecyclerDepth int `yaml:"recycler_depth"`

	// Arena selects the raw-region backend: heap, mmap or hugepage.
	Arena string `yaml:"arena"`
}

// DefaultProfile mirrors the built-in allocator configuration.
func DefaultProfile() Profile {
	return Profile{
		SizeClasses:   pool.DefaultSizeClasses(),
		RecyclerDepth: pool.DefaultListDepth(),
		Arena:         ArenaHeap,
	}
}

// Load reads a YAML profile from path, layering it over the defaults.
// Fields absent from the document keep their default values.
func Load(path string) (Profile, error) {
	p := DefaultProfile()
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultProfile(), fmt.Errorf("tuning: read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return DefaultProfile(), fmt.Errorf("tuning: parse profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return DefaultProfile(), err
	}
	return p, nil
}

// Validate checks structural constraints on the profile.
func (p Profile) Validate() error {
	if p.RecyclerDepth < 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "tuning: recycler depth must not be negative").
			WithContext("depth", p.RecyclerDepth)
	}
	for _, c := range p.SizeClasses {
		if c <= 0 {
			return api.NewError(api.ErrCodeInvalidArgument, "tuning: size classes must be positive").
				WithContext("class", c)
		}
	}
	if !sort.IntsAreSorted(p.SizeClasses) {
		return api.NewError(api.ErrCodeInvalidArgument, "tuning: size classes must ascend")
	}
	switch p.Arena {
	case ArenaHeap, ArenaMmap, ArenaHugePage:
	default:
		return api.NewError(api.ErrCodeInvalidArgument, "tuning: unknown arena backend").
			WithContext("arena", p.Arena)
	}
	return nil
}

// Build assembles the allocator stack the profile describes: the selected
// arena backend wrapped in a size-classed recycler.
func (p Profile) Build() api.Allocator {
	var backing api.Allocator
	switch p.Arena {
	case ArenaMmap:
		backing = pool.NewArenaAllocator()
	case ArenaHugePage:
		backing = pool.NewHugePageArena()
	default:
		backing = &pool.HeapAllocator{}
	}
	return pool.NewRecyclerWith(backing, p.SizeClasses, p.RecyclerDepth)
}
