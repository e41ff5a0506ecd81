// File: cmd/vecload/main.go
// Package main
// Load driver for the array and allocator stack. Runs randomized edit
// workloads across workers, exercising growth, recycling and off-heap
// storage, and reports allocator accounting at the end.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/momentics/hioload-vec/api"
	"github.com/momentics/hioload-vec/control"
	"github.com/momentics/hioload-vec/pool"
	"github.com/momentics/hioload-vec/tuning"
	"github.com/momentics/hioload-vec/vec"
)

const version = "1.0.0"

var (
	profilePath string
	workers     int
	opsPerWork  int
	seed        int64
	debug       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vecload",
		Short: "Randomized load driver for hioload-vec arrays and allocators",
		Long: `vecload drives the growable array stack with randomized edit workloads:
per-worker scratch arrays cycle through an object pool, a shared array takes
concurrent appends behind a guard, and storage flows through the profiled
allocator stack (recycler over heap or OS-mapped arena).

Use it to validate a tuning profile against production-shaped churn before
rolling it out.`,
		Version: version,
		RunE:    runLoad,
	}

	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "tuning profile (YAML), defaults to built-ins")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", runtime.GOMAXPROCS(0), "concurrent workers")
	rootCmd.PersistentFlags().IntVar(&opsPerWork, "ops", 100000, "operations per worker")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "workload seed")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	viper.SetEnvPrefix("VECLOAD")
	viper.AutomaticEnv()
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
	viper.BindPFlag("ops", rootCmd.PersistentFlags().Lookup("ops"))

	rootCmd.AddCommand(profileCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// profileCmd validates a tuning profile and prints the resolved settings.
func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile [path]",
		Short: "Validate a tuning profile and print the resolved settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tuning.DefaultProfile()
			if len(args) == 1 {
				var err error
				if p, err = tuning.Load(args[0]); err != nil {
					return err
				}
			}
			fmt.Printf("arena:          %s\n", p.Arena)
			fmt.Printf("recycler depth: %d\n", p.RecyclerDepth)
			fmt.Printf("size classes:   %v\n", p.SizeClasses)
			return nil
		},
	}
}

func runLoad(cmd *cobra.Command, args []string) error {
	logger, err := buildLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()
	control.SetLogger(logger)

	profile := tuning.DefaultProfile()
	if profilePath != "" {
		if profile, err = tuning.Load(profilePath); err != nil {
			return err
		}
	}
	alloc := profile.Build()

	workers = viper.GetInt("workers")
	opsPerWork = viper.GetInt("ops")
	logger.Info("starting load",
		zap.Int("workers", workers),
		zap.Int("ops_per_worker", opsPerWork),
		zap.Int64("seed", seed),
		zap.String("arena", profile.Arena))

	// Scratch arrays cycle through an object pool between workers.
	scratch := pool.NewSyncPool(func() *vec.Array[uint64] {
		return vec.NewWithAllocator[uint64](alloc)
	})

	// All workers append into one shared array behind a mutex guard.
	shared := vec.NewGuarded[uint64](nil, vec.NewWithAllocator[uint64](alloc))

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			worker(id, scratch, shared)
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	total := workers * opsPerWork
	logger.Info("load complete",
		zap.Int("total_ops", total),
		zap.Duration("elapsed", elapsed),
		zap.Float64("ops_per_sec", float64(total)/elapsed.Seconds()),
		zap.Int("shared_len", shared.Len()))

	probes := control.NewDebugProbes()
	probes.RegisterProbe("shared.len", func() any { return shared.Len() })
	probes.RegisterProbe("allocator.stats", func() any { return alloc.Stats() })
	probes.LogState()

	shared.Release()
	if r, ok := alloc.(*pool.Recycler); ok {
		logger.Info("recycler", zap.Float64("hit_rate", r.HitRate()))
		r.Drain()
	}

	control.DefaultMetrics().CollectAllocator("vecload", alloc)
	for k, v := range control.DefaultMetrics().GetSnapshot() {
		fmt.Printf("%-26s %v\n", k, v)
	}

	if s := alloc.Stats(); s.BytesInUse != 0 {
		return api.NewError(api.ErrCodeInternal, "storage leaked").
			WithContext("bytes_in_use", s.BytesInUse)
	}
	return nil
}

// worker churns a pooled scratch array through the edit surface and lands a
// slice of results in the shared array.
func worker(id int, scratch *pool.SyncPool[*vec.Array[uint64]], shared *vec.Guarded[uint64]) {
	rng := rand.New(rand.NewSource(seed + int64(id)))

	a := scratch.Get()
	a.Clear()
	defer scratch.Put(a)

	for op := 0; op < opsPerWork; op++ {
		switch rng.Intn(10) {
		case 0, 1, 2, 3: // append dominates real workloads
			a.Append(rng.Uint64())
		case 4:
			a.Insert(rng.Intn(a.Len()+1), rng.Uint64())
		case 5:
			if n := a.Len(); n > 0 {
				at := rng.Intn(n)
				a.RemoveRange(at, rng.Intn(n-at+1))
			}
		case 6:
			if n := a.Len(); n > 1 {
				a.Move(rng.Intn(n), rng.Intn(n))
			}
		case 7:
			if n := a.Len(); n > 1 {
				a.Swap(rng.Intn(n), rng.Intn(n))
			}
		case 8:
			if a.Len() > 0 {
				shared.Append(a.At(rng.Intn(a.Len())))
			}
		case 9:
			if rng.Intn(100) == 0 {
				a.Clear()
			}
		}
	}
	a.Clear()
	a.Compact()
}

func buildLogger() (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
