package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ajwerner/avltree"
)

var errInvariant = errors.New("tree invariant violated")

const (
	// Number of operations between checks for cancellation.
	cancelCheckInterval = 4096
	// Number of present keys inserted again to check they are rejected.
	duplicateProbes = 1024
)

type benchOptions struct {
	N        int
	Seed     uint64
	Removals float64
}

func newBenchCmd(config *baseConfiguration) *cobra.Command {
	opts := &benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a random workload against a tree and verify it",
		Long: `Inserts N distinct keys in random order, checks that inserting them again
is rejected, removes a random fraction of them and verifies the order and
balance of the tree after each phase.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.Context(), config.logger, opts)
		},
	}
	cmd.Flags().IntVar(&opts.N, "n", 100_000, "number of distinct keys to insert")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 1, "seed of the random source")
	cmd.Flags().Float64Var(&opts.Removals, "removals", 0.5, "fraction of the keys to remove again")
	return cmd
}

func runBench(ctx context.Context, log zerolog.Logger, opts *benchOptions) error {
	if opts.N < 0 {
		return fmt.Errorf("invalid key count %d", opts.N)
	}
	if opts.Removals < 0 || opts.Removals > 1 {
		return fmt.Errorf("removal fraction %v is not in [0, 1]", opts.Removals)
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	keys := rng.Perm(opts.N)
	m := avltree.New[int, int](cmp.Compare[int])

	start := time.Now()
	for i, k := range keys {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if !m.Insert(k, i) {
			return fmt.Errorf("%w: key %d rejected as a duplicate", errInvariant, k)
		}
	}
	log.Info().Int("keys", m.Len()).Int("height", m.Height()).
		Dur("elapsed", time.Since(start)).Msg("inserted")
	if err := checkMap(m); err != nil {
		return err
	}

	for _, k := range keys[:min(len(keys), duplicateProbes)] {
		if m.Insert(k, -1) {
			return fmt.Errorf("%w: duplicate key %d accepted", errInvariant, k)
		}
	}

	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	removed := keys[:int(float64(len(keys))*opts.Removals)]
	start = time.Now()
	for i, k := range removed {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if _, ok := m.Delete(k); !ok {
			return fmt.Errorf("%w: key %d not found for removal", errInvariant, k)
		}
	}
	log.Info().Int("removed", len(removed)).Int("keys", m.Len()).Int("height", m.Height()).
		Dur("elapsed", time.Since(start)).Msg("removed")
	if err := checkMap(m); err != nil {
		return err
	}
	for _, k := range removed {
		if m.Has(k) {
			return fmt.Errorf("%w: removed key %d still present", errInvariant, k)
		}
	}

	log.Info().Int("keys", m.Len()).Int("height", m.Height()).
		Int("bound", maxHeight(m.Len())).Msg("bench done")
	return nil
}

func checkMap(m *avltree.Map[int, int]) error {
	if err := m.Check(); err != nil {
		return fmt.Errorf("%w: %w", errInvariant, err)
	}
	if h, bound := m.Height(), maxHeight(m.Len()); h > bound {
		return fmt.Errorf("%w: height %d exceeds %d for %d keys", errInvariant, h, bound, m.Len())
	}
	return nil
}

// maxHeight is the height an AVL tree of n nodes never exceeds.
func maxHeight(n int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(n+2))))
}
