package ramsey

import (
	"math/rand/v2"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestGraphInvariants checks the laws the search relies on: exact deltas,
// indices that never drift from the coloring, predictive hashes, reversible
// moves and isomorphism-invariant scores.
func TestGraphInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20

	properties := gopter.NewProperties(parameters)

	for _, kind := range []Kind{Books, Wheels} {

		properties.Property(kind.String()+": delta equals the change in full count", prop.ForAll(
			func(seed uint64, n, colors int) bool {
				m, sizes, rng := randomSetup(seed, n, colors, kind)
				g, err := New(m, sizes, kind)
				if err != nil {
					return false
				}
				score := g.Score()
				for step := 0; step < 8; step++ {
					mv := randomMove(g, rng)
					delta := g.MoveDelta(mv)
					if err := g.Apply(mv); err != nil {
						return false
					}
					score += delta
					if g.Score() != score {
						return false
					}
				}
				return true
			},
			gen.UInt64(),
			gen.IntRange(4, 9),
			gen.IntRange(2, 3),
		))

		properties.Property(kind.String()+": every legal move has an exact delta", prop.ForAll(
			func(seed uint64, n int) bool {
				m, sizes, _ := randomSetup(seed, n, 2, kind)
				g, err := New(m, sizes, kind)
				if err != nil {
					return false
				}
				before := g.Score()
				for _, mv := range g.Catalog().Moves() {
					delta := g.MoveDelta(mv)
					if err := g.Apply(mv); err != nil {
						return false
					}
					after := g.Score()
					if err := g.Apply(mv.Inverse()); err != nil {
						return false
					}
					if after != before+delta {
						return false
					}
				}
				return true
			},
			gen.UInt64(),
			gen.IntRange(5, 8),
		))

		properties.Property(kind.String()+": move then inverse restores everything", prop.ForAll(
			func(seed uint64, n, colors int) bool {
				m, sizes, rng := randomSetup(seed, n, colors, kind)
				g, err := New(m, sizes, kind)
				if err != nil {
					return false
				}
				mv := randomMove(g, rng)
				score, hash := g.Score(), g.IdentityHash()

				if g.Apply(mv) != nil || g.Apply(mv.Inverse()) != nil {
					return false
				}
				return g.Coloring().Equal(m) &&
					g.IdentityHash() == hash &&
					g.Score() == score &&
					g.Verify() == nil
			},
			gen.UInt64(),
			gen.IntRange(4, 9),
			gen.IntRange(2, 3),
		))

		properties.Property(kind.String()+": score is invariant under vertex relabeling", prop.ForAll(
			func(seed uint64, n int) bool {
				m, sizes, rng := randomSetup(seed, n, 2, kind)
				g, err := New(m, sizes, kind)
				if err != nil {
					return false
				}
				permuted, err := m.Permute(rng.Perm(n))
				if err != nil {
					return false
				}
				h, err := New(permuted, sizes, kind)
				if err != nil {
					return false
				}
				return g.Score() == h.Score()
			},
			gen.UInt64(),
			gen.IntRange(4, 10),
		))
	}

	properties.Property("incremental indices equal freshly derived ones", prop.ForAll(
		func(seed uint64, n, colors, steps int) bool {
			m, sizes, rng := randomSetup(seed, n, colors, Books)
			g, err := New(m, sizes, Books)
			if err != nil {
				return false
			}
			for step := 0; step < steps; step++ {
				if g.Apply(randomMove(g, rng)) != nil {
					return false
				}
			}
			return g.Verify() == nil
		},
		gen.UInt64(),
		gen.IntRange(3, 12),
		gen.IntRange(2, 4),
		gen.IntRange(1, 60),
	))

	properties.Property("hash after a move equals the hash once applied", prop.ForAll(
		func(seed uint64, n, colors int) bool {
			m, sizes, _ := randomSetup(seed, n, colors, Books)
			g, err := New(m, sizes, Books)
			if err != nil {
				return false
			}
			rng := rand.New(rand.NewPCG(seed, 1))
			for step := 0; step < 10; step++ {
				mv := randomMove(g, rng)
				predicted := g.HashAfter(mv)
				if g.Apply(mv) != nil || g.IdentityHash() != predicted {
					return false
				}
			}
			fresh, err := New(g.Coloring(), sizes, Books)
			return err == nil && fresh.IdentityHash() == g.IdentityHash()
		},
		gen.UInt64(),
		gen.IntRange(3, 10),
		gen.IntRange(2, 3),
	))

	properties.TestingRun(t)
}
