package ramsey

import "github.com/dd0wney/ramsey-tabu/pkg/combinatorics"

// counter counts monochromatic forbidden structures on a state. Count is the
// full recount; Delta is the change Count would see if m were applied. Neither
// mutates the state, and for every legal move on every reachable coloring
//
//	Count(after m) == Count(before m) + Delta(before m, m)
type counter interface {
	Count(s *state) int64
	Delta(s *state, m Move) int64
}

// newCounter resolves kind once; the graph stores the result and never
// dispatches on kind again.
func newCounter(kind Kind, n int) (counter, error) {
	binom := combinatorics.NewBinomialCache(n)
	switch kind {
	case Books:
		return &bookCounter{binom: binom}, nil
	case Wheels:
		return &wheelCounter{}, nil
	default:
		return nil, &ConfigError{Op: "New", Field: "structure", Value: int(kind), Cause: ErrUnknownKind}
	}
}
