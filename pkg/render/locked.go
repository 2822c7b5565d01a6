package render

import (
	"sync"

	"github.com/dd0wney/ramsey-tabu/pkg/tabu"
)

// Locked serializes announcements from concurrent searches so colorings are
// never interleaved.
type Locked struct {
	mu sync.Mutex
	p  *Printer
}

func NewLocked(p *Printer) *Locked {
	return &Locked{p: p}
}

func (l *Locked) Announce(imp tabu.Improvement) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.p.Announce(imp)
}
