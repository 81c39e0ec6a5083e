package identifier

import (
	"fmt"
	"math/rand"
	"regexp"
	"sync"
	"time"
)

// Prefix is the company prefix carried by every order number.
const Prefix = "ZC"

// Pattern matches a well-formed order number, e.g. ZC-2026-483.
var Pattern = regexp.MustCompile(`^ZC-\d{4}-\d{3}$`)

// Generator produces order numbers of the form ZC-<year>-<suffix> where the
// suffix is a random number in [100, 999]. Suffixes are not sequential and
// not guaranteed unique; collisions are possible and accepted.
type Generator struct {
	now func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Generator with an explicit clock and random source so tests
// can supply deterministic values.
func New(now func() time.Time, src rand.Source) *Generator {
	return &Generator{
		now: now,
		rng: rand.New(src),
	}
}

// NewDefault creates a Generator backed by the wall clock and a
// time-seeded random source.
func NewDefault() *Generator {
	return New(time.Now, rand.NewSource(time.Now().UnixNano()))
}

// OrderNumber returns a fresh order number for the current calendar year.
func (g *Generator) OrderNumber() string {
	g.mu.Lock()
	suffix := 100 + g.rng.Intn(900)
	g.mu.Unlock()

	return fmt.Sprintf("%s-%d-%03d", Prefix, g.now().Year(), suffix)
}
