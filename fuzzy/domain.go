// SPDX-License-Identifier: MIT

package fuzzy

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// MaxGridPoints bounds the sampling grid of a single domain. Every inference
// pass walks the output grid, so the cap also bounds the cost of a query.
const MaxGridPoints = math.MaxInt32

// Domain is a linguistic variable: a named numeric range [min,max] sampled
// every resolution units, owning a registry of named terms (Sets).
//
// Range and resolution are fixed at construction. The term registry grows
// through Attach and is guarded by an RWMutex, so attaching and looking up
// terms is safe across goroutines; in practice terms are attached once,
// before any inference runs.
type Domain struct {
	name       string
	min, max   float64
	resolution float64

	mu    sync.RWMutex    // guards terms
	terms map[string]*Set // term name → bound Set
}

// NewDomain creates a domain over [min,max] with the given sampling step.
//
// Errors:
//   - ErrEmptyName    — name is "".
//   - ErrInvalidRange — a bound or the resolution is NaN/±Inf, min ≥ max,
//     resolution ≤ 0, or the grid would hold more than MaxGridPoints points.
//
// Complexity: O(1).
func NewDomain(name string, min, max, resolution float64) (*Domain, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !finite(min) || !finite(max) || !finite(resolution) {
		return nil, fmt.Errorf("domain %q: non-finite bounds [%v,%v] res %v: %w", name, min, max, resolution, ErrInvalidRange)
	}
	if min >= max {
		return nil, fmt.Errorf("domain %q: min %v >= max %v: %w", name, min, max, ErrInvalidRange)
	}
	if resolution <= 0 {
		return nil, fmt.Errorf("domain %q: resolution %v <= 0: %w", name, resolution, ErrInvalidRange)
	}
	if n := math.Floor((max-min)/resolution+gridEpsilon) + 1; !finite(n) || n > MaxGridPoints {
		return nil, fmt.Errorf("domain %q: [%v,%v] at res %v needs %g points, cap %d: %w",
			name, min, max, resolution, n, MaxGridPoints, ErrInvalidRange)
	}

	return &Domain{
		name:       name,
		min:        min,
		max:        max,
		resolution: resolution,
		terms:      make(map[string]*Set),
	}, nil
}

// Name returns the domain name.
func (d *Domain) Name() string { return d.name }

// Min returns the lower bound of the range.
func (d *Domain) Min() float64 { return d.min }

// Max returns the upper bound of the range.
func (d *Domain) Max() float64 { return d.max }

// Resolution returns the sampling step.
func (d *Domain) Resolution() float64 { return d.resolution }

// String returns the domain name.
func (d *Domain) String() string { return d.name }

// Attach registers set under term and returns the bound Set that now
// represents the term. The returned pointer is a fresh node; it is the
// identity rule bases must reference.
//
// Implementation:
//   - Stage 1: validate the name and the operand.
//   - Stage 2: reject sets bound to another domain.
//   - Stage 3: under the write lock, reject duplicates and store the bound copy.
//
// Errors:
//   - ErrEmptyName      — term is "".
//   - ErrNilSet         — set is nil.
//   - ErrDomainMismatch — set is already bound to a different domain.
//   - ErrDuplicateTerm  — term is already attached.
func (d *Domain) Attach(term string, set *Set) (*Set, error) {
	if term == "" {
		return nil, fmt.Errorf("domain %q: %w", d.name, ErrEmptyName)
	}
	if set == nil {
		return nil, fmt.Errorf("domain %q term %q: %w", d.name, term, ErrNilSet)
	}
	if set.domain != nil && set.domain != d {
		return nil, fmt.Errorf("domain %q term %q: set belongs to %q: %w", d.name, term, set.domain.name, ErrDomainMismatch)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.terms[term]; exists {
		return nil, fmt.Errorf("domain %q term %q: %w", d.name, term, ErrDuplicateTerm)
	}
	bound := set.bind(d, term)
	d.terms[term] = bound

	return bound, nil
}

// Term returns the set attached under name.
// Errors: ErrUnknownTerm.
func (d *Domain) Term(name string) (*Set, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s, ok := d.terms[name]
	if !ok {
		return nil, fmt.Errorf("domain %q term %q: %w", d.name, name, ErrUnknownTerm)
	}

	return s, nil
}

// MustTerm is like Term but panics when the term is missing.
// Use it only for literal tables known to be consistent.
func (d *Domain) MustTerm(name string) *Set {
	s, err := d.Term(name)
	if err != nil {
		panic(err)
	}

	return s
}

// Terms returns the attached term names in ascending order.
func (d *Domain) Terms() []string {
	d.mu.RLock()
	names := make([]string, 0, len(d.terms))
	for name := range d.terms {
		names = append(names, name)
	}
	d.mu.RUnlock()
	sort.Strings(names)

	return names
}

// MembershipOf clamps x into [min,max] and evaluates the named term.
// Errors: ErrUnknownTerm.
func (d *Domain) MembershipOf(term string, x float64) (float64, error) {
	s, err := d.Term(term)
	if err != nil {
		return 0, err
	}

	return s.Membership(d.Clamp(x)), nil
}

// Clamp pins x into [min,max]. NaN is returned unchanged so callers can
// reject it explicitly.
func (d *Domain) Clamp(x float64) float64 {
	switch {
	case x < d.min:
		return d.min
	case x > d.max:
		return d.max
	default:
		return x
	}
}

// Grid returns the sampling grid of the domain.
// Complexity: O(1); the points are produced lazily.
func (d *Domain) Grid() Grid {
	return newGrid(d.min, d.max, d.resolution)
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
