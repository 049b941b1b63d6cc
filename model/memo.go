// SPDX-License-Identifier: MIT

package model

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru"
)

// Memo answers repeated queries from an LRU cache. Inference is a pure
// function of the inputs, so a cached answer is exact. Only successful
// answers are cached. Memo is safe for concurrent use.
type Memo struct {
	m      *Model
	inputs []string
	cache  *lru.Cache
}

// NewMemo wraps m with a cache holding up to size answers.
func NewMemo(m *Model, size int) (*Memo, error) {
	if m == nil {
		return nil, errors.AssertionFailedf("model: NewMemo called with a nil model")
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrapf(err, "memo size %d", size)
	}

	return &Memo{m: m, inputs: m.InputNames(), cache: cache}, nil
}

// Model returns the wrapped model.
func (c *Memo) Model() *Model { return c.m }

// Len returns the number of cached answers.
func (c *Memo) Len() int { return c.cache.Len() }

// Infer is Model.Infer with caching.
func (c *Memo) Infer(values map[string]float64) (float64, error) {
	key, ok := c.key(values)
	if ok {
		if v, hit := c.cache.Get(key); hit {
			return v.(float64), nil
		}
	}
	v, err := c.m.Infer(values)
	if err != nil {
		return 0, err
	}
	if ok {
		c.cache.Add(key, v)
	}

	return v, nil
}

// key encodes the input values in antecedent order as their bit patterns.
// It reports false for queries that are incomplete or carry keys outside
// the declared domains, so those always reach the model and its errors.
func (c *Memo) key(values map[string]float64) (string, bool) {
	var b strings.Builder
	for k, name := range c.inputs {
		v, ok := values[name]
		if !ok {
			return "", false
		}
		if k > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(math.Float64bits(v), 16))
	}
	for name := range values {
		if _, ok := c.m.domains[name]; !ok {
			return "", false
		}
	}

	return b.String(), true
}
