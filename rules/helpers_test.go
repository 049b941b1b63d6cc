package rules_test

import (
	"testing"

	"github.com/katalvlaran/lvfuzzy/fuzzy"
	"github.com/katalvlaran/lvfuzzy/membership"
	"github.com/stretchr/testify/require"
)

// fixture is a three-input spares model reduced to the terms the tests use.
type fixture struct {
	delay, servers, util, spares *fuzzy.Domain

	delayVS, delayM    *fuzzy.Set
	serversS, serversL *fuzzy.Set
	utilL, utilH       *fuzzy.Set
	sparesVS, sparesS  *fuzzy.Set
	sparesM, sparesVL  *fuzzy.Set
}

// newFixture builds the domains with the given output resolution.
func newFixture(t testing.TB, outRes float64) *fixture {
	t.Helper()
	f := &fixture{
		delay:   mustDomain(t, "delay", 0.001),
		servers: mustDomain(t, "servers", 0.001),
		util:    mustDomain(t, "util", 0.001),
		spares:  mustDomain(t, "spares", outRes),
	}
	f.delayVS = mustAttach(t, f.delay, "VS", fuzzy.NewSet(membership.S(0.0, 0.3)))
	f.delayM = mustAttach(t, f.delay, "M", fuzzy.NewSet(membership.R(0.4, 0.7)))
	f.serversS = mustAttach(t, f.servers, "S", fuzzy.NewSet(membership.S(0.0, 0.35)))
	f.serversL = mustAttach(t, f.servers, "L", fuzzy.NewSet(membership.R(0.60, 1.0)))
	f.utilL = mustAttach(t, f.util, "L", fuzzy.NewSet(membership.S(0.0, 0.6)))
	f.utilH = mustAttach(t, f.util, "H", fuzzy.NewSet(membership.R(0.6, 1.0)))
	f.sparesVS = mustAttach(t, f.spares, "VS", fuzzy.NewSet(membership.S(0.0, 0.30)))
	f.sparesS = mustAttach(t, f.spares, "S", fuzzy.NewSet(membership.S(0.0, 0.40)))
	f.sparesM = mustAttach(t, f.spares, "M", fuzzy.Must(fuzzy.And(
		fuzzy.NewSet(membership.R(0.30, 0.50)),
		fuzzy.NewSet(membership.S(0.50, 0.70)),
	)))
	f.sparesVL = mustAttach(t, f.spares, "VL", fuzzy.NewSet(membership.R(0.70, 1.0)))

	return f
}

// inputs builds a query map in (delay, servers, util) order.
func (f *fixture) inputs(delay, servers, util float64) map[*fuzzy.Domain]float64 {
	return map[*fuzzy.Domain]float64{f.delay: delay, f.servers: servers, f.util: util}
}

func mustDomain(t testing.TB, name string, res float64) *fuzzy.Domain {
	t.Helper()
	d, err := fuzzy.NewDomain(name, 0, 1, res)
	require.NoError(t, err)

	return d
}

func mustAttach(t testing.TB, d *fuzzy.Domain, term string, s *fuzzy.Set) *fuzzy.Set {
	t.Helper()
	bound, err := d.Attach(term, s)
	require.NoError(t, err)

	return bound
}
