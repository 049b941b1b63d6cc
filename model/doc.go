// Package model is the configuration layer on top of the fuzzy core: it
// decodes a declarative model document (domains, terms, rules) from YAML or
// TOML and builds the corresponding fuzzy.Domain values and rules.RuleBase.
//
// 🚀 Document shape (YAML):
//
//	name: spares
//	output: spares
//	defuzzifier: centroid
//	domains:
//	  - name: delay
//	    description: Mean delay m
//	    min: 0
//	    max: 1
//	    resolution: 0.001
//	    terms:
//	      - name: VS
//	        set: {shape: S, params: [0.0, 0.3]}
//	      - name: S
//	        set:
//	          and:
//	            - {shape: R, params: [0.1, 0.3]}
//	            - {shape: S, params: [0.3, 0.5]}
//	rules:
//	  - when: [delay.VS, servers.S, util.L]
//	    then: spares.VS
//
// Set nodes hold exactly one of:
//
//	shape + params   primitive: S, R, triangular, trapezoid, rectangle, constant
//	and / or         two or more operands, folded left
//	not              one operand
//	hedge + of       very, somewhat, extremely, plus, minus
//	ref              a term declared earlier in the same domain
//
// ⚙️ Usage:
//
//	m, err := model.Load("spares.yaml", model.WithResolution(0.01))
//	v, err := m.Infer(map[string]float64{"delay": 0.25, "servers": 0.5, "util": 0.7})
//
//	ref, err := model.Spares() // embedded reference configuration
//
// Errors carry github.com/cockroachdb/errors context and hints; branch on
// the sentinels below (or on fuzzy/rules sentinels) with errors.Is.
package model
