// SPDX-License-Identifier: MIT

package model

import (
	_ "embed"

	"github.com/cockroachdb/errors"
)

//go:embed spares.yaml
var sparesYAML []byte

// SparesQuery is the reference query of the spare-parts model.
var SparesQuery = map[string]float64{"delay": 0.25, "servers": 0.50, "util": 0.70}

// SparesDocument decodes the embedded spare-parts model. Each call returns
// a fresh Document that the caller may modify.
func SparesDocument() (*Document, error) {
	doc, err := Parse(sparesYAML, YAML)
	if err != nil {
		return nil, errors.Wrap(err, "embedded spares model")
	}

	return doc, nil
}

// Spares builds the embedded spare-parts model: three inputs on [0,1]
// (delay, servers, util), one output (spares) and 27 rules covering every
// antecedent combination.
func Spares(opts ...BuildOption) (*Model, error) {
	doc, err := SparesDocument()
	if err != nil {
		return nil, err
	}

	return Build(doc, opts...)
}
