// SPDX-License-Identifier: MIT

package model

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Document is the declarative form of a fuzzy model.
type Document struct {
	Name        string       `yaml:"name,omitempty" toml:"name,omitempty"`
	Output      string       `yaml:"output" toml:"output"`
	Defuzzifier string       `yaml:"defuzzifier,omitempty" toml:"defuzzifier,omitempty"`
	Implication string       `yaml:"implication,omitempty" toml:"implication,omitempty"`
	Domains     []DomainSpec `yaml:"domains" toml:"domains"`
	Rules       []RuleSpec   `yaml:"rules" toml:"rules"`
}

// DomainSpec declares one universe of discourse and its named terms.
// Terms are attached in declaration order, so a ref may only point back.
type DomainSpec struct {
	Name        string     `yaml:"name" toml:"name"`
	Description string     `yaml:"description,omitempty" toml:"description,omitempty"`
	Min         float64    `yaml:"min" toml:"min"`
	Max         float64    `yaml:"max" toml:"max"`
	Resolution  float64    `yaml:"resolution,omitempty" toml:"resolution,omitempty"`
	Terms       []TermSpec `yaml:"terms" toml:"terms"`
}

// TermSpec names a set expression within its domain.
type TermSpec struct {
	Name string  `yaml:"name" toml:"name"`
	Set  SetSpec `yaml:"set" toml:"set"`
}

// SetSpec is one node of a set expression. Exactly one kind must be present:
// Shape (with Params), And, Or, Not, Hedge (with Of) or Ref.
type SetSpec struct {
	Shape  string    `yaml:"shape,omitempty" toml:"shape,omitempty"`
	Params []float64 `yaml:"params,omitempty" toml:"params,omitempty"`
	And    []SetSpec `yaml:"and,omitempty" toml:"and,omitempty"`
	Or     []SetSpec `yaml:"or,omitempty" toml:"or,omitempty"`
	Not    *SetSpec  `yaml:"not,omitempty" toml:"not,omitempty"`
	Hedge  string    `yaml:"hedge,omitempty" toml:"hedge,omitempty"`
	Of     *SetSpec  `yaml:"of,omitempty" toml:"of,omitempty"`
	Ref    string    `yaml:"ref,omitempty" toml:"ref,omitempty"`
}

// RuleSpec is one rule: When lists "domain.term" antecedents, one per input
// domain in a fixed order shared by every rule; Then is the consequent.
type RuleSpec struct {
	When []string `yaml:"when" toml:"when"`
	Then string   `yaml:"then" toml:"then"`
}

// Format selects the document codec.
type Format int

const (
	// YAML documents are decoded with gopkg.in/yaml.v3.
	YAML Format = iota
	// TOML documents are decoded with github.com/pelletier/go-toml/v2.
	TOML
)

// String returns the lower-case codec name.
func (f Format) String() string {
	if f == TOML {
		return "toml"
	}

	return "yaml"
}

// FormatOf picks the codec from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, errors.WithHint(
			errors.Wrapf(ErrUnsupportedFormat, "file %q", path),
			"use a .yaml, .yml or .toml extension",
		)
	}
}

// Decode reads one document from r. Unknown keys are rejected so typos in
// a model file surface instead of being dropped.
func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	var err error
	switch f {
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	default:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	}
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "decode %s document", f), ErrDecode)
	}

	return &doc, nil
}

// Parse decodes a document held in memory.
func Parse(data []byte, f Format) (*Document, error) {
	return Decode(bytes.NewReader(data), f)
}

// LoadFile reads and decodes the document at path, picking the codec from
// the extension.
func LoadFile(path string) (*Document, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read model %q", path)
	}
	doc, err := Parse(data, f)
	if err != nil {
		return nil, errors.Wrapf(err, "model %q", path)
	}

	return doc, nil
}

// Load reads the document at path and builds it.
func Load(path string, opts ...BuildOption) (*Model, error) {
	doc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Build(doc, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "model %q", path)
	}

	return m, nil
}
