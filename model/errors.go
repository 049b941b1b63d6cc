// SPDX-License-Identifier: MIT

package model

import "github.com/cockroachdb/errors"

var (
	// ErrUnsupportedFormat indicates a file extension other than .yaml/.yml/.toml.
	ErrUnsupportedFormat = errors.New("model: unsupported document format")

	// ErrDecode indicates the document is not valid YAML/TOML for the schema.
	ErrDecode = errors.New("model: cannot decode document")

	// ErrDuplicateDomain indicates two domains share a name.
	ErrDuplicateDomain = errors.New("model: duplicate domain")

	// ErrUnknownDomain indicates a reference to, or an input for, an undeclared domain.
	ErrUnknownDomain = errors.New("model: unknown domain")

	// ErrNoOutput indicates the output domain is missing or undeclared.
	ErrNoOutput = errors.New("model: output domain not declared")

	// ErrBadSetNode indicates a set node with zero or several kinds, or a
	// composite with too few operands.
	ErrBadSetNode = errors.New("model: malformed set node")

	// ErrUnknownShape indicates an unrecognized primitive shape or hedge.
	ErrUnknownShape = errors.New("model: unknown shape")

	// ErrBadParams indicates a wrong number of shape parameters or a
	// non-finite parameter.
	ErrBadParams = errors.New("model: bad shape parameters")

	// ErrBadReference indicates a malformed or dangling "domain.term" or ref.
	ErrBadReference = errors.New("model: bad term reference")
)
