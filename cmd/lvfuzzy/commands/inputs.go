// SPDX-License-Identifier: MIT

package commands

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrBadInput indicates an input argument that is not name=value.
var ErrBadInput = errors.New("commands: bad input")

// parseInputs turns "name=value" arguments into a query map.
func parseInputs(args []string) (map[string]float64, error) {
	out := make(map[string]float64, len(args))
	for _, arg := range args {
		name, raw, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.WithHint(
				errors.Wrapf(ErrBadInput, "%q", arg),
				"write inputs as name=value, e.g. delay=0.25",
			)
		}
		if _, dup := out[name]; dup {
			return nil, errors.Wrapf(ErrBadInput, "%q given twice", name)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "input %q", name), ErrBadInput)
		}
		out[name] = v
	}

	return out, nil
}
