// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newTermsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "terms",
		Short: "List the domains and linguistic terms of the model",
		Long: `List every domain with its role, range and resolution, one row per term.
The centroid column is the center of gravity of the term alone over the
domain grid, a quick check that each term sits where it is meant to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.openModel()
			if err != nil {
				return err
			}
			inputs := map[string]bool{}
			for _, name := range m.InputNames() {
				inputs[name] = true
			}

			data := pterm.TableData{{"Domain", "Role", "Range", "Resolution", "Term", "Centroid"}}
			for _, name := range m.DomainNames() {
				d, _ := m.Domain(name)
				role := "unused"
				switch {
				case d == m.Output():
					role = "output"
				case inputs[name]:
					role = "input"
				}
				head := []string{
					name,
					role,
					fmt.Sprintf("[%g, %g]", d.Min(), d.Max()),
					strconv.FormatFloat(d.Resolution(), 'g', -1, 64),
				}
				terms := d.Terms()
				if len(terms) == 0 {
					data = append(data, append(head, "", ""))
					continue
				}
				for k, term := range terms {
					row := head
					if k > 0 {
						row = []string{"", "", "", ""}
					}
					data = append(data, append(append([]string(nil), row...), term, centroidCell(d.MustTerm(term).Centroid())))
				}
			}

			if desc := describe(m.DomainNames(), m.Description); desc != "" {
				pterm.Fprintln(cmd.OutOrStdout(), desc)
			}

			return render(cmd.OutOrStdout(), data)
		},
	}
}

// centroidCell formats a term centroid; empty terms show as "-".
func centroidCell(c float64, err error) string {
	if err != nil {
		return "-"
	}

	return strconv.FormatFloat(c, 'f', 4, 64)
}

// describe lists "name: description" lines for the domains that have one.
func describe(names []string, about func(string) string) string {
	var out string
	for _, name := range names {
		if d := about(name); d != "" {
			out += fmt.Sprintf("%s: %s\n", name, d)
		}
	}

	return out
}
