// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newExplainCmd(a *app) *cobra.Command {
	var inputs []string
	var all bool

	cmd := &cobra.Command{
		Use:   "explain [name=value ...]",
		Short: "Show rule firings and consequent activations for one query",
		Example: `  lvfuzzy explain delay=0.25 servers=0.5 util=0.7
  lvfuzzy explain --all -i delay=0.25 -i servers=0.5 -i util=0.7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInputs(append(inputs, args...))
			if err != nil {
				return err
			}
			m, err := a.openModel()
			if err != nil {
				return err
			}
			res, err := m.Evaluate(values)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			labels := m.RuleLabels()
			firings := pterm.TableData{{"#", "Rule", "Strength"}}
			for i, s := range res.Firing {
				if s == 0 && !all {
					continue
				}
				firings = append(firings, []string{strconv.Itoa(i), labels[i], formatDegree(s)})
			}
			if err := render(w, firings); err != nil {
				return err
			}

			acts := pterm.TableData{{"Consequent", "Activation"}}
			for _, act := range res.Activations {
				if act.Strength == 0 && !all {
					continue
				}
				acts = append(acts, []string{act.Consequent.String(), formatDegree(act.Strength)})
			}
			if err := render(w, acts); err != nil {
				return err
			}

			_, err = fmt.Fprintf(w, "%s = %.6f  (%s over %d points)\n",
				m.Output().Name(), res.Value, m.RuleBase().Options().Defuzzifier, res.GridSize)
			return err
		},
	}
	cmd.Flags().StringArrayVarP(&inputs, "input", "i", nil, "input as name=value (repeatable)")
	cmd.Flags().BoolVar(&all, "all", false, "include rules and consequents with zero strength")

	return cmd
}

// render writes a header table followed by a blank line.
func render(w io.Writer, data pterm.TableData) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n\n", s)
	return err
}

func formatDegree(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
