// SPDX-License-Identifier: MIT

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// inferOutput is the --json shape of an infer answer.
type inferOutput struct {
	Model  string             `json:"model,omitempty"`
	Inputs map[string]float64 `json:"inputs"`
	Output string             `json:"output"`
	Value  float64            `json:"value"`
}

func newInferCmd(a *app) *cobra.Command {
	var inputs []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "infer [name=value ...]",
		Short: "Compute the crisp output for one set of inputs",
		Example: `  lvfuzzy infer delay=0.25 servers=0.5 util=0.7
  lvfuzzy infer --input delay=0.25 --input servers=0.5 --input util=0.7 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInputs(append(inputs, args...))
			if err != nil {
				return err
			}
			m, err := a.openModel()
			if err != nil {
				return err
			}
			v, err := m.Infer(values)
			if err != nil {
				return err
			}
			a.log.Info("inferred", zap.String("output", m.Output().Name()), zap.Float64("value", v))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(inferOutput{Model: m.Name(), Inputs: values, Output: m.Output().Name(), Value: v})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s = %.6f\n", m.Output().Name(), v)
			return err
		},
	}
	cmd.Flags().StringArrayVarP(&inputs, "input", "i", nil, "input as name=value (repeatable)")
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "print the answer as JSON")

	return cmd
}
