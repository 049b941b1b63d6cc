// SPDX-License-Identifier: MIT

// Package commands holds the cobra command tree of the lvfuzzy binary.
package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvfuzzy/config"
	"github.com/katalvlaran/lvfuzzy/logger"
	"github.com/katalvlaran/lvfuzzy/model"
	"github.com/katalvlaran/lvfuzzy/rules"
)

// app carries the state resolved by the root command for its children.
type app struct {
	v   *viper.Viper
	cfg *config.Config
	log *zap.Logger
}

// NewRootCmd assembles the command tree. Each call returns an independent
// tree, which keeps tests free of shared flag state.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.NewViper(""), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "lvfuzzy",
		Short: "Mamdani fuzzy inference over declarative rule models",
		Long: `lvfuzzy evaluates fuzzy rule models written in YAML or TOML.

Without --model the embedded spare-parts model is used: three inputs on
[0,1] (delay, servers, util) and one output (spares).

Examples:
  lvfuzzy infer delay=0.25 servers=0.5 util=0.7
  lvfuzzy explain -m plant.yaml --input temp=31 --all
  lvfuzzy batch queries.csv --workers 4
  lvfuzzy terms`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "config file (.toml or .yaml)")
	pf.StringP("model", "m", "", "model document; empty selects the embedded spares model")
	pf.Float64("resolution", 0, "grid resolution override for every domain")
	pf.String("defuzzifier", "", "centroid, bisector, mom, som or lom")
	pf.String("implication", "", "clip or scale")
	pf.String("log-level", "info", "debug, info, warn or error")
	pf.Bool("log-json", false, "emit JSON logs")
	pf.CountP("verbose", "v", "shortcut for --log-level=debug")

	for key, flag := range map[string]string{
		"model":       "model",
		"resolution":  "resolution",
		"defuzzifier": "defuzzifier",
		"implication": "implication",
		"log.level":   "log-level",
		"log.json":    "log-json",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(
		newInferCmd(a),
		newExplainCmd(a),
		newBatchCmd(a),
		newTermsCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup resolves configuration and the logger once per invocation.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %q", path)
		}
	}
	if n, _ := cmd.Flags().GetCount("verbose"); n > 0 {
		a.v.Set("log.level", "debug")
	}

	cfg, err := config.LoadWithViper(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logger.NewWithWriter(logger.Options{JSON: cfg.Log.JSON, Level: cfg.Log.Level}, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log

	return nil
}

// openModel builds the configured model. Rule firings are traced at debug
// level when that level is enabled.
func (a *app) openModel() (*model.Model, error) {
	var extra []rules.Option
	if a.log.Core().Enabled(zapcore.DebugLevel) {
		trace := a.log.Named("rules")
		extra = append(extra, rules.WithOnFire(func(rule int, strength float64) {
			if strength > 0 {
				trace.Debug("rule fired", zap.Int("rule", rule), zap.Float64("strength", strength))
			}
		}))
	}

	m, err := a.cfg.OpenModel(extra...)
	if err != nil {
		return nil, err
	}
	name := a.cfg.Model
	if name == "" {
		name = "embedded:spares"
	}
	a.log.Debug("model loaded",
		zap.String("model", name),
		zap.Int("rules", m.RuleBase().Len()),
		zap.Int("grid", m.RuleBase().GridSize()),
		zap.Stringer("defuzzifier", m.RuleBase().Options().Defuzzifier),
	)

	return m, nil
}
