// Package lvfuzzy is a small Mamdani-style fuzzy inference engine: declare
// linguistic variables over numeric ranges, combine membership functions
// into terms, write IF-THEN rules over them and get a crisp answer back.
//
// 🚀 What is lvfuzzy?
//
//	A pure-Go core with a thin configuration and CLI shell:
//		• Membership shapes: S and R shoulders, triangles, trapezoids, rectangles
//		• Set algebra: AND (min), OR (max), NOT (1−μ) and hedges (very, somewhat…)
//		• Domains: named universes with a sampling grid and attached terms
//		• Rule bases: min firing, max aggregation, clipped consequents
//		• Defuzzification: centroid, bisector, mean/smallest/largest of maximum
//		• Models: YAML/TOML documents built into ready rule bases
//
// ✨ Why lvfuzzy?
//
//   - Immutable sets: expressions are shared freely across goroutines
//   - Deterministic: the same rule base and inputs give bit-identical output
//   - Explainable: every query can return per-rule firing strengths
//   - Hookable: observe rule firings with rules.WithOnFire
//
// Packages:
//
//	membership/   — primitive membership functions (float64 → [0,1])
//	fuzzy/        — Set expression tree, hedges, Domain and Grid
//	rules/        — RuleBase, inference and defuzzification
//	model/        — YAML/TOML model documents and the embedded spares model
//	config/       — viper-backed runtime settings (file + LVFUZZY_* env)
//	logger/       — zap console/JSON loggers for the command
//	cmd/lvfuzzy/  — cobra CLI: infer, explain, batch, terms, version
//
// Quick example:
//
//	delay, _ := fuzzy.NewDomain("delay", 0, 1, 0.001)
//	low, _ := delay.Attach("low", fuzzy.NewSet(membership.S(0, 0.3)))
//	...
//	rb, _ := rules.New([]rules.Rule{{If: []*fuzzy.Set{low}, Then: few}})
//	v, _ := rb.Infer(map[*fuzzy.Domain]float64{delay: 0.1})
//
//	go install github.com/katalvlaran/lvfuzzy/cmd/lvfuzzy@latest
package lvfuzzy
