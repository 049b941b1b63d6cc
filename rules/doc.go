// Package rules implements a Mamdani-style fuzzy rule base: it maps tuples
// of antecedent Sets (one per input Domain) onto consequent Sets and turns a
// snapshot of crisp inputs into one crisp recommendation.
//
// 🚀 Inference, three ordered phases per query:
//
//  1. Fuzzification — every rule evaluates its positional antecedent Set
//     against the (clamped) crisp value of the matching input Domain.
//  2. Firing        — a rule's strength is the min (t-norm) of its antecedent
//     memberships.
//  3. Aggregation & defuzzification — rules are grouped by consequent Set
//     IDENTITY; each group's strength is the max of its members (max-min
//     composition). The output fuzzy set is
//     μ_out(x) = max_C min(strength(C), μ_C(x)) over the output grid, and is
//     defuzzified (centroid by default) into one crisp value.
//
// ✨ Key features:
//   - immutable after New: safe for concurrent queries without locks
//   - consequent samples are cached once per rule base (grid × consequents)
//   - explicit failures instead of silent defaults (ErrNoRuleFired, ErrMissingInput)
//   - per-query trace via Evaluate (firing strengths, activations, grid size)
//   - pluggable defuzzifier (Centroid, Bisector, MeanOfMaximum, ...) and
//     implication (Clip = min, Scale = product)
//   - OnFire hook for tracing/logging without coupling to a logger
//
// ⚙️ Usage:
//
//	rb, err := rules.New([]rules.Rule{
//	    {If: []*fuzzy.Set{delayVS, serversS, utilL}, Then: sparesVS},
//	    {If: []*fuzzy.Set{delayM, serversS, utilH}, Then: sparesM},
//	})
//	if err != nil { /* configuration defect */ }
//
//	v, err := rb.Infer(map[*fuzzy.Domain]float64{delay: 0.25, servers: 0.5, util: 0.7})
//
// Errors:
//
//	ErrEmptyRuleBase   — New without rules.
//	ErrArityMismatch   — antecedent tuples of different (or zero) length.
//	ErrDuplicateRule   — the same antecedent tuple appears twice.
//	ErrOptionViolation — an invalid Option value.
//	ErrMissingInput    — a query omits a referenced input Domain.
//	ErrInvalidInput    — a query supplies NaN or ±Inf.
//	ErrNoRuleFired     — aggregated membership is zero on the whole output grid.
//	fuzzy.ErrDomainMismatch / ErrNilSet / ErrUnboundSet — inconsistent rule tables.
//
// Complexity:
//
//	New:   O(R·A + G·C) — R rules, A antecedents per rule, G grid points,
//	       C distinct consequents.
//	Query: O(R·A·T + G·C) — T = antecedent expression size.
package rules
