// Package fugacity locates the saturation point of a single component and
// samples its liquid and vapor fugacity curves for plotting.
//
// 🚀 What is fugacity?
//
//	A small numeric kernel plus the plumbing around it:
//		• Equilibrium model: Clausius–Clapeyron liquid fugacity, ideal and
//		  real-gas vapor fugacity, validated state and scan ranges
//		• Root search: linear scan + secant, bisection, Brent–Dekker
//		• Saturation solver: the crossing of both curves, or "none"
//		• Curve sampler: uniform grid, stable branch per sample
//		• Simulation facade: presets, slider mapping, one-shot Recompute
//
// ✨ Why it is shaped this way:
//
//   - One parameterized model instead of a copy per plot variant
//   - No ambient state: every recompute takes an immutable PhysicalState
//   - "No saturation point" is a normal result, never an error
//
// Under the hood:
//
//	equilibrium/  — correlation, vapor models, PhysicalState, ScanRange
//	rootfind/     — bracketed one-dimensional root finders
//	saturation/   — Solve, numeric and closed-form
//	curve/        — Generate, Curve, Branch
//	simulation/   — Preset, Engine, Recompute, Sweep
//	internal/cli/ — cobra commands, viper config, logrus logging
//	cmd/fugacity/ — the binary
//
// Quick picture of a pressure scan at fixed T:
//
//	f │            ______ liquid (flat)
//	  │          /
//	  │        /  vapor
//	  │      /
//	  └──────┴──────────── P
//	       P_sat
package fugacity
