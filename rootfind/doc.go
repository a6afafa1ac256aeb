// Package rootfind locates a single sign change of a scalar function inside
// a bounded interval.
//
// 🚀 What is it?
//
//	Given f and [lo, hi], return the x where f(x) = 0, or report that no
//	sign change exists. "No root" is a normal outcome, not an error: it is
//	encoded as Root.Found == false.
//
// ✨ Methods:
//   - LinearScan — walk a fixed grid x_i = lo + i·h, stop at the first sign
//     change and refine it with secant (linear) interpolation:
//     x* = x0 − d0·(x1 − x0)/(d1 − d0)
//   - Bisection  — verify the endpoint signs, then halve a fixed number of
//     times (30 by default, ~1e-9 of the initial width)
//   - BrentMethod — Brent–Dekker: inverse quadratic interpolation guarded by
//     bisection; converges to Tolerance in a handful of evaluations
//
// All methods assume at most one crossing in the interval; multiple roots
// are not searched for. Every loop is bounded, so every call terminates.
//
// ⚙️ Usage:
//
//	diff := rootfind.Difference(fLiquid, fVapor)
//	root, err := rootfind.Find(rootfind.BrentMethod, diff, 280, 400)
//	if err != nil { /* bad interval */ }
//	if root.Found { fmt.Println(root.X) }
//
// Complexity:
//
//	LinearScan  O(min(MaxSteps, (hi−lo)/Step)) evaluations; the last sample is hi
//	Bisection   O(Iterations)
//	BrentMethod O(Iterations), typically < 20
package rootfind
