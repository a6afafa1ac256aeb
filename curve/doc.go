// Package curve samples liquid and vapor fugacities on a uniform grid and
// tags every sample with the phase that is stable there.
//
// 🚀 What is it?
//
//	Generate walks N evenly spaced points over a scan range. At each point it
//	evaluates both fugacity functions and keeps both values, so a drawing
//	layer can render the stable branch solid and the metastable extension
//	dashed. The Branch tag flips once, at the saturation point.
//
// ✨ Branch rule:
//   - the branch on the low side of the range is the phase with the lower
//     fugacity at lo; it is decided once per curve, never per sample
//   - samples strictly below the saturation location carry the low-side
//     branch, samples at or above it carry the other one
//   - without a saturation point every sample carries the low-side branch
//
// A Curve is a plain slice rebuilt from scratch on every call: identical
// inputs give bit-identical output.
//
// ⚙️ Usage:
//
//	c, err := curve.Generate(model, rng, &point, curve.WithSamples(200))
//	xs, ys := c.X(), c.Active()
package curve
