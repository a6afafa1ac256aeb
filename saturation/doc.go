// Package saturation locates the saturation point of a single-component
// system: the scanned temperature (at fixed pressure) or scanned pressure
// (at fixed temperature) where liquid and vapor fugacities are equal.
//
// The search runs over a validated equilibrium.ScanRange with one of the
// rootfind methods, or with closed-form shortcuts (Analytic) where the
// model allows it. A system that stays single-phase over the whole range
// has no saturation point; Solve reports that as ok == false, not as an
// error.
package saturation
