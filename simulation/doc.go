// Package simulation ties the fugacity kernel to the controls of an
// interactive plot.
//
// 🚀 What is it?
//
//	A host UI owns a normalized control value v ∈ [0, 1] (a slider), a scan
//	mode (fugacity vs temperature or fugacity vs pressure) and a real-gas
//	toggle. Every interaction calls Engine.Recompute with those three
//	values and draws the returned Curve and optional saturation point. The
//	previous Result is simply replaced; nothing is cached or merged.
//
// ✨ Presets:
//
//	A Preset gathers the constants that differ between plot variants: the
//	correlation, each axis' range and unit, the liquid unit scale, the
//	slider-to-physical map, the root-search method and the grid size.
//	  • "classic" — bar on every axis, linear scan + secant, 100 samples
//	  • "scaled"  — bar for the temperature plot, MPa (×10) for the pressure
//	                plot, 30-step bisection, 200 samples
//
// ⚙️ Usage:
//
//	eng, err := simulation.New(simulation.Scaled())
//	res, err := eng.Recompute(simulation.Request{
//	    Mode:    equilibrium.PressureScan,
//	    Control: 0.5,
//	    RealGas: true,
//	})
//	if res.Saturation != nil { ... }
package simulation
