// Package equilibrium supplies the liquid and vapor fugacity functions of a
// single-component system at phase equilibrium.
//
// 🚀 What is it?
//
//	A fugacity is an "effective pressure". A pure liquid and its vapor
//	coexist when their fugacities are equal. This package evaluates both
//	sides of that equality as closed-form functions of one scanned variable
//	(temperature or pressure) while the other variable is held fixed:
//	  • liquid:  f_liq(T) = A · exp(−B · (1/T − 1/T_ref))   (Clausius–Clapeyron)
//	  • vapor:   f_vap(P) = P                              (ideal gas)
//	             f_vap(P) = P − d·(P − ln(P + 1))          (real gas, d = 0.8)
//
// ✨ Key points:
//   - liquid fugacity depends on temperature only; in a pressure scan it is
//     a constant across the whole range
//   - vapor fugacity depends on pressure only; in a temperature scan it is
//     a constant across the whole range
//   - the real-gas correction never raises fugacity above the pressure
//   - all functions are pure, O(1) and allocation free
//
// 📏 Units:
//
//	The correlation returns pressure in the unit its A constant was chosen
//	in. The optional liquid scale (WithLiquidScale) is the single place a
//	unit conversion is applied, e.g. ×10 when the correlation is expressed
//	in one tenth of the plotted unit. Vapor fugacity is always expressed in
//	the unit of the scanned or fixed pressure.
//
// ⚙️ Usage:
//
//	state := equilibrium.PhysicalState{Temperature: 375}
//	m, err := equilibrium.NewModel(equilibrium.PressureScan, state,
//	    equilibrium.WithCorrelation(equilibrium.ScaledCorrelation),
//	    equilibrium.WithLiquidScale(10))
//	if err != nil { /* invalid state */ }
//	fl := m.LiquidFugacity(1.5) // constant in P
//	fv := m.VaporFugacity(1.5)  // 1.5 for an ideal gas
package equilibrium
