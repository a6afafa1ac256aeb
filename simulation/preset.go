package simulation

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/fugacity/equilibrium"
	"github.com/katalvlaran/fugacity/saturation"
)

// ControlMap linearly maps a normalized control value onto a physical one.
type ControlMap struct {
	Min float64 `mapstructure:"min" json:"min"`
	Max float64 `mapstructure:"max" json:"max"`
}

// Map returns Min + (Max − Min)·v with v clamped to [0, 1].
// A NaN v maps to Min.
func (c ControlMap) Map(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		v = 0
	case v > 1:
		v = 1
	}

	return c.Min + (c.Max-c.Min)*v
}

// AxisConfig describes the plot whose x axis is the scanned variable.
type AxisConfig struct {
	Lo          float64    `mapstructure:"lo" json:"lo"`
	Hi          float64    `mapstructure:"hi" json:"hi"`
	Unit        string     `mapstructure:"unit" json:"unit"`
	LiquidScale float64    `mapstructure:"liquid_scale" json:"liquid_scale"`
	Step        float64    `mapstructure:"step" json:"step"`
	Control     ControlMap `mapstructure:"control" json:"control"`
	// RealGasControl replaces Control when the real-gas toggle is on.
	// A zero value means "same as Control".
	RealGasControl ControlMap `mapstructure:"real_gas_control" json:"real_gas_control"`
}

// ControlFor returns the control map for the given real-gas flag.
func (a AxisConfig) ControlFor(realGas bool) ControlMap {
	if realGas && a.RealGasControl != (ControlMap{}) {
		return a.RealGasControl
	}

	return a.Control
}

// PressureUnit parses Unit; an empty string means bar.
func (a AxisConfig) PressureUnit() (equilibrium.Unit, error) {
	switch a.Unit {
	case "", "bar":
		return equilibrium.Bar, nil
	case "MPa", "mpa":
		return equilibrium.MPa, nil
	default:
		return 0, fmt.Errorf("unit %q: %w", a.Unit, ErrBadPreset)
	}
}

// Preset is one plot variant.
//
// Temperature is the fugacity-vs-temperature plot: its range is in K and its
// control map yields the fixed pressure. Pressure is the
// fugacity-vs-pressure plot: its range is a pressure and its control map
// yields the fixed temperature in K.
type Preset struct {
	Name        string                  `mapstructure:"name" json:"name"`
	Correlation equilibrium.Correlation `mapstructure:"correlation" json:"correlation"`
	Temperature AxisConfig              `mapstructure:"temperature" json:"temperature"`
	Pressure    AxisConfig              `mapstructure:"pressure" json:"pressure"`
	Method      string                  `mapstructure:"method" json:"method"`
	Samples     int                     `mapstructure:"samples" json:"samples"`
	Deviation   float64                 `mapstructure:"deviation" json:"deviation"`
}

// Axis returns the axis configuration of the given scan mode.
func (p Preset) Axis(mode equilibrium.ScanMode) AxisConfig {
	if mode == equilibrium.PressureScan {
		return p.Pressure
	}

	return p.Temperature
}

// Validate checks every field a Recompute relies on.
func (p Preset) Validate() error {
	for _, v := range []float64{p.Correlation.A, p.Correlation.B, p.Correlation.TRef} {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("preset %q: correlation %+v: %w", p.Name, p.Correlation, ErrBadPreset)
		}
	}
	if _, err := saturation.ParseMethod(p.Method); err != nil {
		return fmt.Errorf("preset %q: %w: %w", p.Name, ErrBadPreset, err)
	}
	if p.Samples < 2 {
		return fmt.Errorf("preset %q: samples %d < 2: %w", p.Name, p.Samples, ErrBadPreset)
	}
	if math.IsNaN(p.Deviation) || p.Deviation < 0 || p.Deviation >= 1 {
		return fmt.Errorf("preset %q: deviation %v: %w", p.Name, p.Deviation, ErrBadPreset)
	}
	for _, mode := range []equilibrium.ScanMode{equilibrium.TemperatureScan, equilibrium.PressureScan} {
		a := p.Axis(mode)
		if _, err := equilibrium.NewScanRange(mode, a.Lo, a.Hi); err != nil {
			return fmt.Errorf("preset %q: %v axis: %w: %w", p.Name, mode, ErrBadPreset, err)
		}
		if _, err := a.PressureUnit(); err != nil {
			return fmt.Errorf("preset %q: %v axis: %w", p.Name, mode, err)
		}
		if !(a.LiquidScale > 0) || math.IsInf(a.LiquidScale, 0) {
			return fmt.Errorf("preset %q: %v axis: liquid scale %v: %w", p.Name, mode, a.LiquidScale, ErrBadPreset)
		}
		if a.Step < 0 || math.IsNaN(a.Step) || math.IsInf(a.Step, 0) {
			return fmt.Errorf("preset %q: %v axis: step %v: %w", p.Name, mode, a.Step, ErrBadPreset)
		}
	}

	return nil
}

// Classic is the bar-based variant: one correlation in bar for both plots,
// a 0.05 K / 0.001 bar linear scan with secant refinement and 100 samples.
// The fixed-temperature slider spans 350..400 K for an ideal vapor and
// 450..500 K with the real-gas correction.
func Classic() Preset {
	return Preset{
		Name:        "classic",
		Correlation: equilibrium.BarCorrelation,
		Temperature: AxisConfig{
			Lo: 280, Hi: 400, Unit: "bar", LiquidScale: 1, Step: 0.05,
			Control: ControlMap{Min: 0.2, Max: 1.5},
		},
		Pressure: AxisConfig{
			Lo: 0, Hi: 3, Unit: "bar", LiquidScale: 1, Step: 0.001,
			Control:        ControlMap{Min: 350, Max: 400},
			RealGasControl: ControlMap{Min: 450, Max: 500},
		},
		Method:    "scan",
		Samples:   100,
		Deviation: equilibrium.DefaultDeviation,
	}
}

// Scaled is the variant whose correlation is a tenth of the bar one: the
// temperature plot reads it directly, the pressure plot (MPa) applies ×10.
// It bisects 30 times and draws 200 samples.
func Scaled() Preset {
	return Preset{
		Name:        "scaled",
		Correlation: equilibrium.ScaledCorrelation,
		Temperature: AxisConfig{
			Lo: 280, Hi: 400, Unit: "bar", LiquidScale: 1,
			Control: ControlMap{Min: 0.02, Max: 0.15},
		},
		Pressure: AxisConfig{
			Lo: 0, Hi: 3, Unit: "MPa", LiquidScale: 10,
			Control: ControlMap{Min: 358, Max: 395},
		},
		Method:    "bisection",
		Samples:   200,
		Deviation: equilibrium.DefaultDeviation,
	}
}

// builtins lists the presets shipped with the package.
var builtins = map[string]func() Preset{
	"classic": Classic,
	"scaled":  Scaled,
}

// Lookup returns the built-in preset with the given name.
func Lookup(name string) (Preset, error) {
	fn, ok := builtins[name]
	if !ok {
		return Preset{}, fmt.Errorf("preset %q: %w", name, ErrUnknownPreset)
	}

	return fn(), nil
}

// Presets returns all built-in presets ordered by name.
func Presets() []Preset {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Preset, 0, len(names))
	for _, name := range names {
		out = append(out, builtins[name]())
	}

	return out
}
