package simulation_test

import (
	"errors"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fugacity/curve"
	"github.com/katalvlaran/fugacity/equilibrium"
	"github.com/katalvlaran/fugacity/saturation"
	"github.com/katalvlaran/fugacity/simulation"
)

func newEngine(t *testing.T, p simulation.Preset) *simulation.Engine {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	eng, err := simulation.New(p, simulation.WithLogger(logger))
	require.NoError(t, err)

	return eng
}

// TestRecompute_ReferenceBoilingPoint maps the classic pressure control
// onto 1.01325 bar and expects T_sat = 373 K.
func TestRecompute_ReferenceBoilingPoint(t *testing.T) {
	eng := newEngine(t, simulation.Classic())
	v := (equilibrium.ReferencePressureBar - 0.2) / 1.3

	res, err := eng.Recompute(simulation.Request{Mode: equilibrium.TemperatureScan, Control: v})
	require.NoError(t, err)
	require.NotNil(t, res.Saturation)
	assert.InDelta(t, equilibrium.ReferencePressureBar, res.Fixed(), 1e-12)
	assert.InDelta(t, 373.0, res.Saturation.Location, 1e-3)
	assert.InDelta(t, equilibrium.ReferencePressureBar, res.Saturation.Fugacity, 1e-4)
	assert.Equal(t, equilibrium.Bar, res.Unit)
	assert.Len(t, res.Curve, 100)

	// vapor fugacity is the fixed pressure everywhere on a temperature scan
	for _, s := range res.Curve {
		assert.Equal(t, res.State.Pressure, s.FugacityVapor)
	}
	// liquid is stable below T_sat, vapor above
	assert.Equal(t, curve.Liquid, res.Curve[0].Branch)
	assert.Equal(t, curve.Vapor, res.Curve[len(res.Curve)-1].Branch)
}

// TestRecompute_ScaledPressureScan checks the MPa plot at T = 375 K.
func TestRecompute_ScaledPressureScan(t *testing.T) {
	eng := newEngine(t, simulation.Scaled())
	v := (375.0 - 358.0) / 37.0

	res, err := eng.Recompute(simulation.Request{Mode: equilibrium.PressureScan, Control: v})
	require.NoError(t, err)
	require.NotNil(t, res.Saturation)
	assert.InDelta(t, 375.0, res.State.Temperature, 1e-9)
	assert.Equal(t, equilibrium.MPa, res.Unit)
	assert.Len(t, res.Curve, 200)

	fLiq := equilibrium.BarCorrelation.Clausius(res.State.Temperature)
	assert.InDelta(t, fLiq, res.Saturation.Location, 1e-6)
	for _, s := range res.Curve {
		assert.InDelta(t, fLiq, s.FugacityLiquid, 1e-9)
		if s.X < res.Saturation.Location {
			assert.Equal(t, s.X, s.FugacityVapor)
			assert.Equal(t, curve.Vapor, s.Branch)
		} else {
			assert.Equal(t, curve.Liquid, s.Branch)
		}
	}
}

// TestRecompute_RealGasCrossing checks the common fugacity at the located
// crossing for the real-gas correction.
func TestRecompute_RealGasCrossing(t *testing.T) {
	eng := newEngine(t, simulation.Scaled())

	res, err := eng.Recompute(simulation.Request{Mode: equilibrium.PressureScan, Control: 0.5, RealGas: true})
	require.NoError(t, err)
	require.NotNil(t, res.Saturation)

	fVap := equilibrium.RealGasFugacity(res.Saturation.Location, equilibrium.DefaultDeviation)
	fLiq := 10 * equilibrium.ScaledCorrelation.Clausius(res.State.Temperature)
	assert.InDelta(t, fLiq, fVap, 1e-6)
	// the negative deviation pushes P_sat above f_liq
	assert.Greater(t, res.Saturation.Location, fLiq)
}

// TestRecompute_RealGasTemperatureScan compares the classic linear scan
// against the closed form T = InvClausius(f_vap).
func TestRecompute_RealGasTemperatureScan(t *testing.T) {
	eng := newEngine(t, simulation.Classic())

	res, err := eng.Recompute(simulation.Request{Mode: equilibrium.TemperatureScan, Control: 0.3, RealGas: true})
	require.NoError(t, err)
	require.NotNil(t, res.Saturation)

	fVap := equilibrium.RealGasFugacity(res.State.Pressure, equilibrium.DefaultDeviation)
	want := equilibrium.BarCorrelation.InvClausius(fVap)
	assert.InDelta(t, want, res.Saturation.Location, 1e-3)
}

// TestRecompute_SinglePhase covers a fixed temperature whose liquid
// fugacity stays above every vapor value in range.
func TestRecompute_SinglePhase(t *testing.T) {
	eng := newEngine(t, simulation.Classic())

	res, err := eng.Recompute(simulation.Request{Mode: equilibrium.PressureScan, Control: 0, RealGas: true})
	require.NoError(t, err)
	assert.Nil(t, res.Saturation)
	assert.InDelta(t, 450.0, res.State.Temperature, 1e-12)
	assert.Equal(t, -1, res.Curve.Boundary())
	for _, s := range res.Curve {
		assert.Equal(t, curve.Vapor, s.Branch)
	}
}

// TestRecompute_FineScanStep keeps finding the crossing when the preset's
// scan step needs more steps than the search allows.
func TestRecompute_FineScanStep(t *testing.T) {
	for _, step := range []float64{0.0001, 1e-12, 1e-320} {
		p := simulation.Classic()
		p.Pressure.Step = step
		eng := newEngine(t, p)

		res, err := eng.Recompute(simulation.Request{Mode: equilibrium.PressureScan, Control: 0.5})
		require.NoError(t, err, "step=%g", step)
		require.NotNil(t, res.Saturation, "step=%g", step)
		assert.InDelta(t, equilibrium.BarCorrelation.Clausius(375), res.Saturation.Location, 1e-9, "step=%g", step)
		assert.NotEqual(t, -1, res.Curve.Boundary(), "step=%g", step)
	}
}

// TestRecompute_Idempotent repeats the same request.
func TestRecompute_Idempotent(t *testing.T) {
	for _, p := range simulation.Presets() {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			eng := newEngine(t, p)
			req := simulation.Request{Mode: equilibrium.PressureScan, Control: 0.42, RealGas: true}
			a, err := eng.Recompute(req)
			require.NoError(t, err)
			b, err := eng.Recompute(req)
			require.NoError(t, err)
			assert.Equal(t, a, b)
		})
	}
}

// TestRecompute_ControlClamped checks out-of-range slider values.
func TestRecompute_ControlClamped(t *testing.T) {
	eng := newEngine(t, simulation.Scaled())

	lo, err := eng.Recompute(simulation.Request{Mode: equilibrium.TemperatureScan, Control: -3})
	require.NoError(t, err)
	hi, err := eng.Recompute(simulation.Request{Mode: equilibrium.TemperatureScan, Control: 7})
	require.NoError(t, err)
	assert.InDelta(t, 0.02, lo.State.Pressure, 1e-15)
	assert.InDelta(t, 0.15, hi.State.Pressure, 1e-15)
}

func TestRecompute_UnknownMode(t *testing.T) {
	eng := newEngine(t, simulation.Classic())
	_, err := eng.Recompute(simulation.Request{Mode: equilibrium.ScanMode(9)})
	assert.True(t, errors.Is(err, equilibrium.ErrUnknownMode))
}

// TestRecompute_LogsFields checks the debug record of one recompute.
func TestRecompute_LogsFields(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	eng, err := simulation.New(simulation.Classic(), simulation.WithLogger(logger))
	require.NoError(t, err)

	_, err = eng.Recompute(simulation.Request{Mode: equilibrium.PressureScan, Control: 0.5})
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "classic", entry.Data["preset"])
	assert.Equal(t, "pressure", entry.Data["mode"])
	assert.Contains(t, entry.Data, "saturation")
}

func TestSweep(t *testing.T) {
	eng := newEngine(t, simulation.Classic())

	pts, err := eng.Sweep(equilibrium.PressureScan, false, 5)
	require.NoError(t, err)
	require.Len(t, pts, 5)
	assert.Equal(t, 0.0, pts[0].Control)
	assert.Equal(t, 1.0, pts[4].Control)
	assert.InDelta(t, 350.0, pts[0].Fixed, 1e-12)
	assert.InDelta(t, 400.0, pts[4].Fixed, 1e-12)

	prev := 0.0
	for _, pt := range pts {
		require.NotNil(t, pt.Saturation)
		// P_sat rises with the fixed temperature
		assert.Greater(t, pt.Saturation.Location, prev)
		prev = pt.Saturation.Location
	}

	_, err = eng.Sweep(equilibrium.PressureScan, false, 1)
	assert.True(t, errors.Is(err, simulation.ErrBadSweep))
}

func TestNew_InvalidPreset(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *simulation.Preset)
	}{
		{"samples", func(p *simulation.Preset) { p.Samples = 1 }},
		{"method", func(p *simulation.Preset) { p.Method = "newton" }},
		{"unit", func(p *simulation.Preset) { p.Pressure.Unit = "psi" }},
		{"liquid scale", func(p *simulation.Preset) { p.Pressure.LiquidScale = 0 }},
		{"range", func(p *simulation.Preset) { p.Temperature.Lo, p.Temperature.Hi = 400, 280 }},
		{"correlation", func(p *simulation.Preset) { p.Correlation.B = 0 }},
		{"deviation", func(p *simulation.Preset) { p.Deviation = 1 }},
		{"step", func(p *simulation.Preset) { p.Pressure.Step = -1 }},
		{"infinite step", func(p *simulation.Preset) { p.Temperature.Step = math.Inf(1) }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p := simulation.Classic()
			tc.mutate(&p)
			_, err := simulation.New(p)
			assert.True(t, errors.Is(err, simulation.ErrBadPreset), "got %v", err)
		})
	}
}

func TestNew_AnalyticMethod(t *testing.T) {
	p := simulation.Classic()
	p.Method = saturation.Analytic.String()
	eng := newEngine(t, p)

	res, err := eng.Recompute(simulation.Request{Mode: equilibrium.PressureScan, Control: 0.5})
	require.NoError(t, err)
	require.NotNil(t, res.Saturation)
	assert.Equal(t, equilibrium.BarCorrelation.Clausius(375), res.Saturation.Location)
}

func TestWithLogger_NilPanics(t *testing.T) {
	assert.Panics(t, func() { simulation.WithLogger(nil) })
}
