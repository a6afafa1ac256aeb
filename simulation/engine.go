package simulation

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/fugacity/curve"
	"github.com/katalvlaran/fugacity/equilibrium"
	"github.com/katalvlaran/fugacity/saturation"
)

// Request is one UI interaction.
type Request struct {
	Mode    equilibrium.ScanMode
	Control float64 // normalized slider value, clamped to [0, 1]
	RealGas bool
}

// Result is everything a redraw needs. It replaces the previous Result.
type Result struct {
	Request    Request                   `json:"-"`
	State      equilibrium.PhysicalState `json:"state"`
	Range      equilibrium.ScanRange     `json:"range"`
	Unit       equilibrium.Unit          `json:"-"`
	Curve      curve.Curve               `json:"curve"`
	Saturation *saturation.Point         `json:"saturation,omitempty"`
}

// Fixed returns the physical value the control mapped to: the pressure of a
// temperature scan or the temperature of a pressure scan.
func (r Result) Fixed() float64 {
	if r.Request.Mode == equilibrium.PressureScan {
		return r.State.Temperature
	}

	return r.State.Pressure
}

// SweepPoint is one step of Sweep.
type SweepPoint struct {
	Control    float64
	Fixed      float64
	Saturation *saturation.Point
}

// Engine recomputes curves for one preset. It holds no state between
// calls and is safe for concurrent use.
type Engine struct {
	preset Preset
	method saturation.Method
	log    logrus.FieldLogger
}

// EngineOption customizes New.
type EngineOption func(*Engine)

// WithLogger sets the logger used for per-recompute debug records.
// Panics on nil.
func WithLogger(l logrus.FieldLogger) EngineOption {
	if l == nil {
		panic("simulation: WithLogger(nil)")
	}
	return func(e *Engine) {
		e.log = l
	}
}

// New validates p and returns an Engine for it.
func New(p Preset, opts ...EngineOption) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	method, _ := saturation.ParseMethod(p.Method)
	e := &Engine{preset: p, method: method, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Preset returns a copy of the engine's preset.
func (e *Engine) Preset() Preset { return e.preset }

// Recompute maps the control value to the fixed physical parameter, locates
// the saturation point and samples the curve.
func (e *Engine) Recompute(req Request) (Result, error) {
	if !req.Mode.Valid() {
		return Result{}, fmt.Errorf("Recompute: %v: %w", req.Mode, equilibrium.ErrUnknownMode)
	}
	axis := e.preset.Axis(req.Mode)
	fixed := axis.ControlFor(req.RealGas).Map(req.Control)

	state := equilibrium.PhysicalState{RealGas: req.RealGas}
	if req.Mode == equilibrium.TemperatureScan {
		state.Pressure = fixed
	} else {
		state.Temperature = fixed
	}

	m, err := equilibrium.NewModel(req.Mode, state,
		equilibrium.WithCorrelation(e.preset.Correlation),
		equilibrium.WithLiquidScale(axis.LiquidScale),
		equilibrium.WithDeviation(e.preset.Deviation))
	if err != nil {
		return Result{}, fmt.Errorf("Recompute: %w", err)
	}
	rng, err := equilibrium.NewScanRange(req.Mode, axis.Lo, axis.Hi)
	if err != nil {
		return Result{}, fmt.Errorf("Recompute: %w", err)
	}
	unit, err := axis.PressureUnit()
	if err != nil {
		return Result{}, fmt.Errorf("Recompute: %w", err)
	}

	opts := []saturation.Option{saturation.WithMethod(e.method)}
	if e.method == saturation.Scan && axis.Step > 0 {
		opts = append(opts, saturation.WithStep(axis.Step))
	}
	p, ok, err := saturation.Solve(m, rng, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("Recompute: %w", err)
	}
	var sat *saturation.Point
	if ok {
		sat = &p
	}

	c, err := curve.Generate(m, rng, sat, curve.WithSamples(e.preset.Samples))
	if err != nil {
		return Result{}, fmt.Errorf("Recompute: %w", err)
	}

	fields := logrus.Fields{
		"preset":  e.preset.Name,
		"mode":    req.Mode.String(),
		"control": req.Control,
		"fixed":   fixed,
		"realGas": req.RealGas,
		"samples": len(c),
	}
	if sat != nil {
		fields["saturation"] = sat.Location
	}
	e.log.WithFields(fields).Debug("recomputed curve")

	return Result{
		Request:    req,
		State:      state,
		Range:      rng,
		Unit:       unit,
		Curve:      c,
		Saturation: sat,
	}, nil
}

// Sweep recomputes at n evenly spaced control values from 0 to 1 and
// collects the saturation points.
func (e *Engine) Sweep(mode equilibrium.ScanMode, realGas bool, n int) ([]SweepPoint, error) {
	if n < 2 {
		return nil, fmt.Errorf("Sweep: n=%d: %w", n, ErrBadSweep)
	}
	controls := floats.Span(make([]float64, n), 0, 1)
	out := make([]SweepPoint, 0, n)
	for _, v := range controls {
		res, err := e.Recompute(Request{Mode: mode, Control: v, RealGas: realGas})
		if err != nil {
			return nil, fmt.Errorf("Sweep: %w", err)
		}
		out = append(out, SweepPoint{Control: v, Fixed: res.Fixed(), Saturation: res.Saturation})
	}

	return out, nil
}
