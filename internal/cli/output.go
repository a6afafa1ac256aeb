package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/fugacity/curve"
	"github.com/katalvlaran/fugacity/equilibrium"
	"github.com/katalvlaran/fugacity/saturation"
	"github.com/katalvlaran/fugacity/simulation"
)

// Output formats.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

type writer struct {
	out    io.Writer
	format string
}

func newWriter(out io.Writer, format string) (*writer, error) {
	switch format {
	case FormatTable, FormatCSV, FormatJSON:
		return &writer{out: out, format: format}, nil
	default:
		return nil, fmt.Errorf("format %q: %w", format, ErrBadFlag)
	}
}

type saturationReport struct {
	Preset     string            `json:"preset"`
	Mode       string            `json:"mode"`
	Fixed      float64           `json:"fixed"`
	FixedUnit  string            `json:"fixed_unit"`
	RealGas    bool              `json:"real_gas"`
	Unit       string            `json:"unit"`
	Found      bool              `json:"found"`
	Saturation *saturation.Point `json:"saturation,omitempty"`
}

type curveReport struct {
	saturationReport
	Samples curve.Curve `json:"samples"`
}

type sweepRow struct {
	Control    float64           `json:"control"`
	Fixed      float64           `json:"fixed"`
	Found      bool              `json:"found"`
	Saturation *saturation.Point `json:"saturation,omitempty"`
}

type sweepReport struct {
	Preset    string     `json:"preset"`
	Mode      string     `json:"mode"`
	FixedUnit string     `json:"fixed_unit"`
	Points    []sweepRow `json:"points"`
}

// fixedUnit labels the fixed parameter of a scan: a pressure for a
// temperature scan, a temperature for a pressure scan.
func fixedUnit(p simulation.Preset, mode equilibrium.ScanMode) string {
	if mode == equilibrium.PressureScan {
		return "K"
	}
	if u, err := p.Temperature.PressureUnit(); err == nil {
		return u.String()
	}

	return p.Temperature.Unit
}

func report(res simulation.Result, preset simulation.Preset) saturationReport {
	return saturationReport{
		Preset:     preset.Name,
		Mode:       res.Request.Mode.String(),
		Fixed:      res.Fixed(),
		FixedUnit:  fixedUnit(preset, res.Request.Mode),
		RealGas:    res.Request.RealGas,
		Unit:       res.Unit.String(),
		Found:      res.Saturation != nil,
		Saturation: res.Saturation,
	}
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', 8, 64)
}

// location formats an optional saturation point as two cells.
func location(p *saturation.Point) (string, string) {
	if p == nil {
		return "", ""
	}

	return ftoa(p.Location), ftoa(p.Fugacity)
}

func (w *writer) writeJSON(v interface{}) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// rows writes a header and records as CSV or as an aligned table.
func (w *writer) rows(header []string, records [][]string) error {
	if w.format == FormatCSV {
		cw := csv.NewWriter(w.out)
		if err := cw.Write(header); err != nil {
			return err
		}
		if err := cw.WriteAll(records); err != nil {
			return err
		}

		return cw.Error()
	}

	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	line := func(cells []string) {
		for i, c := range cells {
			if c == "" {
				c = "-"
			}
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, c)
		}
		fmt.Fprintln(tw)
	}
	line(header)
	for _, r := range records {
		line(r)
	}

	return tw.Flush()
}

func (w *writer) saturation(res simulation.Result, preset simulation.Preset) error {
	rep := report(res, preset)
	if w.format == FormatJSON {
		return w.writeJSON(rep)
	}
	loc, f := location(res.Saturation)

	return w.rows(
		[]string{"preset", "mode", "fixed", "fixed_unit", "real_gas", "found", "location", "fugacity", "unit"},
		[][]string{{
			rep.Preset, rep.Mode, ftoa(rep.Fixed), rep.FixedUnit,
			strconv.FormatBool(rep.RealGas), strconv.FormatBool(rep.Found), loc, f, rep.Unit,
		}},
	)
}

func (w *writer) curve(res simulation.Result, preset simulation.Preset) error {
	if w.format == FormatJSON {
		return w.writeJSON(curveReport{saturationReport: report(res, preset), Samples: res.Curve})
	}
	if w.format == FormatTable {
		rep := report(res, preset)
		loc, _ := location(res.Saturation)
		if loc == "" {
			loc = "none"
		}
		fmt.Fprintf(w.out, "# %s %s scan, fixed %s %s, real gas %t, saturation %s\n",
			rep.Preset, rep.Mode, ftoa(rep.Fixed), rep.FixedUnit, rep.RealGas, loc)
	}
	records := make([][]string, len(res.Curve))
	for i, s := range res.Curve {
		records[i] = []string{
			ftoa(s.X), ftoa(s.FugacityLiquid), ftoa(s.FugacityVapor), s.Branch.String(), ftoa(s.Fugacity()),
		}
	}

	return w.rows([]string{"x", "f_liquid", "f_vapor", "branch", "fugacity"}, records)
}

func (w *writer) sweep(preset simulation.Preset, mode equilibrium.ScanMode, pts []simulation.SweepPoint) error {
	rep := sweepReport{
		Preset:    preset.Name,
		Mode:      mode.String(),
		FixedUnit: fixedUnit(preset, mode),
		Points:    make([]sweepRow, len(pts)),
	}
	for i, pt := range pts {
		rep.Points[i] = sweepRow{Control: pt.Control, Fixed: pt.Fixed, Found: pt.Saturation != nil, Saturation: pt.Saturation}
	}
	if w.format == FormatJSON {
		return w.writeJSON(rep)
	}
	records := make([][]string, len(rep.Points))
	for i, r := range rep.Points {
		loc, f := location(r.Saturation)
		records[i] = []string{ftoa(r.Control), ftoa(r.Fixed), strconv.FormatBool(r.Found), loc, f}
	}

	return w.rows([]string{"control", "fixed_" + rep.FixedUnit, "found", "location", "fugacity"}, records)
}

func (w *writer) presets(ps []simulation.Preset) error {
	if w.format == FormatJSON {
		return w.writeJSON(ps)
	}
	records := make([][]string, len(ps))
	for i, p := range ps {
		records[i] = []string{
			p.Name, p.Method, strconv.Itoa(p.Samples),
			fmt.Sprintf("%s..%s", ftoa(p.Temperature.Lo), ftoa(p.Temperature.Hi)),
			fmt.Sprintf("%s..%s", ftoa(p.Pressure.Lo), ftoa(p.Pressure.Hi)),
			p.Pressure.Unit, ftoa(p.Pressure.LiquidScale),
		}
	}

	return w.rows([]string{"name", "method", "samples", "temperature_K", "pressure", "pressure_unit", "liquid_scale"}, records)
}
