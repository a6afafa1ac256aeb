package cli_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fugacity/equilibrium"
	"github.com/katalvlaran/fugacity/internal/cli"
	"github.com/katalvlaran/fugacity/simulation"
)

// run executes one fresh command tree and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := cli.New()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func readCSV(t *testing.T, s string) [][]string {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(s)).ReadAll()
	require.NoError(t, err)

	return records
}

type jsonPoint struct {
	Location float64 `json:"location"`
	Fugacity float64 `json:"fugacity"`
}

type jsonReport struct {
	Preset     string     `json:"preset"`
	Mode       string     `json:"mode"`
	Fixed      float64    `json:"fixed"`
	FixedUnit  string     `json:"fixed_unit"`
	RealGas    bool       `json:"real_gas"`
	Unit       string     `json:"unit"`
	Found      bool       `json:"found"`
	Saturation *jsonPoint `json:"saturation"`
	Samples    []struct {
		X      float64 `json:"x"`
		Branch string  `json:"branch"`
	} `json:"samples"`
}

func TestPresets_Table(t *testing.T) {
	out, _, err := run(t, "presets")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "name"))
	assert.True(t, strings.HasPrefix(lines[1], "classic"))
	assert.True(t, strings.HasPrefix(lines[2], "scaled"))
	assert.Contains(t, lines[2], "MPa")
}

func TestSaturation_CSV(t *testing.T) {
	v := (equilibrium.ReferencePressureBar - 0.2) / 1.3
	out, _, err := run(t, "saturation", "--format", "csv", "-m", "temperature", strconv.FormatFloat(v, 'g', -1, 64))
	require.NoError(t, err)

	records := readCSV(t, out)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"preset", "mode", "fixed", "fixed_unit", "real_gas", "found", "location", "fugacity", "unit"}, records[0])
	row := records[1]
	assert.Equal(t, "classic", row[0])
	assert.Equal(t, "temperature", row[1])
	assert.Equal(t, "true", row[5])
	loc, err := strconv.ParseFloat(row[6], 64)
	require.NoError(t, err)
	assert.InDelta(t, 373.0, loc, 1e-3)
}

func TestSaturation_SinglePhaseJSON(t *testing.T) {
	out, _, err := run(t, "sat", "-m", "pressure", "-r", "-f", "json", "0")
	require.NoError(t, err)

	var rep jsonReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.False(t, rep.Found)
	assert.Nil(t, rep.Saturation)
	assert.True(t, rep.RealGas)
	assert.Equal(t, "K", rep.FixedUnit)
	assert.InDelta(t, 450.0, rep.Fixed, 1e-12)
}

func TestCurve_JSON(t *testing.T) {
	out, _, err := run(t, "curve", "-p", "scaled", "-m", "pressure", "-n", "5", "-f", "json", "--control", "0.25")
	require.NoError(t, err)

	var rep jsonReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "scaled", rep.Preset)
	assert.Equal(t, "MPa", rep.Unit)
	assert.InDelta(t, 358+37*0.25, rep.Fixed, 1e-9)
	require.Len(t, rep.Samples, 5)
	assert.Equal(t, 0.0, rep.Samples[0].X)
	assert.Equal(t, 3.0, rep.Samples[4].X)
	assert.Equal(t, "vapor", rep.Samples[0].Branch)
	assert.Equal(t, "liquid", rep.Samples[4].Branch)
	require.NotNil(t, rep.Saturation)
}

func TestCurve_TableAndCSV(t *testing.T) {
	out, _, err := run(t, "curve", "-n", "3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "# classic temperature scan"))
	assert.True(t, strings.HasPrefix(lines[1], "x"))

	out, _, err = run(t, "curve", "-n", "3", "-f", "csv")
	require.NoError(t, err)
	records := readCSV(t, out)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"x", "f_liquid", "f_vapor", "branch", "fugacity"}, records[0])
}

func TestSweep_CSV(t *testing.T) {
	out, _, err := run(t, "sweep", "-m", "pressure", "--points", "3", "-f", "csv")
	require.NoError(t, err)

	records := readCSV(t, out)
	require.Len(t, records, 4)
	assert.Equal(t, "fixed_K", records[0][1])
	for _, r := range records[1:] {
		assert.Equal(t, "true", r[2])
	}
	assert.Equal(t, "350", records[1][1])
	assert.Equal(t, "400", records[3][1])
}

func TestEnvironment(t *testing.T) {
	t.Setenv("FUGACITY_PRESET", "scaled")
	t.Setenv("FUGACITY_CONTROL", "1")

	out, _, err := run(t, "saturation", "-f", "json")
	require.NoError(t, err)
	var rep jsonReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "scaled", rep.Preset)
	assert.InDelta(t, 0.15, rep.Fixed, 1e-15)

	// flags win over the environment
	out, _, err = run(t, "saturation", "-f", "json", "-p", "classic")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "classic", rep.Preset)
}

func TestConfigFile_CustomPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fugacity.toml")
	cfg := `preset = "narrow"
format = "json"

[presets.narrow]
samples = 7
method = "brent"

[presets.narrow.temperature]
lo = 300
hi = 380
`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	out, _, err := run(t, "curve", "--config", path)
	require.NoError(t, err)

	var rep jsonReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "narrow", rep.Preset)
	require.Len(t, rep.Samples, 7)
	assert.Equal(t, 300.0, rep.Samples[0].X)
	assert.Equal(t, 380.0, rep.Samples[6].X)
	require.NotNil(t, rep.Saturation)
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "saturation", "--loglevel", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "recomputed curve")
	assert.Contains(t, stderr, "preset=classic")
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want error
	}{
		{"format", []string{"presets", "-f", "xml"}, cli.ErrBadFlag},
		{"mode", []string{"saturation", "-m", "volume"}, cli.ErrBadFlag},
		{"control", []string{"saturation", "abc"}, cli.ErrBadFlag},
		{"method", []string{"curve", "--method", "newton"}, cli.ErrBadFlag},
		{"loglevel", []string{"presets", "--loglevel", "loud"}, cli.ErrBadFlag},
		{"preset", []string{"curve", "-p", "nope"}, simulation.ErrUnknownPreset},
		{"points", []string{"sweep", "--points", "1"}, simulation.ErrBadSweep},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, tc.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}
