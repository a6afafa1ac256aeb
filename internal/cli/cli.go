// SPDX-License-Identifier: MIT

// Package cli is the command-line front end of the fugacity kernel.
//
// Configuration comes from command-line flags, an optional config file
// (--config, any format viper reads) and FUGACITY_* environment variables,
// in that order of precedence. A config file may also define or override
// presets under a "presets.<name>" table.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/fugacity/equilibrium"
	"github.com/katalvlaran/fugacity/saturation"
	"github.com/katalvlaran/fugacity/simulation"
)

// ErrBadFlag indicates a flag or config value that cannot be used.
var ErrBadFlag = errors.New("fugacity: invalid option")

type option struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

// app holds one command tree and the configuration bound to it.
type app struct {
	cfg  *viper.Viper
	log  *logrus.Logger
	root *cobra.Command
}

// New builds the fugacity command tree. Every call returns an independent
// tree with its own configuration.
func New() *cobra.Command {
	a := &app{cfg: viper.New(), log: logrus.New()}
	a.root = &cobra.Command{
		Use:   "fugacity",
		Short: "Saturation points and fugacity curves of a single component.",
		Long: `fugacity locates the point where the liquid and vapor fugacity curves
of a single component cross and samples both curves over a scan range.

A scan either varies temperature at a fixed pressure or varies pressure at a
fixed temperature. The fixed value comes from a control value in [0, 1] that
the chosen preset maps onto a physical range.

Configuration can be changed with a configuration file (--config), with
command-line flags, or with environment variables named 'FUGACITY_var'.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setConfig(cmd)
		},
	}

	curveCmd := a.curveCmd()
	satCmd := a.saturationCmd()
	sweepCmd := a.sweepCmd()
	presetsCmd := a.presetsCmd()
	a.root.AddCommand(curveCmd, satCmd, sweepCmd, presetsCmd)

	root := a.root.PersistentFlags()
	scans := []*pflag.FlagSet{curveCmd.Flags(), satCmd.Flags(), sweepCmd.Flags()}
	points := []*pflag.FlagSet{curveCmd.Flags(), satCmd.Flags()}

	options := []option{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{root},
		},
		{
			name: "loglevel",
			usage: `
              loglevel sets the logrus level (panic, fatal, error, warn,
              info, debug, trace). Recomputations log at debug.`,
			defaultVal: "warn",
			flagsets:   []*pflag.FlagSet{root},
		},
		{
			name: "preset",
			usage: `
              preset names the plot variant: "classic" or "scaled", or a
              preset defined under presets.<name> in the config file.`,
			shorthand:  "p",
			defaultVal: "classic",
			flagsets:   []*pflag.FlagSet{root},
		},
		{
			name: "format",
			usage: `
              format selects the output format: table, csv or json.`,
			shorthand:  "f",
			defaultVal: "table",
			flagsets:   []*pflag.FlagSet{root},
		},
		{
			name: "mode",
			usage: `
              mode selects the scanned variable: temperature or pressure.`,
			shorthand:  "m",
			defaultVal: "temperature",
			flagsets:   scans,
		},
		{
			name: "realgas",
			usage: `
              realgas enables the real-gas vapor correction.`,
			shorthand:  "r",
			defaultVal: false,
			flagsets:   scans,
		},
		{
			name: "method",
			usage: `
              method overrides the preset's root search: scan, bisection,
              brent or analytic. Empty keeps the preset's method.`,
			defaultVal: "",
			flagsets:   scans,
		},
		{
			name: "control",
			usage: `
              control is the normalized control value in [0, 1]. A
              positional argument takes precedence.`,
			shorthand:  "c",
			defaultVal: 0.5,
			flagsets:   points,
		},
		{
			name: "samples",
			usage: `
              samples overrides the preset's number of curve samples.
              Zero keeps the preset's value.`,
			shorthand:  "n",
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{curveCmd.Flags()},
		},
		{
			name: "points",
			usage: `
              points is the number of control values visited by sweep.`,
			defaultVal: 11,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
	}

	a.cfg.SetEnvPrefix("FUGACITY")
	a.cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // the flag exists already; share it
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, v, option.usage)
			case bool:
				set.BoolP(option.name, option.shorthand, v, option.usage)
			case int:
				set.IntP(option.name, option.shorthand, v, option.usage)
			case float64:
				set.Float64P(option.name, option.shorthand, v, option.usage)
			default:
				panic("invalid argument type")
			}
		}
	}

	// Flags are bound right before a command runs so that each
	// subcommand's own FlagSet feeds the configuration.
	return a.root
}

// bindFlags binds every flag visible to cmd to the configuration.
func (a *app) bindFlags(cmd *cobra.Command) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err == nil {
			err = a.cfg.BindPFlag(f.Name, f)
		}
	})
	cmd.InheritedFlags().VisitAll(func(f *pflag.Flag) {
		if err == nil {
			err = a.cfg.BindPFlag(f.Name, f)
		}
	})

	return err
}

// setConfig binds flags, reads the configuration file if there is one and
// configures the logger.
func (a *app) setConfig(cmd *cobra.Command) error {
	if err := a.bindFlags(cmd); err != nil {
		return err
	}
	if cfgpath := a.cfg.GetString("config"); cfgpath != "" {
		a.cfg.SetConfigFile(cfgpath)
		if err := a.cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("fugacity: problem reading configuration file: %w", err)
		}
	}

	level, err := logrus.ParseLevel(a.cfg.GetString("loglevel"))
	if err != nil {
		return fmt.Errorf("loglevel: %w: %w", ErrBadFlag, err)
	}
	a.log.SetLevel(level)
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return nil
}

// preset resolves the configured preset, applies any config-file overlay
// and the command-line overrides.
func (a *app) preset() (simulation.Preset, error) {
	name := a.cfg.GetString("preset")
	p, err := simulation.Lookup(name)
	key := "presets." + name
	switch {
	case err == nil:
	case errors.Is(err, simulation.ErrUnknownPreset) && a.cfg.IsSet(key):
		p = simulation.Classic()
	default:
		return simulation.Preset{}, err
	}
	if a.cfg.IsSet(key) {
		if err := a.cfg.UnmarshalKey(key, &p); err != nil {
			return simulation.Preset{}, fmt.Errorf("%s: %w: %w", key, ErrBadFlag, err)
		}
	}
	p.Name = name

	if method := a.cfg.GetString("method"); method != "" {
		if _, err := saturation.ParseMethod(method); err != nil {
			return simulation.Preset{}, fmt.Errorf("method: %w: %w", ErrBadFlag, err)
		}
		p.Method = method
	}
	samples, err := cast.ToIntE(a.cfg.Get("samples"))
	if err != nil {
		return simulation.Preset{}, fmt.Errorf("samples: %w: %w", ErrBadFlag, err)
	}
	if samples > 0 {
		p.Samples = samples
	}

	return p, nil
}

// engine builds an Engine for the configured preset.
func (a *app) engine() (*simulation.Engine, error) {
	p, err := a.preset()
	if err != nil {
		return nil, err
	}

	return simulation.New(p, simulation.WithLogger(a.log.WithField("cmd", "fugacity")))
}

// mode parses the configured scan mode.
func (a *app) mode() (equilibrium.ScanMode, error) {
	m, err := equilibrium.ParseScanMode(a.cfg.GetString("mode"))
	if err != nil {
		return 0, fmt.Errorf("mode: %w: %w", ErrBadFlag, err)
	}

	return m, nil
}

// control returns the positional control value if there is one, the
// configured one otherwise. Values from the environment arrive as strings.
func (a *app) control(args []string) (float64, error) {
	var raw interface{} = a.cfg.Get("control")
	if len(args) > 0 {
		raw = args[0]
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, fmt.Errorf("control %v: %w: %w", raw, ErrBadFlag, err)
	}

	return v, nil
}

// request assembles a simulation.Request from the configuration.
func (a *app) request(args []string) (simulation.Request, error) {
	mode, err := a.mode()
	if err != nil {
		return simulation.Request{}, err
	}
	v, err := a.control(args)
	if err != nil {
		return simulation.Request{}, err
	}

	return simulation.Request{Mode: mode, Control: v, RealGas: a.cfg.GetBool("realgas")}, nil
}
