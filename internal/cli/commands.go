package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fugacity/simulation"
)

// curveCmd samples both fugacity curves at one control value.
func (a *app) curveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "curve [control]",
		Short: "Sample the liquid and vapor fugacity curves.",
		Long: `curve maps the control value onto the fixed physical parameter,
locates the saturation point and prints every sample of the scan with both
fugacities and the branch that is stable there.`,
		Args:              cobra.MaximumNArgs(1),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, p, err := a.recompute(args)
			if err != nil {
				return err
			}
			w, err := a.writer(cmd)
			if err != nil {
				return err
			}

			return w.curve(res, p)
		},
	}
}

// saturationCmd prints the saturation point at one control value.
func (a *app) saturationCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "saturation [control]",
		Aliases: []string{"sat"},
		Short:   "Locate the saturation point.",
		Long: `saturation maps the control value onto the fixed physical parameter
and prints where the liquid and vapor fugacities are equal. A system that
stays in one phase over the whole scan range prints found=false.`,
		Args:              cobra.MaximumNArgs(1),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, p, err := a.recompute(args)
			if err != nil {
				return err
			}
			w, err := a.writer(cmd)
			if err != nil {
				return err
			}

			return w.saturation(res, p)
		},
	}
}

// sweepCmd moves the control from 0 to 1.
func (a *app) sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Locate saturation points across the control range.",
		Long: `sweep recomputes at --points evenly spaced control values from 0 to 1
and prints the saturation point of each.`,
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}
			mode, err := a.mode()
			if err != nil {
				return err
			}
			pts, err := eng.Sweep(mode, a.cfg.GetBool("realgas"), a.cfg.GetInt("points"))
			if err != nil {
				return err
			}
			w, err := a.writer(cmd)
			if err != nil {
				return err
			}

			return w.sweep(eng.Preset(), mode, pts)
		},
	}
}

// presetsCmd lists the built-in presets.
func (a *app) presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "presets",
		Short:             "List the built-in presets.",
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := a.writer(cmd)
			if err != nil {
				return err
			}

			return w.presets(simulation.Presets())
		},
	}
}

func (a *app) recompute(args []string) (simulation.Result, simulation.Preset, error) {
	eng, err := a.engine()
	if err != nil {
		return simulation.Result{}, simulation.Preset{}, err
	}
	req, err := a.request(args)
	if err != nil {
		return simulation.Result{}, simulation.Preset{}, err
	}
	res, err := eng.Recompute(req)

	return res, eng.Preset(), err
}

func (a *app) writer(cmd *cobra.Command) (*writer, error) {
	return newWriter(cmd.OutOrStdout(), a.cfg.GetString("format"))
}
