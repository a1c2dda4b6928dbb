package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/plasmalab/tokamak"
	"github.com/plasmalab/tokamak/bfield"
	"github.com/plasmalab/tokamak/config"
	"github.com/plasmalab/tokamak/current"
	"github.com/plasmalab/tokamak/dataset"
	"github.com/plasmalab/tokamak/efield"
	"github.com/plasmalab/tokamak/interp"
	"github.com/plasmalab/tokamak/profile"
	"github.com/plasmalab/tokamak/qfactor"
)

var (
	configFile  string
	datasetPath string
	method1d    string
	method2d    string
	q0          float64
	qwall       float64
	psiWall     float64
	psi         float64
	theta       float64
	samples     int
	psiMax      float64
	exportPath  string
	exportFmt   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tokamak",
		Short: "tokamak equilibrium field evaluation",
	}

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "evaluate all field quantities at a point",
		RunE:  runEval,
	}
	evalCmd.Flags().Float64Var(&psi, "psi", 0.01, "flux coordinate")
	evalCmd.Flags().Float64Var(&theta, "theta", 0.0, "poloidal angle")

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot radial profiles",
		RunE:  runProfile,
	}
	profileCmd.Flags().IntVar(&samples, "samples", 80, "number of radial samples")
	profileCmd.Flags().Float64Var(&psiMax, "psi-max", 0, "upper flux bound (default: wall)")
	profileCmd.Flags().Float64Var(&theta, "theta", 0.0, "angle for the field profile")
	profileCmd.Flags().StringVar(&exportPath, "export", "", "export file path")
	profileCmd.Flags().StringVar(&exportFmt, "format", "json", "export format (json or csv)")

	infoCmd := &cobra.Command{
		Use:   "info [dataset]",
		Short: "summarize a dataset file",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure evaluation throughput",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&samples, "samples", 200000, "number of evaluations")

	for _, cmd := range []*cobra.Command{evalCmd, profileCmd, benchCmd} {
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&datasetPath, "dataset", "", "equilibrium dataset path")
		cmd.Flags().StringVar(&method1d, "method1d", "cubic", "radial spline method")
		cmd.Flags().StringVar(&method2d, "method2d", "bicubic", "field-surface spline method")
		cmd.Flags().Float64Var(&q0, "q0", config.DefaultQ0, "q at the magnetic axis (parabolic)")
		cmd.Flags().Float64Var(&qwall, "qwall", config.DefaultQwall, "q at the wall (parabolic)")
		cmd.Flags().Float64Var(&psiWall, "psi-wall", config.DefaultPsiWall, "flux at the wall (parabolic)")
	}

	rootCmd.AddCommand(evalCmd, profileCmd, infoCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig merges the config file with command-line flags; flags win.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dataset") || cfg.Dataset == "" {
		cfg.Dataset = datasetPath
	}
	if cmd.Flags().Changed("method1d") {
		cfg.Method1D = method1d
	}
	if cmd.Flags().Changed("method2d") {
		cfg.Method2D = method2d
	}
	if cmd.Flags().Changed("q0") {
		cfg.Qfactor.Q0 = q0
	}
	if cmd.Flags().Changed("qwall") {
		cfg.Qfactor.Qwall = qwall
	}
	if cmd.Flags().Changed("psi-wall") {
		cfg.Qfactor.PsiWall = psiWall
	}

	// A dataset flag without explicit profiles means a fully numerical run.
	if cfg.Dataset != "" && configFile == "" {
		cfg.Qfactor.Profile = "numerical"
		cfg.Bfield = "numerical"
		cfg.Current = "numerical"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildEquilibrium wires the configured profiles into a runtime-dispatched
// equilibrium.
func buildEquilibrium(cfg *config.Config) (*tokamak.Dynamic, error) {
	var src dataset.Source
	if cfg.NeedsDataset() {
		file, err := dataset.Open(cfg.Dataset)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		src = file
	}

	eq := &tokamak.Dynamic{Efield: efield.NewNoEfield()}

	var err error
	switch cfg.Qfactor.Profile {
	case "unity":
		eq.Qfactor = qfactor.NewUnity()
	case "parabolic":
		eq.Qfactor, err = qfactor.NewParabolic(cfg.Qfactor.Q0, cfg.Qfactor.Qwall, cfg.Qfactor.PsiWall)
	case "numerical":
		eq.Qfactor, err = qfactor.FromSource(src, cfg.Method1D)
	}
	if err != nil {
		return nil, err
	}

	switch cfg.Bfield {
	case "lar":
		eq.Bfield = bfield.NewLAR()
	case "numerical":
		eq.Bfield, err = bfield.FromSource(src, cfg.Method2D)
	}
	if err != nil {
		return nil, err
	}

	switch cfg.Current {
	case "lar":
		eq.Current = current.NewLAR()
	case "numerical":
		eq.Current, err = current.FromSource(src, cfg.Method1D)
	}
	if err != nil {
		return nil, err
	}

	return eq, nil
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	eq, err := buildEquilibrium(cfg)
	if err != nil {
		return err
	}

	psiAcc, thetaAcc := interp.NewAccel(), interp.NewAccel()

	type row struct {
		name string
		eval func() (float64, error)
	}
	rows := []row{
		{"q", func() (float64, error) { return eq.Qfactor.Q(psi, psiAcc) }},
		{"psip", func() (float64, error) { return eq.Qfactor.Psip(psi, psiAcc) }},
		{"B", func() (float64, error) { return eq.Bfield.B(psi, theta, psiAcc, thetaAcc) }},
		{"dB/dtheta", func() (float64, error) { return eq.Bfield.DBDtheta(psi, theta, psiAcc, thetaAcc) }},
		{"dB/dpsi", func() (float64, error) { return eq.Bfield.DBDpsi(psi, theta, psiAcc, thetaAcc) }},
		{"d2B/dpsi2", func() (float64, error) { return eq.Bfield.D2BDpsi2(psi, theta, psiAcc, thetaAcc) }},
		{"I", func() (float64, error) { return eq.Current.I(psi, psiAcc) }},
		{"g", func() (float64, error) { return eq.Current.G(psi, psiAcc) }},
		{"dI/dpsi", func() (float64, error) { return eq.Current.IDer(psi, psiAcc) }},
		{"dg/dpsi", func() (float64, error) { return eq.Current.GDer(psi, psiAcc) }},
		{"Phi", func() (float64, error) { return eq.Efield.Phi(psi, theta, psiAcc, thetaAcc) }},
		{"E", func() (float64, error) { return eq.Efield.E(psi, theta, psiAcc, thetaAcc) }},
	}

	fmt.Printf("psi=%g theta=%g\n\n", psi, theta)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "QUANTITY\tVALUE")
	for _, r := range rows {
		v, err := r.eval()
		if err != nil {
			return fmt.Errorf("%s: %w", r.name, err)
		}
		fmt.Fprintf(w, "%s\t%.12g\n", r.name, v)
	}
	return w.Flush()
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	eq, err := buildEquilibrium(cfg)
	if err != nil {
		return err
	}

	hi := psiMax
	if hi == 0 {
		hi = cfg.Qfactor.PsiWall
	}
	d, err := profile.Sample(eq, 0, hi, samples, theta)
	if err != nil {
		return err
	}

	fmt.Println(asciigraph.Plot(d.Q,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("q(psi), psi in [0, %g]", hi)),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(d.B,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("B(psi, theta=%g)", theta)),
	))

	if exportPath != "" {
		switch exportFmt {
		case "json":
			err = profile.ExportJSON(exportPath, d)
		case "csv":
			err = profile.ExportCSV(exportPath, d)
		default:
			return fmt.Errorf("unknown export format: %s", exportFmt)
		}
		if err != nil {
			return err
		}
		fmt.Printf("\nexported %d samples to %s\n", samples, exportPath)
	}
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	file, err := dataset.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VARIABLE\tSHAPE\tRANGE")
	for _, name := range file.Variables() {
		if data, err := file.Get1D(name); err == nil {
			lo, hi := data[0], data[0]
			for _, v := range data {
				if v < lo {
					lo = v
				}
				if v > hi {
					hi = v
				}
			}
			fmt.Fprintf(w, "%s\t%d\t[%g, %g]\n", name, len(data), lo, hi)
			continue
		}
		if table, err := file.Get2D(name); err == nil {
			cols := 0
			if len(table) > 0 {
				cols = len(table[0])
			}
			fmt.Fprintf(w, "%s\t%dx%d\t\n", name, len(table), cols)
			continue
		}
		fmt.Fprintf(w, "%s\t?\t\n", name)
	}
	return w.Flush()
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	eq, err := buildEquilibrium(cfg)
	if err != nil {
		return err
	}

	hi := cfg.Qfactor.PsiWall
	sweep := func(reuse bool) (time.Duration, error) {
		psiAcc, thetaAcc := interp.NewAccel(), interp.NewAccel()
		start := time.Now()
		for k := 0; k < samples; k++ {
			if !reuse {
				psiAcc, thetaAcc = interp.NewAccel(), interp.NewAccel()
			}
			p := hi * float64(k%1000) / 1000
			if _, err := eq.Bfield.B(p, theta, psiAcc, thetaAcc); err != nil {
				return 0, err
			}
		}
		return time.Since(start), nil
	}

	reused, err := sweep(true)
	if err != nil {
		return err
	}
	fresh, err := sweep(false)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACCELERATORS\tEVALS\tTIME\tEVALS/SEC")
	fmt.Fprintf(w, "reused\t%d\t%v\t%.0f\n", samples, reused, float64(samples)/reused.Seconds())
	fmt.Fprintf(w, "fresh\t%d\t%v\t%.0f\n", samples, fresh, float64(samples)/fresh.Seconds())
	return w.Flush()
}
