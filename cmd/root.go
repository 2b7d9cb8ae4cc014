package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"propertyroi/internal"
	"propertyroi/internal/app"
	"propertyroi/internal/config"
	"propertyroi/internal/domain"
	"propertyroi/internal/export"
	"propertyroi/internal/logger"
	"propertyroi/internal/repository"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath   string
	scenarioPath string
	outDir       string
}

// NewRootCmd wires the command tree. All algorithmic work lives in the
// engines; commands only load inputs, run handlers, print, and export.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "roi",
		Short:         "Compare buying property against investing the same capital",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(context.WithValue(cmd.Context(), logger.ContextKey, logger.New()))
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML file overriding the built-in defaults")
	root.PersistentFlags().StringVar(&opts.scenarioPath, "scenario", "", "saved scenario JSON, a complete parameter set")
	root.PersistentFlags().StringVar(&opts.outDir, "out", "", "directory to export CSV tables into")

	root.AddCommand(
		newRunCmd(opts),
		newScheduleCmd(opts),
		newBenchmarkCmd(opts),
		newGridCmd(opts),
		newScenariosCmd(),
	)
	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

func loadInputs(opts rootOptions) (*domain.InvestmentInputs, error) {
	params, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.scenarioPath != "" {
		scenario, err := repository.NewScenarioRepository().Get(opts.scenarioPath)
		if err != nil {
			return nil, err
		}
		params = &scenario.ParamSet
	}
	return domain.NewInvestmentInputs(*params)
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run owner-occupied, rental and benchmark side by side",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.FromContext(cmd.Context())
			profile := domain.NewRunProfile()
			defer func() {
				profile.End()
				contents, err := profile.ToJSONBytes()
				if err != nil {
					log.Warnw("failed to serialize run profile", "error", err)
				}
				log.Debugw("run finished", "totalMs", profile.TotalMs, "profile", string(contents))
			}()

			in, err := loadInputs(*opts)
			if err != nil {
				return err
			}
			profile.Mark("inputs loaded")

			for _, warning := range in.Warnings {
				log.Warn(warning)
			}

			scenarios := app.ScenarioHandler{}
			owner, err := scenarios.Run(*in, domain.ScenarioOwnerOccupied)
			if err != nil {
				return err
			}
			rental, err := scenarios.Run(*in, domain.ScenarioRental)
			if err != nil {
				return err
			}
			bench, err := internal.RunBenchmark(*in)
			if err != nil {
				return err
			}
			profile.Mark("scenarios assembled")

			fmt.Printf("%-16s %12s %12s %14s %10s %12s %8s\n",
				"scenario", "outlay", "monthly", "final wealth", "multiple", "npv", "irr")
			printRow(string(owner.Kind), owner.InitialOutlay, owner.Metrics)
			printRow(string(rental.Kind), rental.InitialOutlay, rental.Metrics)
			printRow(string(domain.ScenarioBenchmark), in.DownPayment, bench.Metrics)
			fmt.Printf("\nbenchmark value with rent paid from the capital: %.2f\n", bench.ValueWithRentWithdrawals)

			if opts.outDir == "" {
				return nil
			}
			if err := writeCSV(opts.outDir, "owner_occupied.csv", func(w io.Writer) error {
				return export.WriteScenario(w, *owner)
			}); err != nil {
				return err
			}
			if err := writeCSV(opts.outDir, "rental.csv", func(w io.Writer) error {
				return export.WriteScenario(w, *rental)
			}); err != nil {
				return err
			}
			if err := writeCSV(opts.outDir, "benchmark.csv", func(w io.Writer) error {
				return export.WriteBenchmark(w, *bench)
			}); err != nil {
				return err
			}
			profile.Mark("csv exported")
			return nil
		},
	}
}

func newScheduleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Print the loan amortization schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadInputs(*opts)
			if err != nil {
				return err
			}

			schedule, err := internal.BuildSchedule(in.LoanPrincipal(), in.LoanRate, in.LoanYears)
			if err != nil {
				return err
			}
			if len(schedule) == 0 {
				fmt.Println("cash purchase, nothing to amortize")
				return nil
			}
			annual := internal.AggregateAnnual(schedule)

			totalInterest := 0.0
			for _, year := range annual {
				totalInterest += year.Interest
			}
			fmt.Printf("monthly payment %.2f over %d months, total interest %.2f\n\n",
				internal.MonthlyPayment(in.LoanPrincipal(), in.LoanRate, in.LoanYears),
				len(schedule), totalInterest)

			fmt.Printf("%4s %12s %12s %12s %14s\n", "year", "payment", "interest", "principal", "balance")
			for _, year := range annual {
				fmt.Printf("%4d %12.2f %12.2f %12.2f %14.2f\n",
					year.Year, year.Payment, year.Interest, year.Principal, year.EndBalance)
			}

			if opts.outDir == "" {
				return nil
			}
			if err := writeCSV(opts.outDir, "schedule.csv", func(w io.Writer) error {
				return export.WriteSchedule(w, schedule)
			}); err != nil {
				return err
			}
			return writeCSV(opts.outDir, "schedule_annual.csv", func(w io.Writer) error {
				return export.WriteAnnualSchedule(w, annual)
			})
		},
	}
}

func newBenchmarkCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "benchmark",
		Short: "Project the down payment invested at the benchmark rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadInputs(*opts)
			if err != nil {
				return err
			}

			result, err := internal.RunBenchmark(*in)
			if err != nil {
				return err
			}

			fmt.Printf("%4s %14s %16s %14s\n", "year", "value", "cumulative rent", "net of rent")
			for _, year := range result.Years {
				fmt.Printf("%4d %14.2f %16.2f %14.2f\n",
					year.Year, year.Value, year.CumulativeRent, year.NetOfRent)
			}
			fmt.Printf("\nirr %s, capital multiple %.2fx\n",
				formatRate(result.Metrics.IRR), result.Metrics.CapitalMultiple)

			if opts.outDir == "" {
				return nil
			}
			return writeCSV(opts.outDir, "benchmark.csv", func(w io.Writer) error {
				return export.WriteBenchmark(w, *result)
			})
		},
	}
}

func newGridCmd(opts *rootOptions) *cobra.Command {
	var axis string
	var kind string
	var deltas []float64

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Sweep one input across deltas and watch the irr move",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.FromContext(cmd.Context())
			profile := domain.NewRunProfile()
			defer func() {
				profile.End()
				contents, err := profile.ToJSONBytes()
				if err != nil {
					log.Warnw("failed to serialize run profile", "error", err)
				}
				log.Debugw("grid finished", "totalMs", profile.TotalMs, "points", len(deltas), "profile", string(contents))
			}()

			in, err := loadInputs(*opts)
			if err != nil {
				return err
			}
			profile.Mark("inputs loaded")

			handler := app.SensitivityHandler{}
			points, err := handler.Grid(*in, domain.ScenarioKind(kind), app.Axis(axis), deltas)
			if err != nil {
				return err
			}
			profile.Mark("grid swept")

			fmt.Printf("%10s %14s %10s\n", "delta", axis, "irr")
			for _, point := range points {
				fmt.Printf("%+10.4f %14.4f %10s\n", point.Delta, point.ShiftedValue, formatRate(point.IRR))
			}

			if summary, err := app.Summarize(points); err != nil {
				fmt.Println("\nno grid point has a defined irr")
			} else {
				fmt.Printf("\n%d defined points, irr min %.4f max %.4f mean %.4f\n",
					summary.Defined, summary.Min, summary.Max, summary.Mean)
			}

			if opts.outDir == "" {
				return nil
			}
			return writeCSV(opts.outDir, "grid.csv", func(w io.Writer) error {
				return export.WriteGrid(w, points)
			})
		},
	}
	cmd.Flags().StringVar(&axis, "axis", string(app.AxisLoanRate), "input to shift: loan_rate, price_growth_rate or benchmark_return_rate")
	cmd.Flags().StringVar(&kind, "kind", string(domain.ScenarioRental), "scenario to re-run at each point")
	cmd.Flags().Float64SliceVar(&deltas, "deltas", []float64{-0.02, -0.01, 0, 0.01, 0.02}, "absolute shifts applied to the axis")
	return cmd
}

func newScenariosCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List the saved scenario files",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := repository.NewScenarioRepository().List(dir)
			if err != nil {
				return err
			}
			if len(scenarios) == 0 {
				fmt.Println("no scenarios saved")
				return nil
			}
			for _, scenario := range scenarios {
				fmt.Printf("%-36s %-24s price %.0f, rent %.0f\n",
					scenario.ID, scenario.Name, scenario.Price, scenario.MonthlyRent)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "scenarios", "directory holding scenario JSON files")
	return cmd
}

func printRow(name string, outlay float64, metrics domain.Metrics) {
	fmt.Printf("%-16s %12.2f %12.2f %14.2f %9.2fx %12.2f %8s\n",
		name, outlay, metrics.MonthlyPayment, metrics.FinalNetWealth,
		metrics.CapitalMultiple, metrics.NPV, formatRate(metrics.IRR))
}

func formatRate(rate *float64) string {
	if rate == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", 100*(*rate))
}

func writeCSV(dir, name string, write func(io.Writer) error) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	return write(file)
}
