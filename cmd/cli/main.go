package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"launchdash/adapters/excel"
	"launchdash/domain/launch"
	"launchdash/internal/dashboard"
	"launchdash/internal/profiling"
	"launchdash/internal/testkit"
	"launchdash/ports"

	"github.com/spf13/cobra"
)

var dataFile string

func main() {
	rootCmd := &cobra.Command{
		Use:   "launchdash-cli",
		Short: "Compute dashboard charts for SpaceX launch records from the command line",
		Long: `Compute the same chart descriptions the dashboard serves and print them as JSON.

Without --data the built-in demo launches are used.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "CSV or XLSX launch file (default: demo data)")

	rootCmd.AddCommand(
		newPieCmd(),
		newScatterCmd(),
		newInfoCmd(),
		newCallbacksCmd(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newPieCmd() *cobra.Command {
	var site string

	cmd := &cobra.Command{
		Use:   "pie",
		Short: "Success counts per site, or one site's success/failure split",
		Example: `  launchdash-cli pie
  launchdash-cli pie --site "KSC LC-39A" --data spacex_launch_dash.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(dashboard.Aggregate(ds, launch.SiteFilter(site)))
		},
	}

	cmd.Flags().StringVar(&site, "site", string(launch.AllSites), "Launch site, or ALL")
	return cmd
}

func newScatterCmd() *cobra.Command {
	var site string
	var low, high float64

	cmd := &cobra.Command{
		Use:   "scatter",
		Short: "Payload mass against outcome inside a payload window",
		Example: `  launchdash-cli scatter --low 2000 --high 8000
  launchdash-cli scatter --site "CCAFS LC-40" --low 0 --high 5000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			window := ds.PayloadBounds()
			if cmd.Flags().Changed("low") {
				window.Low = low
			}
			if cmd.Flags().Changed("high") {
				window.High = high
			}
			return printJSON(dashboard.FilterForScatter(ds, launch.SiteFilter(site), window))
		},
	}

	cmd.Flags().StringVar(&site, "site", string(launch.AllSites), "Launch site, or ALL")
	cmd.Flags().Float64Var(&low, "low", 0, "Lower payload bound in kg (default: dataset minimum)")
	cmd.Flags().Float64Var(&high, "high", 0, "Upper payload bound in kg (default: dataset maximum)")
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Dataset summary: sites, payload bounds and payload statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			summary, err := profiling.SummarizePayloads(ds)
			if err != nil {
				return err
			}
			return printJSON(map[string]interface{}{
				"source":          ds.Source(),
				"records":         ds.Len(),
				"payload_bounds":  ds.PayloadBounds(),
				"payload_summary": summary,
				"sites":           profiling.SummarizeSites(ds),
			})
		},
	}
}

func newCallbacksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "callbacks",
		Short: "List the registered chart callbacks and their inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			reg, err := dashboard.NewRegistry(ds, dashboard.RegistryOptions{})
			if err != nil {
				return err
			}
			type entry struct {
				Output string   `json:"output"`
				Inputs []string `json:"inputs"`
			}
			var out []entry
			for _, cb := range reg.Callbacks() {
				e := entry{Output: cb.Output.String()}
				for _, in := range cb.Inputs {
					e.Inputs = append(e.Inputs, in.String())
				}
				out = append(out, e)
			}
			return printJSON(out)
		},
	}
}

func loadDataset(ctx context.Context) (*launch.Dataset, error) {
	var src ports.LaunchSource = testkit.NewDemoSource()
	if dataFile != "" {
		src = excel.NewLaunchLoader(dataFile, excel.DefaultColumnMapping())
	}
	records, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return launch.NewDataset(src.Describe(), records)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
