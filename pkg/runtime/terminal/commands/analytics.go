package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/de-tools/booking-reports/pkg/models/api"
	"github.com/de-tools/booking-reports/pkg/runtime/terminal/export"
	"github.com/de-tools/booking-reports/pkg/services/analytics"
	"github.com/de-tools/booking-reports/pkg/store/jsonfile"
	"github.com/spf13/cobra"
)

// StoreProvider defers store construction until flags are parsed.
type StoreProvider func() (*jsonfile.Store, error)

type AnalyticsCmd struct {
	from   string
	to     string
	format string
	save   string

	store    StoreProvider
	reporter *export.Reporter
}

func NewAnalyticsCmd(store StoreProvider, reporter *export.Reporter) *cobra.Command {
	ac := &AnalyticsCmd{store: store, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Generate order analytics for a date range",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.from, "from", "", "Start date (YYYY-MM-DD, empty for all time)")
	cmd.Flags().StringVar(&ac.to, "to", "", "End date (YYYY-MM-DD, empty for all time)")
	cmd.Flags().StringVar(&ac.format, "format", "json", "Output format: json or text")
	cmd.Flags().StringVar(&ac.save, "save", "", "Also save the JSON report to this path")

	return cmd
}

func (ac *AnalyticsCmd) run(cmd *cobra.Command, _ []string) error {
	store, err := ac.store()
	if err != nil {
		return err
	}

	orders, err := store.Orders()
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	report, err := analytics.Generate(orders, ac.from, ac.to)
	if err != nil {
		if errors.Is(err, analytics.ErrNoOrders) || errors.Is(err, analytics.ErrNoOrdersInRange) {
			return printJSON(cmd, api.Error{Error: err.Error()})
		}
		return err
	}

	if ac.save != "" {
		if err := jsonfile.Save(ac.save, report); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
	}

	if ac.format == "text" {
		return ac.reporter.HandleAnalytics(report)
	}
	return printJSON(cmd, report)
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
