package commands

import (
	"errors"
	"fmt"

	"github.com/de-tools/booking-reports/pkg/models/api"
	"github.com/de-tools/booking-reports/pkg/runtime/terminal/export"
	"github.com/de-tools/booking-reports/pkg/services/occupancy"
	"github.com/de-tools/booking-reports/pkg/store/jsonfile"
	"github.com/spf13/cobra"
)

type OccupancyCmd struct {
	from   string
	to     string
	format string
	save   string

	store    StoreProvider
	reporter *export.Reporter
}

func NewOccupancyCmd(store StoreProvider, reporter *export.Reporter) *cobra.Command {
	oc := &OccupancyCmd{store: store, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "occupancy",
		Short: "Calculate room occupancy for a date range",
		RunE:  oc.run,
	}

	cmd.Flags().StringVar(&oc.from, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&oc.to, "to", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&oc.format, "format", "json", "Output format: json or text")
	cmd.Flags().StringVar(&oc.save, "save", "", "Also save the JSON report to this path")

	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (oc *OccupancyCmd) run(cmd *cobra.Command, _ []string) error {
	store, err := oc.store()
	if err != nil {
		return err
	}

	rooms, err := store.Rooms()
	if err != nil {
		return fmt.Errorf("failed to load rooms: %w", err)
	}
	orders, err := store.Orders()
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	report, err := occupancy.Calculate(rooms, orders, oc.from, oc.to)
	if err != nil {
		if errors.Is(err, occupancy.ErrNoRooms) {
			return printJSON(cmd, api.Error{Error: err.Error()})
		}
		return err
	}

	if oc.save != "" {
		if err := jsonfile.Save(oc.save, report); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
	}

	if oc.format == "text" {
		return oc.reporter.HandleOccupancy(report)
	}
	return printJSON(cmd, report)
}
