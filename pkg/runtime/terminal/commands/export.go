package commands

import (
	"fmt"

	"github.com/de-tools/booking-reports/pkg/services/export"
	"github.com/spf13/cobra"
)

type ExportCmd struct {
	output string
	from   string
	to     string

	store StoreProvider
}

func NewExportCmd(store StoreProvider) *cobra.Command {
	ec := &ExportCmd{store: store}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export orders to a CSV file",
		RunE:  ec.run,
	}

	cmd.Flags().StringVarP(&ec.output, "output", "o", "orders_export.csv", "Output CSV path")
	cmd.Flags().StringVar(&ec.from, "from", "", "Start date filter (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ec.to, "to", "", "End date filter (YYYY-MM-DD)")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, _ []string) error {
	store, err := ec.store()
	if err != nil {
		return err
	}

	orders, err := store.Orders()
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	rows, err := export.OrdersCSVFile(ec.output, orders, ec.from, ec.to)
	if err != nil {
		return fmt.Errorf("failed to export orders: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Orders exported to %s (%d rows)\n", ec.output, rows)
	return nil
}
