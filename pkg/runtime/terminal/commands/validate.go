package commands

import (
	"fmt"

	"github.com/de-tools/booking-reports/pkg/models/domain"
	"github.com/de-tools/booking-reports/pkg/services/validate"
	"github.com/de-tools/booking-reports/pkg/store/jsonfile"
	"github.com/spf13/cobra"
)

type ValidateCmd struct {
	file string

	store StoreProvider
}

func NewValidateCmd(store StoreProvider) *cobra.Command {
	vc := &ValidateCmd{store: store}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate order records against the required-field rules",
		RunE:  vc.run,
	}

	cmd.Flags().StringVarP(&vc.file, "file", "f", "",
		"Orders JSON file to validate (defaults to the store's orders.json)")

	return cmd
}

func (vc *ValidateCmd) run(cmd *cobra.Command, _ []string) error {
	var orders []domain.Order
	var err error

	if vc.file != "" {
		orders, err = jsonfile.Load[domain.Order](vc.file)
	} else {
		var store *jsonfile.Store
		store, err = vc.store()
		if err != nil {
			return err
		}
		orders, err = store.Orders()
	}
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	if len(orders) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No orders to validate")
		return nil
	}

	out := cmd.OutOrStdout()
	invalid := 0
	for i, order := range orders {
		label := order.OrderNumber
		if label == "" {
			label = fmt.Sprintf("order #%d", i+1)
		}

		ok, errs := validate.Order(order)
		if ok {
			fmt.Fprintf(out, "%s: valid\n", label)
			continue
		}

		invalid++
		fmt.Fprintf(out, "%s: invalid\n", label)
		for _, msg := range errs {
			fmt.Fprintf(out, "  - %s\n", msg)
		}
	}

	fmt.Fprintf(out, "\n%d of %d orders invalid\n", invalid, len(orders))
	return nil
}
