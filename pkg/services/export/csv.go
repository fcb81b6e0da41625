package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/de-tools/booking-reports/pkg/models/domain"
	"github.com/de-tools/booking-reports/pkg/services/analytics"
)

// Columns is the fixed CSV layout: one row per (order, line item) pair.
var Columns = []string{
	"order_number",
	"customer_name",
	"customer_phone",
	"customer_email",
	"total_amount",
	"status",
	"created_at",
	"item_name",
	"item_type",
	"quantity",
	"unit_price",
	"check_in_date",
	"check_out_date",
	"nights",
}

// OrdersCSV writes the filtered orders to w and returns the number of data
// rows written. The header row is always emitted, even for zero rows.
// Orders with no line items produce no rows. The date filter is the same
// lexicographic one the analytics engine applies.
func OrdersCSV(w io.Writer, orders []domain.Order, startDate, endDate string) (int, error) {
	orders = analytics.FilterByDate(orders, startDate, endDate)

	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return 0, fmt.Errorf("failed to write CSV header: %w", err)
	}

	rows := 0
	for _, o := range orders {
		for _, item := range o.Items {
			quantity := item.Quantity
			if quantity == 0 {
				quantity = 1
			}
			nights := ""
			if item.Nights != 0 {
				nights = strconv.Itoa(item.Nights)
			}

			record := []string{
				o.OrderNumber,
				o.CustomerName,
				o.CustomerPhone,
				o.CustomerEmail,
				formatAmount(o.TotalAmount),
				o.Status,
				o.CreatedAt,
				item.ItemName,
				item.ItemType,
				strconv.Itoa(quantity),
				formatAmount(item.UnitPrice),
				item.CheckInDate,
				item.CheckOutDate,
				nights,
			}
			if err := cw.Write(record); err != nil {
				return rows, fmt.Errorf("failed to write CSV row: %w", err)
			}
			rows++
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return rows, fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return rows, nil
}

// OrdersCSVFile exports to a file path, creating parent directories as
// needed and overwriting any existing file.
func OrdersCSVFile(path string, orders []domain.Order, startDate, endDate string) (int, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	rows, err := OrdersCSV(f, orders, startDate, endDate)
	if err != nil {
		return rows, err
	}
	if err := f.Close(); err != nil {
		return rows, fmt.Errorf("failed to close export file: %w", err)
	}
	return rows, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
