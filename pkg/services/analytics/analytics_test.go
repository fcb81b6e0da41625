package analytics

import (
	"fmt"
	"testing"

	"github.com/de-tools/booking-reports/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(number, createdAt, status string, amount float64, items ...domain.LineItem) domain.Order {
	return domain.Order{
		OrderNumber: number,
		CreatedAt:   createdAt,
		Status:      status,
		TotalAmount: amount,
		Items:       items,
	}
}

func TestGenerate_EmptyOrders(t *testing.T) {
	_, err := Generate(nil, "", "")

	assert.ErrorIs(t, err, ErrNoOrders)
	assert.EqualError(t, err, "No orders found")
}

func TestGenerate_EmptyDateRange(t *testing.T) {
	orders := []domain.Order{
		order("ORD-001", "2025-01-10T12:00:00Z", "confirmed", 100),
	}

	_, err := Generate(orders, "2025-02-01", "2025-02-28")

	assert.ErrorIs(t, err, ErrNoOrdersInRange)
	assert.EqualError(t, err, "No orders found in the specified date range")
}

func TestGenerate_Totals(t *testing.T) {
	orders := []domain.Order{
		order("ORD-001", "2025-01-10T12:00:00Z", "confirmed", 100.50),
		order("ORD-002", "2025-01-11T09:30:00Z", "pending", 49.50),
		order("ORD-003", "2025-01-11T15:00:00Z", "confirmed", 50),
	}

	report, err := Generate(orders, "", "")
	require.NoError(t, err)

	assert.Equal(t, 3, report.Summary.TotalOrders)
	assert.Equal(t, 200.0, report.Summary.TotalRevenue)
	assert.InDelta(t, 66.67, report.Summary.AverageOrderValue, 0.001)
	assert.Equal(t, map[string]int{"confirmed": 2, "pending": 1}, report.StatusDistribution)
	assert.Equal(t, map[string]float64{
		"2025-01-10": 100.50,
		"2025-01-11": 99.50,
	}, report.DailyRevenue)
	assert.Equal(t, domain.DateRange{Start: "all time", End: "all time"}, report.DateRange)
}

func TestGenerate_RoomProductSplit(t *testing.T) {
	// One order, one room item of 100: room revenue 100, product revenue 0.
	orders := []domain.Order{
		order("ORD-001", "2025-01-10T12:00:00Z", "confirmed", 100,
			domain.LineItem{ItemName: "Room A", ItemType: "room", Quantity: 1, TotalPrice: 100}),
	}

	report, err := Generate(orders, "", "")
	require.NoError(t, err)

	assert.Equal(t, 1, report.Summary.TotalOrders)
	assert.Equal(t, 100.0, report.Summary.AverageOrderValue)
	assert.Equal(t, 100.0, report.Summary.RoomRevenue)
	assert.Equal(t, 0.0, report.Summary.ProductRevenue)
}

func TestGenerate_NonRoomTypesAreProducts(t *testing.T) {
	orders := []domain.Order{
		order("ORD-001", "2025-01-10T12:00:00Z", "confirmed", 180,
			domain.LineItem{ItemName: "Room A", ItemType: "room", Quantity: 1, TotalPrice: 120},
			domain.LineItem{ItemName: "Breakfast", ItemType: "food", Quantity: 2, TotalPrice: 40},
			domain.LineItem{ItemName: "Spa", ItemType: "", Quantity: 1, TotalPrice: 20}),
	}

	report, err := Generate(orders, "", "")
	require.NoError(t, err)

	assert.Equal(t, 120.0, report.Summary.RoomRevenue)
	assert.Equal(t, 60.0, report.Summary.ProductRevenue)
}

func TestGenerate_MissingStatusIsUnknown(t *testing.T) {
	orders := []domain.Order{
		order("ORD-001", "2025-01-10T12:00:00Z", "", 10),
	}

	report, err := Generate(orders, "", "")
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"unknown": 1}, report.StatusDistribution)
}

func TestGenerate_TopItems(t *testing.T) {
	var orders []domain.Order
	// 12 distinct items; item-00 has the highest quantity, item-11 the
	// highest revenue.
	for i := 0; i < 12; i++ {
		orders = append(orders, order("ORD", "2025-01-10T12:00:00Z", "confirmed", 10,
			domain.LineItem{
				ItemName:   fmt.Sprintf("item-%02d", i),
				ItemType:   "product",
				Quantity:   20 - i,
				TotalPrice: float64(10 * (i + 1)),
			}))
	}

	report, err := Generate(orders, "", "")
	require.NoError(t, err)

	require.Len(t, report.TopItemsByQuantity, 10)
	require.Len(t, report.TopItemsByRevenue, 10)

	assert.Equal(t, "item-00", report.TopItemsByQuantity[0].ItemName)
	assert.Equal(t, 20, report.TopItemsByQuantity[0].Quantity)
	for i := 1; i < len(report.TopItemsByQuantity); i++ {
		assert.GreaterOrEqual(t,
			report.TopItemsByQuantity[i-1].Quantity,
			report.TopItemsByQuantity[i].Quantity)
	}

	assert.Equal(t, "item-11", report.TopItemsByRevenue[0].ItemName)
	assert.Equal(t, 120.0, report.TopItemsByRevenue[0].Revenue)
	for i := 1; i < len(report.TopItemsByRevenue); i++ {
		assert.GreaterOrEqual(t,
			report.TopItemsByRevenue[i-1].Revenue,
			report.TopItemsByRevenue[i].Revenue)
	}
}

func TestGenerate_TopItemsStableTies(t *testing.T) {
	orders := []domain.Order{
		order("ORD-001", "2025-01-10T12:00:00Z", "confirmed", 30,
			domain.LineItem{ItemName: "Bravo", ItemType: "product", Quantity: 5, TotalPrice: 10},
			domain.LineItem{ItemName: "Alpha", ItemType: "product", Quantity: 5, TotalPrice: 10},
			domain.LineItem{ItemName: "Charlie", ItemType: "product", Quantity: 5, TotalPrice: 10}),
	}

	report, err := Generate(orders, "", "")
	require.NoError(t, err)

	// Ties keep first-encounter order.
	names := []string{
		report.TopItemsByQuantity[0].ItemName,
		report.TopItemsByQuantity[1].ItemName,
		report.TopItemsByQuantity[2].ItemName,
	}
	assert.Equal(t, []string{"Bravo", "Alpha", "Charlie"}, names)
}

func TestGenerate_UnnamedItemsAggregateUnderUnknown(t *testing.T) {
	orders := []domain.Order{
		order("ORD-001", "2025-01-10T12:00:00Z", "confirmed", 20,
			domain.LineItem{ItemName: "", ItemType: "product", Quantity: 1, TotalPrice: 5},
			domain.LineItem{ItemName: "", ItemType: "product", Quantity: 2, TotalPrice: 15}),
	}

	report, err := Generate(orders, "", "")
	require.NoError(t, err)

	require.Len(t, report.TopItemsByQuantity, 1)
	assert.Equal(t, "Unknown", report.TopItemsByQuantity[0].ItemName)
	assert.Equal(t, 3, report.TopItemsByQuantity[0].Quantity)
}

func TestGenerate_QuantityDefaultsToOne(t *testing.T) {
	orders := []domain.Order{
		order("ORD-001", "2025-01-10T12:00:00Z", "confirmed", 50,
			domain.LineItem{ItemName: "Spa", ItemType: "service", TotalPrice: 50}),
	}

	report, err := Generate(orders, "", "")
	require.NoError(t, err)

	require.Len(t, report.TopItemsByQuantity, 1)
	assert.Equal(t, 1, report.TopItemsByQuantity[0].Quantity)
}

func TestFilterByDate(t *testing.T) {
	orders := []domain.Order{
		order("ORD-001", "2025-01-05T10:00:00Z", "confirmed", 10),
		order("ORD-002", "2025-01-10T10:00:00Z", "confirmed", 20),
		order("ORD-003", "2025-01-15T10:00:00Z", "confirmed", 30),
	}

	tests := []struct {
		name     string
		from, to string
		expected []string
	}{
		{name: "no bounds is a no-op", from: "", to: "",
			expected: []string{"ORD-001", "ORD-002", "ORD-003"}},
		{name: "lower bound inclusive", from: "2025-01-10", to: "",
			expected: []string{"ORD-002", "ORD-003"}},
		{name: "upper bound inclusive", from: "", to: "2025-01-10",
			expected: []string{"ORD-001", "ORD-002"}},
		{name: "both bounds", from: "2025-01-06", to: "2025-01-14",
			expected: []string{"ORD-002"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterByDate(orders, tt.from, tt.to)

			var numbers []string
			for _, o := range filtered {
				numbers = append(numbers, o.OrderNumber)
			}
			assert.Equal(t, tt.expected, numbers)
		})
	}
}

func TestGenerate_DateRangeEcho(t *testing.T) {
	orders := []domain.Order{
		order("ORD-001", "2025-01-10T12:00:00Z", "confirmed", 10),
	}

	report, err := Generate(orders, "2025-01-01", "")
	require.NoError(t, err)

	assert.Equal(t, domain.DateRange{Start: "2025-01-01", End: "all time"}, report.DateRange)
}

func TestGenerate_Rounding(t *testing.T) {
	orders := []domain.Order{
		order("ORD-001", "2025-01-10T12:00:00Z", "confirmed", 10.111),
		order("ORD-002", "2025-01-10T13:00:00Z", "confirmed", 10.115),
	}

	report, err := Generate(orders, "", "")
	require.NoError(t, err)

	assert.Equal(t, 20.23, report.Summary.TotalRevenue)
	assert.Equal(t, 10.11, report.Summary.AverageOrderValue)
	assert.Equal(t, 20.23, report.DailyRevenue["2025-01-10"])
}
