package export

import (
	"bytes"
	"testing"

	"github.com/de-tools/booking-reports/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleAnalytics(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	err := reporter.HandleAnalytics(&domain.AnalyticsReport{
		Summary: domain.AnalyticsSummary{
			TotalOrders:       2,
			TotalRevenue:      150.5,
			AverageOrderValue: 75.25,
			RoomRevenue:       100,
			ProductRevenue:    50.5,
		},
		StatusDistribution: map[string]int{"confirmed": 2},
		DailyRevenue:       map[string]float64{"2025-01-10": 150.5},
		TopItemsByQuantity: []domain.ItemQuantity{{ItemName: "Room A", Quantity: 2}},
		TopItemsByRevenue:  []domain.ItemRevenue{{ItemName: "Room A", Revenue: 100}},
		DateRange:          domain.DateRange{Start: "all time", End: "all time"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Order Analytics (all time to all time)")
	assert.Contains(t, out, "Total Orders: 2")
	assert.Contains(t, out, "Total Revenue: 150.50")
	assert.Contains(t, out, "confirmed: 2")
	assert.Contains(t, out, "- Room A: 2")
}

func TestHandleOccupancy(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	err := reporter.HandleOccupancy(&domain.OccupancyReport{
		Period: domain.OccupancyPeriod{StartDate: "2025-01-01", EndDate: "2025-01-31", TotalDays: 31},
		Rooms: domain.RoomStats{
			TotalRooms:               5,
			TotalRoomNightsAvailable: 155,
			BookedRoomNights:         12,
			OccupancyRate:            7.74,
		},
		RoomBookings: map[string][]domain.Booking{
			"Deluxe Room": {{CheckIn: "2025-01-10", CheckOut: "2025-01-13", Nights: 3, OrderNumber: "ORD-001"}},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Room Occupancy (2025-01-01 to 2025-01-31, 31 days)")
	assert.Contains(t, out, "Occupancy Rate: 7.74%")
	assert.Contains(t, out, "Deluxe Room:")
	assert.Contains(t, out, "- ORD-001: 2025-01-10 to 2025-01-13 (3 nights)")
}
