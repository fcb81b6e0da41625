package analytics

import (
	"errors"
	"math"
	"sort"

	"github.com/de-tools/booking-reports/pkg/models/domain"
)

// AllTime is reported for an omitted date-range bound.
const AllTime = "all time"

// TopItemsLimit caps both top-item rankings.
const TopItemsLimit = 10

var (
	// ErrNoOrders is returned when the order collection is empty before
	// filtering. The message is part of the reporting contract.
	ErrNoOrders = errors.New("No orders found")

	// ErrNoOrdersInRange is returned when date filtering leaves nothing.
	ErrNoOrdersInRange = errors.New("No orders found in the specified date range")
)

// FilterByDate keeps orders whose creation date falls inside the given
// bounds. Bounds are YYYY-MM-DD strings compared lexicographically against
// the date portion of created_at; ISO-8601 dates order the same way as
// calendar dates, so no parsing is needed. An empty bound is open.
func FilterByDate(orders []domain.Order, startDate, endDate string) []domain.Order {
	if startDate == "" && endDate == "" {
		return orders
	}

	filtered := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		date := o.CreatedDate()
		if startDate != "" && date < startDate {
			continue
		}
		if endDate != "" && date > endDate {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

// Generate aggregates an order collection into the analytics report:
// revenue totals, status distribution, per-day revenue, top-10 items by
// quantity and by revenue, and the room/product revenue split. Monetary
// outputs are rounded to 2 decimal places.
func Generate(orders []domain.Order, startDate, endDate string) (*domain.AnalyticsReport, error) {
	if len(orders) == 0 {
		return nil, ErrNoOrders
	}

	orders = FilterByDate(orders, startDate, endDate)
	if len(orders) == 0 {
		return nil, ErrNoOrdersInRange
	}

	totalOrders := len(orders)
	var totalRevenue float64
	statusCounts := make(map[string]int)
	dailyRevenue := make(map[string]float64)

	// Per-item accumulators keep first-encounter order so that ties in the
	// rankings stay stable.
	type itemAgg struct {
		name     string
		quantity int
		revenue  float64
	}
	var items []*itemAgg
	itemIndex := make(map[string]*itemAgg)

	var roomRevenue, productRevenue float64

	for _, o := range orders {
		totalRevenue += o.TotalAmount

		status := o.Status
		if status == "" {
			status = "unknown"
		}
		statusCounts[status]++

		dailyRevenue[o.CreatedDate()] += o.TotalAmount

		for _, item := range o.Items {
			name := item.ItemName
			if name == "" {
				name = "Unknown"
			}
			agg, ok := itemIndex[name]
			if !ok {
				agg = &itemAgg{name: name}
				itemIndex[name] = agg
				items = append(items, agg)
			}
			quantity := item.Quantity
			if quantity == 0 {
				quantity = 1
			}
			agg.quantity += quantity
			agg.revenue += item.TotalPrice

			if item.IsRoom() {
				roomRevenue += item.TotalPrice
			} else {
				productRevenue += item.TotalPrice
			}
		}
	}

	averageOrderValue := totalRevenue / float64(totalOrders)

	byQuantity := make([]*itemAgg, len(items))
	copy(byQuantity, items)
	sort.SliceStable(byQuantity, func(i, j int) bool {
		return byQuantity[i].quantity > byQuantity[j].quantity
	})

	byRevenue := make([]*itemAgg, len(items))
	copy(byRevenue, items)
	sort.SliceStable(byRevenue, func(i, j int) bool {
		return byRevenue[i].revenue > byRevenue[j].revenue
	})

	topByQuantity := make([]domain.ItemQuantity, 0, TopItemsLimit)
	for _, agg := range byQuantity {
		if len(topByQuantity) == TopItemsLimit {
			break
		}
		topByQuantity = append(topByQuantity, domain.ItemQuantity{
			ItemName: agg.name,
			Quantity: agg.quantity,
		})
	}

	topByRevenue := make([]domain.ItemRevenue, 0, TopItemsLimit)
	for _, agg := range byRevenue {
		if len(topByRevenue) == TopItemsLimit {
			break
		}
		topByRevenue = append(topByRevenue, domain.ItemRevenue{
			ItemName: agg.name,
			Revenue:  round2(agg.revenue),
		})
	}

	for date, revenue := range dailyRevenue {
		dailyRevenue[date] = round2(revenue)
	}

	return &domain.AnalyticsReport{
		Summary: domain.AnalyticsSummary{
			TotalOrders:       totalOrders,
			TotalRevenue:      round2(totalRevenue),
			AverageOrderValue: round2(averageOrderValue),
			RoomRevenue:       round2(roomRevenue),
			ProductRevenue:    round2(productRevenue),
		},
		StatusDistribution: statusCounts,
		DailyRevenue:       dailyRevenue,
		TopItemsByQuantity: topByQuantity,
		TopItemsByRevenue:  topByRevenue,
		DateRange: domain.DateRange{
			Start: orDefault(startDate, AllTime),
			End:   orDefault(endDate, AllTime),
		},
	}, nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
