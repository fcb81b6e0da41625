package domain

// AnalyticsReport is the aggregate view over a (possibly date-filtered)
// order collection. JSON tags mirror the persisted report document.
type AnalyticsReport struct {
	Summary            AnalyticsSummary   `json:"summary"`
	StatusDistribution map[string]int     `json:"order_status_distribution"`
	DailyRevenue       map[string]float64 `json:"daily_revenue"`
	TopItemsByQuantity []ItemQuantity     `json:"top_items_by_quantity"`
	TopItemsByRevenue  []ItemRevenue      `json:"top_items_by_revenue"`
	DateRange          DateRange          `json:"date_range"`
}

type AnalyticsSummary struct {
	TotalOrders       int     `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
	RoomRevenue       float64 `json:"room_revenue"`
	ProductRevenue    float64 `json:"product_revenue"`
}

type ItemQuantity struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

type ItemRevenue struct {
	ItemName string  `json:"item_name"`
	Revenue  float64 `json:"revenue"`
}

// DateRange carries the requested bounds; an omitted bound is reported as
// the literal "all time".
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// OccupancyReport combines room inventory with room line items over an
// inclusive calendar period.
type OccupancyReport struct {
	Period       OccupancyPeriod      `json:"period"`
	Rooms        RoomStats            `json:"rooms"`
	RoomBookings map[string][]Booking `json:"room_bookings"`
}

type OccupancyPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	TotalDays int    `json:"total_days"`
}

type RoomStats struct {
	TotalRooms               int     `json:"total_rooms"`
	TotalRoomNightsAvailable int     `json:"total_room_nights_available"`
	BookedRoomNights         int     `json:"booked_room_nights"`
	OccupancyRate            float64 `json:"occupancy_rate"`
}

type Booking struct {
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Nights      int    `json:"nights"`
	OrderNumber string `json:"order_number"`
}
