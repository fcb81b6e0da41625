package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/booking-reports/pkg/models/domain"
)

// Reporter renders analytics and occupancy reports as formatted text.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (r *Reporter) HandleAnalytics(report *domain.AnalyticsReport) error {
	tmpl := `
Order Analytics ({{.DateRange.Start}} to {{.DateRange.End}})

Total Orders: {{.Summary.TotalOrders}}
Total Revenue: {{printf "%.2f" .Summary.TotalRevenue}}
Average Order Value: {{printf "%.2f" .Summary.AverageOrderValue}}
Room Revenue: {{printf "%.2f" .Summary.RoomRevenue}}
Product Revenue: {{printf "%.2f" .Summary.ProductRevenue}}

=== Order Status Distribution ===
{{range $status, $count := .StatusDistribution}}{{$status}}: {{$count}}
{{end}}
=== Daily Revenue ===
{{range $date, $revenue := .DailyRevenue}}{{$date}}: {{printf "%.2f" $revenue}}
{{end}}
=== Top Items by Quantity ===
{{range .TopItemsByQuantity}}- {{.ItemName}}: {{.Quantity}}
{{end}}
=== Top Items by Revenue ===
{{range .TopItemsByRevenue}}- {{.ItemName}}: {{printf "%.2f" .Revenue}}
{{end}}`

	t, err := template.New("analytics").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, report)
}

func (r *Reporter) HandleOccupancy(report *domain.OccupancyReport) error {
	tmpl := `
Room Occupancy ({{.Period.StartDate}} to {{.Period.EndDate}}, {{.Period.TotalDays}} days)

Total Rooms: {{.Rooms.TotalRooms}}
Available Room Nights: {{.Rooms.TotalRoomNightsAvailable}}
Booked Room Nights: {{.Rooms.BookedRoomNights}}
Occupancy Rate: {{printf "%.2f" .Rooms.OccupancyRate}}%

=== Bookings per Room ===
{{range $room, $bookings := .RoomBookings}}{{$room}}:
{{range $bookings}}  - {{.OrderNumber}}: {{.CheckIn}} to {{.CheckOut}} ({{.Nights}} nights)
{{end}}{{end}}`

	t, err := template.New("occupancy").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, report)
}
