package occupancy

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/de-tools/booking-reports/pkg/models/domain"
)

const dateLayout = "2006-01-02"

// ErrNoRooms is returned when the room inventory is empty. The message is
// part of the reporting contract.
var ErrNoRooms = errors.New("No rooms data found")

// Calculate computes booked versus available room-nights over an inclusive
// calendar range. Only confirmed/completed orders occupy rooms, and only
// through room line items carrying both stay dates. A booking clipped to
// the range contributes the plain day difference of the overlap: the stay
// [start, end] is end-start nights, while the reporting period itself spans
// end-start+1 calendar days.
func Calculate(
	rooms []domain.Room,
	orders []domain.Order,
	startDate, endDate string,
) (*domain.OccupancyReport, error) {
	if len(rooms) == 0 {
		return nil, ErrNoRooms
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s is before start date %s", endDate, startDate)
	}

	totalRooms := len(rooms)
	totalDays := daysBetween(start, end) + 1
	totalRoomNights := totalRooms * totalDays

	bookedRoomNights := 0
	roomBookings := make(map[string][]domain.Booking)

	for _, o := range orders {
		if !o.Occupies() {
			continue
		}
		for _, item := range o.Items {
			if !item.IsRoom() || item.CheckInDate == "" || item.CheckOutDate == "" {
				continue
			}

			checkIn, err := time.Parse(dateLayout, item.CheckInDate)
			if err != nil {
				return nil, fmt.Errorf("order %s: invalid check-in date %q: %w",
					o.OrderNumber, item.CheckInDate, err)
			}
			checkOut, err := time.Parse(dateLayout, item.CheckOutDate)
			if err != nil {
				return nil, fmt.Errorf("order %s: invalid check-out date %q: %w",
					o.OrderNumber, item.CheckOutDate, err)
			}

			bookingStart := laterOf(checkIn, start)
			bookingEnd := earlierOf(checkOut, end)
			if bookingStart.After(bookingEnd) {
				continue
			}

			bookedRoomNights += daysBetween(bookingStart, bookingEnd)

			name := item.ItemName
			if name == "" {
				name = "Unknown"
			}
			nights := item.Nights
			if nights == 0 {
				nights = 1
			}
			roomBookings[name] = append(roomBookings[name], domain.Booking{
				CheckIn:     item.CheckInDate,
				CheckOut:    item.CheckOutDate,
				Nights:      nights,
				OrderNumber: o.OrderNumber,
			})
		}
	}

	occupancyRate := 0.0
	if totalRoomNights > 0 {
		occupancyRate = float64(bookedRoomNights) / float64(totalRoomNights) * 100
	}

	return &domain.OccupancyReport{
		Period: domain.OccupancyPeriod{
			StartDate: startDate,
			EndDate:   endDate,
			TotalDays: totalDays,
		},
		Rooms: domain.RoomStats{
			TotalRooms:               totalRooms,
			TotalRoomNightsAvailable: totalRoomNights,
			BookedRoomNights:         bookedRoomNights,
			OccupancyRate:            round2(occupancyRate),
		},
		RoomBookings: roomBookings,
	}, nil
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
