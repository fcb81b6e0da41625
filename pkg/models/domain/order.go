package domain

// Order statuses as they appear in the JSON documents. The enumeration is
// open: any other value is counted under its own label by the analytics
// engine, and only confirmed/completed orders occupy rooms.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ItemTypeRoom is the distinguished line item type. Every other value is
// treated as a product.
const ItemTypeRoom = "room"

type Order struct {
	OrderNumber   string     `json:"order_number"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	CustomerEmail string     `json:"customer_email"`
	TotalAmount   float64    `json:"total_amount"`
	Status        string     `json:"status"`
	CreatedAt     string     `json:"created_at"`
	Notes         string     `json:"notes,omitempty"`
	Items         []LineItem `json:"items"`
}

// CreatedDate returns the calendar date portion of the creation timestamp.
// CreatedAt is an ISO-8601 string, so the first ten characters are the date
// and compare correctly as plain strings.
func (o Order) CreatedDate() string {
	if len(o.CreatedAt) < 10 {
		return o.CreatedAt
	}
	return o.CreatedAt[:10]
}

// Occupies reports whether the order counts towards booked room nights.
func (o Order) Occupies() bool {
	return o.Status == StatusConfirmed || o.Status == StatusCompleted
}

type LineItem struct {
	ItemName     string  `json:"item_name"`
	ItemType     string  `json:"item_type"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	TotalPrice   float64 `json:"total_price"`
	CheckInDate  string  `json:"check_in_date,omitempty"`
	CheckOutDate string  `json:"check_out_date,omitempty"`
	Nights       int     `json:"nights,omitempty"`
}

func (li LineItem) IsRoom() bool {
	return li.ItemType == ItemTypeRoom
}

// Room is an inventory record. Inventory size is the room count; bookings
// relate to rooms only through LineItem.ItemName.
type Room struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Capacity    int     `json:"capacity,omitempty"`
}
