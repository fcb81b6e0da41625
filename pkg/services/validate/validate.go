package validate

import (
	"fmt"
	"strings"

	"github.com/de-tools/booking-reports/pkg/models/domain"
)

var requiredFields = []string{
	"order_number",
	"customer_name",
	"customer_phone",
	"total_amount",
	"items",
}

// Order checks a single order against the required-field and range rules.
// Every rule runs; nothing short-circuits. The second return value lists
// one human-readable message per violation, in rule order, with line items
// referenced by their 1-based position.
func Order(o domain.Order) (bool, []string) {
	var errs []string

	for _, field := range requiredFields {
		if missingField(o, field) {
			errs = append(errs, "Missing required field: "+field)
		}
	}

	if o.CustomerPhone != "" {
		valid := (strings.HasPrefix(o.CustomerPhone, "+") || strings.HasPrefix(o.CustomerPhone, "0")) &&
			len(o.CustomerPhone) >= 10
		if !valid {
			errs = append(errs, "Invalid phone number format")
		}
	}

	// A zero amount is reported both as missing and as non-positive, the
	// same double report the required-field pass produces for falsy values.
	if o.TotalAmount <= 0 {
		errs = append(errs, "Total amount must be positive")
	}

	if o.Items != nil {
		if len(o.Items) == 0 {
			errs = append(errs, "Order must contain at least one item")
		}
		for i, item := range o.Items {
			if item.ItemName == "" {
				errs = append(errs, fmt.Sprintf("Item %d: Missing item name", i+1))
			}
			if item.Quantity <= 0 {
				errs = append(errs, fmt.Sprintf("Item %d: Invalid quantity", i+1))
			}
			if item.TotalPrice <= 0 {
				errs = append(errs, fmt.Sprintf("Item %d: Invalid price", i+1))
			}
		}
	}

	return len(errs) == 0, errs
}

func missingField(o domain.Order, field string) bool {
	switch field {
	case "order_number":
		return o.OrderNumber == ""
	case "customer_name":
		return o.CustomerName == ""
	case "customer_phone":
		return o.CustomerPhone == ""
	case "total_amount":
		return o.TotalAmount == 0
	case "items":
		return len(o.Items) == 0
	default:
		return false
	}
}
