package mail

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/de-tools/booking-reports/pkg/models/domain"
)

// OrderData is the context both email templates render against.
type OrderData struct {
	Order      domain.Order
	OrderDate  string
	AdminEmail string
}

// NewOrderData stamps the order with the render time in the format the
// templates display.
func NewOrderData(order domain.Order, adminEmail string) OrderData {
	return OrderData{
		Order:      order,
		OrderDate:  time.Now().Format("2006-01-02 15:04:05"),
		AdminEmail: adminEmail,
	}
}

var funcMap = map[string]any{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
}

var (
	confirmationHTML = htmltemplate.Must(htmltemplate.New("confirmation").
				Funcs(funcMap).Parse(confirmationHTMLBody))
	confirmationText = texttemplate.Must(texttemplate.New("confirmation").
				Funcs(funcMap).Parse(confirmationTextBody))
	adminHTML = htmltemplate.Must(htmltemplate.New("admin").
			Funcs(funcMap).Parse(adminHTMLBody))
)

// RenderConfirmation produces the HTML and plain-text bodies of the
// customer order confirmation email.
func RenderConfirmation(data OrderData) (html string, text string, err error) {
	var htmlBuf bytes.Buffer
	if err := confirmationHTML.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to render confirmation HTML: %w", err)
	}

	var textBuf bytes.Buffer
	if err := confirmationText.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to render confirmation text: %w", err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// RenderAdminNotification produces the HTML body of the new-order alert for
// the admin inbox plus a one-line text fallback.
func RenderAdminNotification(data OrderData) (html string, text string, err error) {
	var htmlBuf bytes.Buffer
	if err := adminHTML.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to render admin notification HTML: %w", err)
	}

	text = fmt.Sprintf("New order received: %s from %s - $%.2f",
		data.Order.OrderNumber, data.Order.CustomerName, data.Order.TotalAmount)
	return htmlBuf.String(), text, nil
}

// ConfirmationSubject is the subject line of the customer confirmation.
func ConfirmationSubject(order domain.Order) string {
	return "Order Confirmation - " + order.OrderNumber
}

// AdminSubject is the subject line of the admin notification.
func AdminSubject(order domain.Order) string {
	return fmt.Sprintf("New Order: %s - $%.2f", order.OrderNumber, order.TotalAmount)
}

var confirmationHTMLBody = strings.TrimSpace(`
<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: Arial, sans-serif; margin: 0; padding: 20px; }
.container { max-width: 600px; margin: 0 auto; }
.header { background-color: #2c3e50; color: white; padding: 20px; text-align: center; }
.content { padding: 20px; background-color: #f8f9fa; }
.order-details { background-color: white; padding: 15px; margin: 15px 0; border-radius: 5px; }
.item { border-bottom: 1px solid #eee; padding: 10px 0; }
.total { font-weight: bold; font-size: 18px; color: #2c3e50; }
.footer { text-align: center; color: #666; margin-top: 20px; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>Order Confirmation</h1>
    <p>Thank you for your booking!</p>
  </div>
  <div class="content">
    <h2>Hello {{.Order.CustomerName}}!</h2>
    <p>Your order has been confirmed. Here are the details:</p>
    <div class="order-details">
      <h3>Order Information</h3>
      <p><strong>Order Number:</strong> {{.Order.OrderNumber}}</p>
      <p><strong>Order Date:</strong> {{.OrderDate}}</p>
      <p><strong>Status:</strong> {{.Order.Status}}</p>
    </div>
    <div class="order-details">
      <h3>Items Ordered</h3>
      {{range .Order.Items}}
      <div class="item">
        <strong>{{.ItemName}}</strong>
        {{if .IsRoom}}
        <br>Check-in: {{.CheckInDate}}
        <br>Check-out: {{.CheckOutDate}}
        <br>Nights: {{.Nights}}
        {{end}}
        <br>Quantity: {{.Quantity}}
        <br>Price: ${{money .TotalPrice}}
      </div>
      {{end}}
      <div class="total">Total Amount: ${{money .Order.TotalAmount}}</div>
    </div>
    {{if .Order.Notes}}
    <div class="order-details">
      <h3>Special Notes</h3>
      <p>{{.Order.Notes}}</p>
    </div>
    {{end}}
    <p>We will contact you soon with further details. If you have any questions, please don't hesitate to contact us.</p>
  </div>
  <div class="footer">
    <p>Best regards,<br>Hotel Management Team</p>
    <p>Contact: {{.Order.CustomerPhone}} | Email: {{.AdminEmail}}</p>
  </div>
</div>
</body>
</html>
`)

var confirmationTextBody = strings.TrimSpace(`
ORDER CONFIRMATION

Hello {{.Order.CustomerName}}!

Your order has been confirmed. Here are the details:

Order Number: {{.Order.OrderNumber}}
Order Date: {{.OrderDate}}
Status: {{.Order.Status}}

Items Ordered:
{{range .Order.Items}}- {{.ItemName}}
{{if .IsRoom}}  Check-in: {{.CheckInDate}}, Check-out: {{.CheckOutDate}}, Nights: {{.Nights}}
{{end}}  Quantity: {{.Quantity}}, Price: ${{money .TotalPrice}}
{{end}}
Total Amount: ${{money .Order.TotalAmount}}
{{if .Order.Notes}}
Special Notes: {{.Order.Notes}}
{{end}}
We will contact you soon with further details.

Best regards,
Hotel Management Team
`)

var adminHTMLBody = strings.TrimSpace(`
<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: Arial, sans-serif; margin: 0; padding: 20px; }
.container { max-width: 600px; margin: 0 auto; }
.header { background-color: #e74c3c; color: white; padding: 20px; text-align: center; }
.content { padding: 20px; background-color: #f8f9fa; }
.order-details { background-color: white; padding: 15px; margin: 15px 0; border-radius: 5px; }
.item { border-bottom: 1px solid #eee; padding: 10px 0; }
.total { font-weight: bold; font-size: 18px; color: #e74c3c; }
.urgent { background-color: #fff3cd; border: 1px solid #ffeaa7; padding: 10px; border-radius: 5px; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>New Order Received</h1>
    <p>Action Required</p>
  </div>
  <div class="content">
    <div class="urgent"><strong>A new order has been placed and requires your attention!</strong></div>
    <div class="order-details">
      <h3>Order Information</h3>
      <p><strong>Order Number:</strong> {{.Order.OrderNumber}}</p>
      <p><strong>Order Date:</strong> {{.OrderDate}}</p>
      <p><strong>Status:</strong> {{.Order.Status}}</p>
      <p><strong>Total Amount:</strong> ${{money .Order.TotalAmount}}</p>
    </div>
    <div class="order-details">
      <h3>Customer Information</h3>
      <p><strong>Name:</strong> {{.Order.CustomerName}}</p>
      <p><strong>Phone:</strong> {{.Order.CustomerPhone}}</p>
      <p><strong>Email:</strong> {{.Order.CustomerEmail}}</p>
    </div>
    <div class="order-details">
      <h3>Items Ordered</h3>
      {{range .Order.Items}}
      <div class="item">
        <strong>{{.ItemName}}</strong> ({{.ItemType}})
        {{if .IsRoom}}
        <br>Check-in: {{.CheckInDate}}
        <br>Check-out: {{.CheckOutDate}}
        <br>Nights: {{.Nights}}
        {{end}}
        <br>Quantity: {{.Quantity}}
        <br>Price: ${{money .TotalPrice}}
      </div>
      {{end}}
      <div class="total">Total Amount: ${{money .Order.TotalAmount}}</div>
    </div>
    {{if .Order.Notes}}
    <div class="order-details">
      <h3>Special Notes</h3>
      <p>{{.Order.Notes}}</p>
    </div>
    {{end}}
    <p><strong>Please process this order as soon as possible.</strong></p>
  </div>
</div>
</body>
</html>
`)
