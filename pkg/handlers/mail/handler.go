package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/de-tools/booking-reports/pkg/models/api"
	"github.com/de-tools/booking-reports/pkg/models/domain"
	mailsvc "github.com/de-tools/booking-reports/pkg/services/mail"
	"github.com/rs/zerolog"
)

type Handler struct {
	sender     mailsvc.Sender
	adminEmail string
}

func NewHandler(sender mailsvc.Sender, adminEmail string) *Handler {
	return &Handler{
		sender:     sender,
		adminEmail: adminEmail,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, api.Health{
		Status:    "ok",
		Message:   "Email service is running",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// SendOrderConfirmation renders and delivers the customer confirmation
// email for the order in the request body.
func (h *Handler) SendOrderConfirmation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	// An unreadable payload and a missing address report the same way: the
	// caller did not hand over a deliverable order.
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, api.Error{Error: "Customer email is required"})
		return
	}
	if order.CustomerEmail == "" {
		writeJSON(ctx, w, http.StatusBadRequest, api.Error{Error: "Customer email is required"})
		return
	}

	data := mailsvc.NewOrderData(order, h.adminEmail)
	html, text, err := mailsvc.RenderConfirmation(data)
	if err != nil {
		logger.Error().Err(err).Str("order", order.OrderNumber).Msg("failed to render confirmation")
		writeJSON(ctx, w, http.StatusInternalServerError, api.Error{Error: "Failed to render email"})
		return
	}

	err = h.sender.Send(order.CustomerEmail, mailsvc.ConfirmationSubject(order), html, text)
	if err != nil {
		logger.Error().Err(err).Str("order", order.OrderNumber).Msg("failed to send confirmation")
		writeJSON(ctx, w, http.StatusInternalServerError, api.Error{Error: "Failed to send email"})
		return
	}

	writeJSON(ctx, w, http.StatusOK, api.Message{Message: "Order confirmation email sent successfully"})
}

// SendAdminNotification renders and delivers the new-order alert to the
// configured admin address.
func (h *Handler) SendAdminNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, api.Error{Error: "Order data is required"})
		return
	}

	data := mailsvc.NewOrderData(order, h.adminEmail)
	html, text, err := mailsvc.RenderAdminNotification(data)
	if err != nil {
		logger.Error().Err(err).Str("order", order.OrderNumber).Msg("failed to render admin notification")
		writeJSON(ctx, w, http.StatusInternalServerError, api.Error{Error: "Failed to render email"})
		return
	}

	err = h.sender.Send(h.adminEmail, mailsvc.AdminSubject(order), html, text)
	if err != nil {
		logger.Error().Err(err).Str("order", order.OrderNumber).Msg("failed to send admin notification")
		writeJSON(ctx, w, http.StatusInternalServerError, api.Error{Error: "Failed to send admin notification"})
		return
	}

	writeJSON(ctx, w, http.StatusOK, api.Message{Message: "Admin notification email sent successfully"})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}
