package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/de-tools/booking-reports/pkg/models/api"
	"github.com/de-tools/booking-reports/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(to, subject, htmlBody, textBody string) error {
	args := m.Called(to, subject, htmlBody, textBody)
	return args.Error(0)
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	order := domain.Order{
		OrderNumber:   "ORD-001",
		CustomerName:  "John Doe",
		CustomerPhone: "+1234567890",
		CustomerEmail: "john@example.com",
		TotalAmount:   199.99,
		Status:        domain.StatusConfirmed,
		Items: []domain.LineItem{
			{ItemName: "Deluxe Room", ItemType: "room", Quantity: 1, TotalPrice: 149.99,
				CheckInDate: "2025-06-13", CheckOutDate: "2025-06-15", Nights: 2},
		},
	}
	orderBody, err := json.Marshal(order)
	require.NoError(t, err)

	tests := []struct {
		name           string
		method         string
		path           string
		body           []byte
		setupMocks     func(*mockSender)
		expectedStatus int
		check          func(t *testing.T, body []byte)
	}{
		{
			name:           "Health",
			method:         http.MethodGet,
			path:           "/health",
			setupMocks:     func(*mockSender) {},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var health api.Health
				require.NoError(t, json.Unmarshal(body, &health))
				assert.Equal(t, "ok", health.Status)
				assert.Equal(t, "Email service is running", health.Message)
				assert.NotEmpty(t, health.Timestamp)
			},
		},
		{
			name:   "SendOrderConfirmation",
			method: http.MethodPost,
			path:   "/send-order-confirmation",
			body:   orderBody,
			setupMocks: func(m *mockSender) {
				m.On("Send", "john@example.com", "Order Confirmation - ORD-001",
					mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var msg api.Message
				require.NoError(t, json.Unmarshal(body, &msg))
				assert.Equal(t, "Order confirmation email sent successfully", msg.Message)
			},
		},
		{
			name:   "SendAdminNotification",
			method: http.MethodPost,
			path:   "/send-admin-notification",
			body:   orderBody,
			setupMocks: func(m *mockSender) {
				m.On("Send", "admin@hotel.com", "New Order: ORD-001 - $199.99",
					mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var msg api.Message
				require.NoError(t, json.Unmarshal(body, &msg))
				assert.Equal(t, "Admin notification email sent successfully", msg.Message)
			},
		},
		{
			name:           "SendOrderConfirmation_MissingEmail",
			method:         http.MethodPost,
			path:           "/send-order-confirmation",
			body:           []byte(`{"order_number":"ORD-002"}`),
			setupMocks:     func(*mockSender) {},
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				var apiErr api.Error
				require.NoError(t, json.Unmarshal(body, &apiErr))
				assert.Equal(t, "Customer email is required", apiErr.Error)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sender := new(mockSender)
			tc.setupMocks(sender)

			router := ConfigureRouter(Config{
				Dependencies: Dependencies{
					Sender:     sender,
					AdminEmail: "admin@hotel.com",
					Logger:     logger,
				},
			})
			testServer := httptest.NewServer(router)
			defer testServer.Close()

			req, err := http.NewRequest(tc.method, testServer.URL+tc.path, bytes.NewReader(tc.body))
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")
			tc.check(t, body)

			sender.AssertExpectations(t)
		})
	}
}
