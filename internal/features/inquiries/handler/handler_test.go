package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"zctraders-api/internal/features/inquiries/service"
	notifdomain "zctraders-api/internal/features/notifications/domain"
	"zctraders-api/internal/features/submission"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockEmailSender is a configurable EmailSender for handler tests.
type mockEmailSender struct {
	inquiryResult bool
}

func (m *mockEmailSender) SendInquiryEmail(ctx context.Context, email notifdomain.InquiryEmail) (bool, error) {
	return m.inquiryResult, nil
}

func (m *mockEmailSender) SendOrderEmail(ctx context.Context, email notifdomain.OrderEmail) (bool, error) {
	return true, nil
}

func (m *mockEmailSender) SendAcknowledgmentEmail(ctx context.Context, address string) (bool, error) {
	return true, nil
}

// mockWhatsAppSender always succeeds.
type mockWhatsAppSender struct{}

func (m *mockWhatsAppSender) SendWhatsAppMessage(ctx context.Context, phoneNumber, message string) (bool, error) {
	return true, nil
}

func newTestApp(emailResult bool) *fiber.App {
	svc := service.NewInquiryService(
		&mockEmailSender{inquiryResult: emailResult},
		&mockWhatsAppSender{},
		submission.NewMachine(0, nil),
	)
	h := NewInquiryHandler(svc)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Post("/inquiries", h.Submit)
	app.Get("/inquiries/status", h.Status)
	return app
}

// TestInquiryHandler_Submit_Success verifies the happy path.
func TestInquiryHandler_Submit_Success(t *testing.T) {
	app := newTestApp(true)

	body, _ := json.Marshal(fiber.Map{
		"name":     "Alice",
		"whatsapp": "+92 300 1234567",
		"email":    "alice@example.com",
		"category": "General Inquiry",
		"message":  "Hello",
	})
	req := httptest.NewRequest("POST", "/inquiries", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// TestInquiryHandler_Submit_ValidationFailure verifies a 400 with the
// failing fields listed.
func TestInquiryHandler_Submit_ValidationFailure(t *testing.T) {
	app := newTestApp(true)

	body, _ := json.Marshal(fiber.Map{
		"name":  "Alice",
		"email": "alice@example.com",
	})
	req := httptest.NewRequest("POST", "/inquiries", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "Validation failed", errResp.Message)
	assert.NotEmpty(t, errResp.Fields)
	assert.Equal(t, "test-ray-id", errResp.RayID)
}

// TestInquiryHandler_Submit_PrimaryFailure verifies the retry alert maps to 502.
func TestInquiryHandler_Submit_PrimaryFailure(t *testing.T) {
	app := newTestApp(false)

	body, _ := json.Marshal(fiber.Map{
		"name":     "Alice",
		"whatsapp": "+92 300 1234567",
		"email":    "alice@example.com",
		"category": "General Inquiry",
		"message":  "Hello",
	})
	req := httptest.NewRequest("POST", "/inquiries", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "Failed to send inquiry. Please try again.", errResp.Message)
}

// TestInquiryHandler_Status verifies the state endpoint.
func TestInquiryHandler_Status(t *testing.T) {
	app := newTestApp(true)

	resp, err := app.Test(httptest.NewRequest("GET", "/inquiries/status", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var status StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, submission.StateEditing, status.State)
}

// TestInquiryHandler_Submit_BadBody verifies malformed JSON maps to 400.
func TestInquiryHandler_Submit_BadBody(t *testing.T) {
	app := newTestApp(true)

	req := httptest.NewRequest("POST", "/inquiries", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
