package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"zctraders-api/internal/features/receipts/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockWhatsAppSender struct {
	result bool
}

func (m *mockWhatsAppSender) SendWhatsAppMessage(ctx context.Context, phoneNumber, message string) (bool, error) {
	return m.result, nil
}

type mockLedger struct{}

func (m *mockLedger) Record(ctx context.Context, orderNumber string) error { return nil }
func (m *mockLedger) Exists(ctx context.Context, orderNumber string) (bool, error) {
	return true, nil
}

func newTestApp(sendResult bool) *fiber.App {
	svc := service.NewReceiptService(&mockWhatsAppSender{result: sendResult}, &mockLedger{}, "+923001234567")
	h := NewReceiptHandler(svc)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Post("/receipts", h.Submit)
	app.Get("/receipts/whatsapp-link", h.DirectChatLink)
	return app
}

func receiptPayload() fiber.Map {
	return fiber.Map{
		"order_number":   "ZC-2026-321",
		"payment_method": "JazzCash",
		"transaction_id": "TXN-42",
		"amount":         "9800",
		"customer_name":  "Bob",
	}
}

// TestReceiptHandler_Submit_Success verifies the confirmation and link.
func TestReceiptHandler_Submit_Success(t *testing.T) {
	app := newTestApp(true)

	body, _ := json.Marshal(receiptPayload())
	req := httptest.NewRequest("POST", "/receipts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var submitted SubmittedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&submitted))
	assert.Contains(t, submitted.Message, "within 24 hours")
	assert.True(t, strings.HasPrefix(submitted.WhatsAppURL, "https://wa.me/923001234567?text="))
}

// TestReceiptHandler_Submit_Validation verifies a 400 for a bad amount.
func TestReceiptHandler_Submit_Validation(t *testing.T) {
	app := newTestApp(true)

	payload := receiptPayload()
	payload["amount"] = "lots"

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/receipts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// TestReceiptHandler_Submit_SendFailure verifies a 502 with the retry text.
func TestReceiptHandler_Submit_SendFailure(t *testing.T) {
	app := newTestApp(false)

	body, _ := json.Marshal(receiptPayload())
	req := httptest.NewRequest("POST", "/receipts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Contains(t, errResp.Message, "contact us directly")
}

// TestReceiptHandler_DirectChatLink verifies the greeting link endpoint.
func TestReceiptHandler_DirectChatLink(t *testing.T) {
	app := newTestApp(true)

	resp, err := app.Test(httptest.NewRequest("GET", "/receipts/whatsapp-link", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var link LinkResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&link))
	assert.True(t, strings.HasPrefix(link.URL, "https://wa.me/923001234567?text="))
}
