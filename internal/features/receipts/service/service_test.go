package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	notifdomain "zctraders-api/internal/features/notifications/domain"
	"zctraders-api/internal/features/receipts/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWhatsAppSender records sends and can be forced to fail.
type fakeWhatsAppSender struct {
	calls       int
	lastNumber  string
	lastMessage string
	result      bool
	err         error
}

func (f *fakeWhatsAppSender) SendWhatsAppMessage(ctx context.Context, phoneNumber, message string) (bool, error) {
	f.calls++
	f.lastNumber = phoneNumber
	f.lastMessage = message
	return f.result, f.err
}

// fakeLedger reports a fixed membership answer.
type fakeLedger struct {
	known bool
	err   error
}

func (f *fakeLedger) Record(ctx context.Context, orderNumber string) error { return nil }
func (f *fakeLedger) Exists(ctx context.Context, orderNumber string) (bool, error) {
	return f.known, f.err
}

func validReceipt() domain.Receipt {
	return domain.Receipt{
		OrderNumber:   "ZC-2026-412",
		PaymentMethod: "Bank Transfer",
		TransactionID: "TXN-1",
		Amount:        "2500",
		CustomerName:  "Bob",
	}
}

// TestReceiptService_Submit_Success verifies the message goes to the
// company number and the returned link targets it.
func TestReceiptService_Submit_Success(t *testing.T) {
	whatsapp := &fakeWhatsAppSender{result: true}
	svc := NewReceiptService(whatsapp, &fakeLedger{known: true}, "+923001234567")

	link, err := svc.Submit(context.Background(), validReceipt())
	require.NoError(t, err)

	assert.Equal(t, 1, whatsapp.calls)
	assert.Equal(t, "+923001234567", whatsapp.lastNumber)
	assert.Contains(t, whatsapp.lastMessage, "*Order Number:* ZC-2026-412")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/923001234567?text="))
	assert.Equal(t, notifdomain.WhatsAppLink("+923001234567", validReceipt().SubmissionMessage()), link)
}

// TestReceiptService_Submit_UnknownNumberStillForwarded verifies the ledger
// check is advisory only.
func TestReceiptService_Submit_UnknownNumberStillForwarded(t *testing.T) {
	whatsapp := &fakeWhatsAppSender{result: true}
	svc := NewReceiptService(whatsapp, &fakeLedger{known: false}, "+923001234567")

	_, err := svc.Submit(context.Background(), validReceipt())

	require.NoError(t, err)
	assert.Equal(t, 1, whatsapp.calls)
}

// TestReceiptService_Submit_LedgerErrorStillForwarded verifies a broken
// ledger does not block receipts.
func TestReceiptService_Submit_LedgerErrorStillForwarded(t *testing.T) {
	whatsapp := &fakeWhatsAppSender{result: true}
	svc := NewReceiptService(whatsapp, &fakeLedger{err: errors.New("redis down")}, "+923001234567")

	_, err := svc.Submit(context.Background(), validReceipt())

	require.NoError(t, err)
	assert.Equal(t, 1, whatsapp.calls)
}

// TestReceiptService_Submit_ValidationBlocks verifies nothing is sent for
// an incomplete receipt.
func TestReceiptService_Submit_ValidationBlocks(t *testing.T) {
	whatsapp := &fakeWhatsAppSender{result: true}
	svc := NewReceiptService(whatsapp, &fakeLedger{known: true}, "+923001234567")

	receipt := validReceipt()
	receipt.TransactionID = ""

	_, err := svc.Submit(context.Background(), receipt)

	require.Error(t, err)
	assert.Zero(t, whatsapp.calls)
}

// TestReceiptService_Submit_SendFailure verifies the failure surfaces.
func TestReceiptService_Submit_SendFailure(t *testing.T) {
	whatsapp := &fakeWhatsAppSender{result: false}
	svc := NewReceiptService(whatsapp, &fakeLedger{known: true}, "+923001234567")

	_, err := svc.Submit(context.Background(), validReceipt())
	assert.ErrorIs(t, err, ErrReceiptNotSent)
}

// TestReceiptService_DirectChatLink verifies the fixed-greeting chat link.
func TestReceiptService_DirectChatLink(t *testing.T) {
	svc := NewReceiptService(&fakeWhatsAppSender{result: true}, &fakeLedger{}, "+923001234567")

	link := svc.DirectChatLink()

	assert.True(t, strings.HasPrefix(link, "https://wa.me/923001234567?text=Hello!%20"))
	assert.Equal(t, notifdomain.WhatsAppLink("+923001234567", domain.DirectChatGreeting), link)
}
