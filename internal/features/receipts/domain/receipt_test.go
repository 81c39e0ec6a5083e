package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReceipt() Receipt {
	return Receipt{
		OrderNumber:   "ZC-2026-123",
		PaymentMethod: "Easypaisa",
		TransactionID: "TXN-778899",
		Amount:        "15000",
		CustomerName:  "Bob",
	}
}

// TestReceipt_Validate_OK verifies a fully filled receipt passes.
func TestReceipt_Validate_OK(t *testing.T) {
	assert.NoError(t, validReceipt().Validate())

	r := validReceipt()
	r.Amount = "1500.50"
	assert.NoError(t, r.Validate())
}

// TestReceipt_Validate_Failures verifies required fields, the payment
// method labels, and the numeric amount rule.
func TestReceipt_Validate_Failures(t *testing.T) {
	r := validReceipt()
	r.OrderNumber = ""
	assert.Error(t, r.Validate())

	r = validReceipt()
	r.PaymentMethod = "Cash on Delivery" // order-form option, not a receipt option
	assert.Error(t, r.Validate())

	r = validReceipt()
	r.Amount = "fifteen thousand"
	err := r.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount")
}

// TestReceipt_SubmissionMessage verifies the rendered verification text.
func TestReceipt_SubmissionMessage(t *testing.T) {
	r := validReceipt()
	msg := r.SubmissionMessage()

	assert.Contains(t, msg, "*Payment Receipt Submission*")
	assert.Contains(t, msg, "*Order Number:* ZC-2026-123")
	assert.Contains(t, msg, "*Payment Method:* Easypaisa")
	assert.Contains(t, msg, "*Transaction ID:* TXN-778899")
	assert.Contains(t, msg, "*Amount:* PKR 15000")
	assert.Contains(t, msg, "*Customer:* Bob")

	assert.Equal(t, msg, r.SubmissionMessage())
}
