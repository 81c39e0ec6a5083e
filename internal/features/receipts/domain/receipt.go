package domain

import (
	"fmt"
	"strconv"

	"zctraders-api/internal/core/form"
)

// PaymentMethods are the three channels a receipt can reference.
var PaymentMethods = []string{
	"Bank Transfer",
	"Easypaisa",
	"JazzCash",
}

// DirectChatGreeting opens a company chat without a filled receipt.
const DirectChatGreeting = "Hello! I would like to submit my payment receipt for order verification. 📋"

// Receipt is one submitted payment-receipt form. The order number is taken
// verbatim from the customer; nothing ties it to a stored order.
type Receipt struct {
	OrderNumber   string `json:"order_number"`
	PaymentMethod string `json:"payment_method"`
	TransactionID string `json:"transaction_id"`
	Amount        string `json:"amount"`
	CustomerName  string `json:"customer_name"`
}

// Validate checks the required fields, the payment method label, and that
// the amount is a number.
func (r Receipt) Validate() error {
	var v form.Validator
	v.Require("order_number", r.OrderNumber)
	v.Require("payment_method", r.PaymentMethod)
	v.OneOf("payment_method", r.PaymentMethod, PaymentMethods)
	v.Require("transaction_id", r.TransactionID)
	v.Require("amount", r.Amount)
	if r.Amount != "" {
		if _, err := strconv.ParseFloat(r.Amount, 64); err != nil {
			v.Add("amount", "must be numeric")
		}
	}
	v.Require("customer_name", r.CustomerName)
	return v.Err()
}

// SubmissionMessage renders the WhatsApp text sent to the company for
// payment verification. Pure and deterministic.
func (r Receipt) SubmissionMessage() string {
	return fmt.Sprintf("🧾 *Payment Receipt Submission*\n\n"+
		"📋 *Order Number:* %s\n"+
		"💳 *Payment Method:* %s\n"+
		"🔢 *Transaction ID:* %s\n"+
		"💰 *Amount:* PKR %s\n"+
		"👤 *Customer:* %s\n\n"+
		"Please verify this payment and confirm my order. Thank you! 🙏",
		r.OrderNumber, r.PaymentMethod, r.TransactionID, r.Amount, r.CustomerName)
}
