package domain

import "fmt"

// OrderConfirmationMessage renders the WhatsApp text sent to a customer
// after placing an order. Pure and deterministic.
func OrderConfirmationMessage(orderNumber, customerName string) string {
	return fmt.Sprintf("Hello %s! 👋\n\nYour order %s has been received successfully.\n\nOur team will contact you shortly with payment instructions.\n\nThank you for choosing ZC Traders! 🙏", customerName, orderNumber)
}

// InquiryAcknowledgmentMessage renders the WhatsApp text sent to a customer
// after submitting an inquiry. Pure and deterministic.
func InquiryAcknowledgmentMessage(customerName string) string {
	return fmt.Sprintf("Hello %s! 👋\n\nThank you for your inquiry. We have received your message and our team will get back to you within 24 hours.\n\nZC Traders - Your Global Sourcing Partner 🌍", customerName)
}
