package domain

import "strings"

// Channel identifies the delivery channel of a notification.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
)

// Message is an ephemeral outbound notification. It is constructed, handed
// to a gateway, and discarded; nothing is persisted.
type Message struct {
	Channel   Channel `json:"channel"`
	Recipient string  `json:"recipient"`
	Body      string  `json:"body"`
}

// InquiryEmail is the payload of the company-bound inquiry notification.
type InquiryEmail struct {
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// OrderEmail is the payload of the company-bound order notification.
// OrderNumber may be empty; the gateway fills it from the shared generator.
type OrderEmail struct {
	OrderNumber     string `json:"order_number,omitempty"`
	CustomerName    string `json:"customer_name"`
	Email           string `json:"email"`
	WhatsApp        string `json:"whatsapp"`
	Product         string `json:"product"`
	Quantity        int    `json:"quantity"`
	PaymentMethod   string `json:"payment_method"`
	DeliveryAddress string `json:"delivery_address"`
}

// WhatsAppLink builds the wa.me deep link for a phone number and message.
// The link format is a compatibility contract: every non-digit is stripped
// from the number and the message is encoded exactly like JavaScript's
// encodeURIComponent.
func WhatsAppLink(phoneNumber, message string) string {
	return "https://wa.me/" + DigitsOnly(phoneNumber) + "?text=" + EncodeURIComponent(message)
}

// DigitsOnly strips every character outside [0-9].
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes s with the same unreserved set as the
// JavaScript function of the same name: A-Z a-z 0-9 - _ . ! ~ * ' ( ).
// net/url is deliberately not used here: QueryEscape turns spaces into "+"
// and PathEscape escapes "!", either of which would change the wa.me links.
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isURIUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

func isURIUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
