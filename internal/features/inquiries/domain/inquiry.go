package domain

import "zctraders-api/internal/core/form"

// Categories are the six inquiry categories offered on the form.
var Categories = []string{
	"Gemstones & Minerals",
	"Precious Metals",
	"Rare Artifacts",
	"Cultural Heritage Items",
	"Custom Sourcing",
	"General Inquiry",
}

// Inquiry is one submitted inquiry form. Request-scoped and never persisted.
type Inquiry struct {
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// CustomerEmail returns the acknowledgment address.
func (i Inquiry) CustomerEmail() string { return i.Email }

// CustomerWhatsApp returns the confirmation WhatsApp number.
func (i Inquiry) CustomerWhatsApp() string { return i.WhatsApp }

// Validate checks the required fields and the category label.
func (i Inquiry) Validate() error {
	var v form.Validator
	v.Require("name", i.Name)
	v.Require("whatsapp", i.WhatsApp)
	v.Require("email", i.Email)
	v.Require("category", i.Category)
	v.OneOf("category", i.Category, Categories)
	v.Require("message", i.Message)
	return v.Err()
}
