package domain

import "zctraders-api/internal/core/form"

// ProductOther is the catalog entry that unlocks the free-text product field.
const ProductOther = "Other (Please Specify)"

// Products are the seven product labels offered on the order form.
var Products = []string{
	"Premium Gemstones Collection",
	"Rare Minerals & Crystals",
	"Precious Metal Artifacts",
	"Cultural Heritage Pieces",
	"Antique Jewelry Collection",
	"Custom Sourcing Request",
	ProductOther,
}

// PaymentMethods are the four payment options offered on the order form.
var PaymentMethods = []string{
	"Bank Transfer",
	"Easypaisa",
	"JazzCash",
	"Cash on Delivery",
}

// Order is one submitted order form. Request-scoped and never persisted;
// only its order number outlives the submission, in the ledger.
type Order struct {
	CustomerName        string `json:"customer_name"`
	WhatsApp            string `json:"whatsapp"`
	Email               string `json:"email"`
	Product             string `json:"product"`
	CustomProduct       string `json:"custom_product,omitempty"`
	Quantity            int    `json:"quantity"`
	PaymentMethod       string `json:"payment_method"`
	DeliveryAddress     string `json:"delivery_address"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

// CustomerEmail returns the acknowledgment address.
func (o Order) CustomerEmail() string { return o.Email }

// CustomerWhatsApp returns the confirmation WhatsApp number.
func (o Order) CustomerWhatsApp() string { return o.WhatsApp }

// ProductLabel is the product text carried by the outbound order email.
func (o Order) ProductLabel() string {
	if o.Product == ProductOther && o.CustomProduct != "" {
		return o.CustomProduct
	}
	return o.Product
}

// EmailDeliveryAddress folds the special instructions into the delivery
// address, matching the company-bound email layout.
func (o Order) EmailDeliveryAddress() string {
	return o.DeliveryAddress + "\n\nSpecial Instructions: " + o.SpecialInstructions
}

// Validate checks required fields, label membership, the conditional custom
// product, and the quantity floor. Special instructions stay optional.
func (o Order) Validate() error {
	var v form.Validator
	v.Require("customer_name", o.CustomerName)
	v.Require("whatsapp", o.WhatsApp)
	v.Require("email", o.Email)
	v.Require("product", o.Product)
	v.OneOf("product", o.Product, Products)
	if o.Product == ProductOther {
		v.Require("custom_product", o.CustomProduct)
	}
	if o.Quantity < 1 {
		v.Add("quantity", "must be at least 1")
	}
	v.Require("payment_method", o.PaymentMethod)
	v.OneOf("payment_method", o.PaymentMethod, PaymentMethods)
	v.Require("delivery_address", o.DeliveryAddress)
	return v.Err()
}
