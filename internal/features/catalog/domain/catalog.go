package domain

// ProductCategory is one entry of the product showcase.
type ProductCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductCategories returns the showcase categories.
func ProductCategories() []ProductCategory {
	return []ProductCategory{
		{ID: "minerals", Name: "Rare Minerals & Gems"},
		{ID: "electronics", Name: "Vintage Electronics"},
		{ID: "crafts", Name: "Artisan Crafts"},
		{ID: "chemicals", Name: "Specialty Chemicals"},
		{ID: "collectibles", Name: "Rare Collectibles"},
		{ID: "industrial", Name: "Industrial Components"},
	}
}

// PaymentChannel describes one way to pay, with its account details.
type PaymentChannel struct {
	ID      string            `json:"id"`
	Title   string            `json:"title"`
	Details map[string]string `json:"details"`
}

// PaymentChannels returns the channels shown on the payment page.
func PaymentChannels() []PaymentChannel {
	return []PaymentChannel{
		{
			ID:    "bank",
			Title: "Bank Transfer",
			Details: map[string]string{
				"bank_name":      "Habib Bank Limited (HBL)",
				"account_title":  "ZC Traders Heritage Collection",
				"account_number": "12345678901234",
				"iban":           "PK36HABB0012345678901234",
				"branch_code":    "1234",
			},
		},
		{
			ID:    "easypaisa",
			Title: "Easypaisa",
			Details: map[string]string{
				"account_number": "03001234567",
				"account_title":  "ZC Traders",
				"charges":        "No additional charges for amounts above PKR 1,000",
			},
		},
		{
			ID:    "jazzcash",
			Title: "JazzCash",
			Details: map[string]string{
				"account_number": "03009876543",
				"account_title":  "ZC Traders",
				"charges":        "Standard JazzCash charges apply",
			},
		},
	}
}

// ContactPoint is one company inbox.
type ContactPoint struct {
	Label string `json:"label"`
	Email string `json:"email"`
}

// ContactEmails returns the company inboxes shown on the contact page.
func ContactEmails() []ContactPoint {
	return []ContactPoint{
		{Label: "General", Email: "hello@zctraders.com"},
		{Label: "Sales", Email: "sales@zctraders.com"},
		{Label: "Support", Email: "support@zctraders.com"},
	}
}
