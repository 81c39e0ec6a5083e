package ports

import "context"

// OrderLedger records the order numbers this service has handed out, so a
// later payment receipt can be checked against them. Entries expire; the
// ledger is a convenience record, not an order store.
type OrderLedger interface {
	// Record remembers an issued order number.
	Record(ctx context.Context, orderNumber string) error
	// Exists reports whether the order number was issued recently.
	Exists(ctx context.Context, orderNumber string) (bool, error)
}
