package domain

import (
	"context"
	"time"
)

// Ledger is the read side of the payment gateway: the full transaction and
// transfer history for a sync pass. Implemented by the paystack client;
// tests substitute a fake.
type Ledger interface {
	ListTransactions(ctx context.Context) ([]Transaction, error)
	ListTransfers(ctx context.Context) ([]Transfer, error)
}

// Transaction is one inbound payment as the gateway records it. Amount is in
// the minor currency unit (pesewas).
type Transaction struct {
	Reference       string
	Amount          int64
	Currency        string
	Status          string
	Channel         string
	GatewayResponse string
	PaidAt          *time.Time
	CustomerEmail   string
	SubaccountCode  string
	Metadata        Metadata
	MetadataRaw     []byte
}

// Metadata is the typed view of the gateway's free-form metadata object.
// Fields the storefront checkout attaches when it initializes a charge;
// all optional.
type Metadata struct {
	VendorID        string `json:"vendor_id"`
	OrderID         string `json:"order_id"`
	DeliveryAddress string `json:"delivery_address"`
	Phone           string `json:"phone"`
	MobileNumber    string `json:"mobile_number"`
	NetworkProvider string `json:"network_provider"`
}

// Transfer is one outbound payout as the gateway records it. Amount is in
// the minor currency unit.
type Transfer struct {
	Reference              string
	Amount                 int64
	Status                 string
	CreatedAt              *time.Time
	RecipientEmail         string
	RecipientAccountNumber string
}
