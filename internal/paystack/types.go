package paystack

import (
	"bytes"
	"encoding/json"
	"time"

	syncdomain "github.com/campusmart/campusmart/internal/sync/domain"
)

// Wire shapes for the Paystack list endpoints. Every response is wrapped in
// the same envelope; `status` is false on API-level errors even with a 200.
type listEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    listMeta        `json:"meta"`
}

type listMeta struct {
	Total     int `json:"total"`
	PerPage   int `json:"perPage"`
	Page      int `json:"page"`
	PageCount int `json:"pageCount"`
}

type apiTransaction struct {
	Reference       string         `json:"reference"`
	Amount          int64          `json:"amount"`
	Currency        string         `json:"currency"`
	Status          string         `json:"status"`
	Channel         string         `json:"channel"`
	GatewayResponse string         `json:"gateway_response"`
	PaidAt          *paystackTime  `json:"paid_at"`
	Customer        apiCustomer    `json:"customer"`
	Subaccount      *apiSubaccount `json:"subaccount"`
	Metadata        apiMetadata    `json:"metadata"`
}

type apiCustomer struct {
	Email string `json:"email"`
}

type apiSubaccount struct {
	SubaccountCode string `json:"subaccount_code"`
}

type apiTransfer struct {
	Reference string        `json:"reference"`
	Amount    int64         `json:"amount"`
	Status    string        `json:"status"`
	CreatedAt *paystackTime `json:"createdAt"`
	Recipient apiRecipient  `json:"recipient"`
}

type apiRecipient struct {
	Email   string              `json:"email"`
	Details apiRecipientDetails `json:"details"`
}

type apiRecipientDetails struct {
	AccountNumber string `json:"account_number"`
}

// apiMetadata tolerates the three shapes Paystack actually sends: a JSON
// object, a JSON-encoded string of an object, or an empty string.
type apiMetadata struct {
	fields syncdomain.Metadata
	raw    []byte
}

func (m *apiMetadata) UnmarshalJSON(data []byte) error {
	m.fields = syncdomain.Metadata{}
	m.raw = nil

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return nil
		}
		if inner == "" {
			return nil
		}
		trimmed = []byte(inner)
	}

	var fields syncdomain.Metadata
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		// Unparseable metadata is not a record failure; the payment is
		// still reconcilable without it.
		return nil
	}
	m.fields = fields
	m.raw = append([]byte(nil), trimmed...)
	return nil
}

// paystackTime accepts the gateway's timestamp variants.
type paystackTime struct {
	time.Time
}

var paystackTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02 15:04:05",
}

func (t *paystackTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil || s == "" {
		return nil
	}
	for _, layout := range paystackTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return nil
}

func (t apiTransaction) toDomain() syncdomain.Transaction {
	out := syncdomain.Transaction{
		Reference:       t.Reference,
		Amount:          t.Amount,
		Currency:        t.Currency,
		Status:          t.Status,
		Channel:         t.Channel,
		GatewayResponse: t.GatewayResponse,
		CustomerEmail:   t.Customer.Email,
		Metadata:        t.Metadata.fields,
		MetadataRaw:     t.Metadata.raw,
	}
	if t.Subaccount != nil {
		out.SubaccountCode = t.Subaccount.SubaccountCode
	}
	if t.PaidAt != nil && !t.PaidAt.IsZero() {
		paidAt := t.PaidAt.Time
		out.PaidAt = &paidAt
	}
	return out
}

func (t apiTransfer) toDomain() syncdomain.Transfer {
	out := syncdomain.Transfer{
		Reference:              t.Reference,
		Amount:                 t.Amount,
		Status:                 t.Status,
		RecipientEmail:         t.Recipient.Email,
		RecipientAccountNumber: t.Recipient.Details.AccountNumber,
	}
	if t.CreatedAt != nil && !t.CreatedAt.IsZero() {
		createdAt := t.CreatedAt.Time
		out.CreatedAt = &createdAt
	}
	return out
}
