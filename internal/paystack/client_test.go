package paystack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/campusmart/campusmart/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string, pageSize int) *Client {
	return NewClient(config.PaystackConfig{
		BaseURL:        baseURL,
		SecretKey:      "sk_test_abc",
		PageSize:       pageSize,
		RequestTimeout: 5 * time.Second,
	})
}

func TestListTransactionsPaginates(t *testing.T) {
	var gotAuth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transaction", r.URL.Path)
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		require.Equal(t, "2", r.URL.Query().Get("perPage"))

		page := r.URL.Query().Get("page")
		body := map[string]any{
			"status":  true,
			"message": "Transactions retrieved",
			"meta":    map[string]any{"pageCount": 2, "perPage": 2, "page": page},
		}
		switch page {
		case "1":
			body["data"] = []map[string]any{
				{"reference": "TX1", "amount": 5000, "currency": "GHS", "status": "success", "customer": map[string]any{"email": "a@x.com"}},
				{"reference": "TX2", "amount": 1000, "currency": "GHS", "status": "success", "customer": map[string]any{"email": "b@x.com"}},
			}
		case "2":
			body["data"] = []map[string]any{
				{"reference": "TX3", "amount": 2000, "currency": "GHS", "status": "failed", "customer": map[string]any{"email": "c@x.com"}},
			}
		default:
			t.Fatalf("unexpected page %q", page)
		}
		json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 2)
	transactions, err := client.ListTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, transactions, 3)
	assert.Equal(t, "TX1", transactions[0].Reference)
	assert.Equal(t, int64(5000), transactions[0].Amount)
	assert.Equal(t, "a@x.com", transactions[0].CustomerEmail)
	assert.Equal(t, "TX3", transactions[2].Reference)

	require.Len(t, gotAuth, 2)
	for _, auth := range gotAuth {
		assert.Equal(t, "Bearer sk_test_abc", auth)
	}
}

func TestListTransactionsStopsOnShortPage(t *testing.T) {
	var pages int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages++
		// No pageCount in meta: the client falls back to short-page detection.
		fmt.Fprint(w, `{"status":true,"message":"ok","meta":{},"data":[{"reference":"TX1","amount":100,"currency":"GHS","status":"success","customer":{"email":"a@x.com"}}]}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 50)
	transactions, err := client.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Len(t, transactions, 1)
	assert.Equal(t, 1, pages)
}

func TestListTransactionsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Paystack reports API-level failures with status=false, HTTP 200.
		fmt.Fprint(w, `{"status":false,"message":"Invalid key"}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 50)
	_, err := client.ListTransactions(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid key")
}

func TestListTransactionsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"status":false,"message":""}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 50)
	_, err := client.ListTransactions(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestListTransfersMapsRecipient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transfer", r.URL.Path)
		fmt.Fprint(w, `{"status":true,"message":"ok","meta":{"pageCount":1},"data":[
			{"reference":"TRF1","amount":20000,"status":"success","createdAt":"2026-02-14T10:30:00.000Z",
			 "recipient":{"email":"vendor@x.com","details":{"account_number":"0551234567"}}}
		]}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 50)
	transfers, err := client.ListTransfers(context.Background())
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	assert.Equal(t, "TRF1", transfers[0].Reference)
	assert.Equal(t, int64(20000), transfers[0].Amount)
	assert.Equal(t, "vendor@x.com", transfers[0].RecipientEmail)
	assert.Equal(t, "0551234567", transfers[0].RecipientAccountNumber)
	require.NotNil(t, transfers[0].CreatedAt)
	assert.Equal(t, time.Date(2026, 2, 14, 10, 30, 0, 0, time.UTC), transfers[0].CreatedAt.UTC())
}

func TestMetadataDecodeVariants(t *testing.T) {
	cases := []struct {
		name       string
		payload    string
		wantVendor string
		wantRaw    bool
	}{
		{
			name:       "object",
			payload:    `{"vendor_id":"123","order_id":"456"}`,
			wantVendor: "123",
			wantRaw:    true,
		},
		{
			name:       "json string",
			payload:    `"{\"vendor_id\":\"123\"}"`,
			wantVendor: "123",
			wantRaw:    true,
		},
		{name: "empty string", payload: `""`},
		{name: "null", payload: `null`},
		{name: "garbage string", payload: `"not json"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var m apiMetadata
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &m))
			assert.Equal(t, tc.wantVendor, m.fields.VendorID)
			if tc.wantRaw {
				assert.NotEmpty(t, m.raw)
			} else {
				assert.Empty(t, m.raw)
			}
		})
	}
}

func TestPaystackTimeLayouts(t *testing.T) {
	cases := []string{
		`"2026-02-14T10:30:00.000Z"`,
		`"2026-02-14T10:30:00Z"`,
		`"2026-02-14 10:30:00"`,
	}
	want := time.Date(2026, 2, 14, 10, 30, 0, 0, time.UTC)
	for _, raw := range cases {
		var ts paystackTime
		require.NoError(t, json.Unmarshal([]byte(raw), &ts))
		assert.Equal(t, want, ts.Time, "payload %s", raw)
	}

	var zero paystackTime
	require.NoError(t, json.Unmarshal([]byte(`null`), &zero))
	assert.True(t, zero.IsZero())
}

func TestTransactionToDomainSubaccount(t *testing.T) {
	var tx apiTransaction
	require.NoError(t, json.Unmarshal([]byte(`{
		"reference":"TX1","amount":5000,"currency":"GHS","status":"success",
		"channel":"mobile_money","gateway_response":"Approved",
		"paid_at":"2026-02-14T10:30:00Z",
		"customer":{"email":"Buyer@X.com"},
		"subaccount":{"subaccount_code":"ACCT_abc"},
		"metadata":{"vendor_id":"42"}
	}`), &tx))

	out := tx.toDomain()
	assert.Equal(t, "ACCT_abc", out.SubaccountCode)
	assert.Equal(t, "Buyer@X.com", out.CustomerEmail)
	assert.Equal(t, "mobile_money", out.Channel)
	assert.Equal(t, "42", out.Metadata.VendorID)
	require.NotNil(t, out.PaidAt)
	assert.Equal(t, time.Date(2026, 2, 14, 10, 30, 0, 0, time.UTC), out.PaidAt.UTC())
}
