package paystack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/campusmart/campusmart/internal/config"
	syncdomain "github.com/campusmart/campusmart/internal/sync/domain"
)

const defaultPageSize = 200

// Client fetches the gateway's transaction and transfer history. It is the
// only component that talks to the Paystack REST API.
type Client struct {
	baseURL   string
	secretKey string
	pageSize  int
	client    *http.Client
}

func NewClient(cfg config.PaystackConfig) *Client {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		secretKey: cfg.SecretKey,
		pageSize:  pageSize,
		client:    &http.Client{Timeout: cfg.RequestTimeout},
	}
}

func (c *Client) ListTransactions(ctx context.Context) ([]syncdomain.Transaction, error) {
	var out []syncdomain.Transaction
	err := c.listPages(ctx, "/transaction", func(data json.RawMessage) (int, error) {
		var page []apiTransaction
		if err := json.Unmarshal(data, &page); err != nil {
			return 0, fmt.Errorf("decode transactions: %w", err)
		}
		for _, tx := range page {
			out = append(out, tx.toDomain())
		}
		return len(page), nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListTransfers(ctx context.Context) ([]syncdomain.Transfer, error) {
	var out []syncdomain.Transfer
	err := c.listPages(ctx, "/transfer", func(data json.RawMessage) (int, error) {
		var page []apiTransfer
		if err := json.Unmarshal(data, &page); err != nil {
			return 0, fmt.Errorf("decode transfers: %w", err)
		}
		for _, tr := range page {
			out = append(out, tr.toDomain())
		}
		return len(page), nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// listPages walks a paginated list endpoint until the gateway reports the
// last page, or a short page arrives when it doesn't.
func (c *Client) listPages(ctx context.Context, path string, consume func(json.RawMessage) (int, error)) error {
	for page := 1; ; page++ {
		envelope, err := c.getPage(ctx, path, page)
		if err != nil {
			return err
		}

		count, err := consume(envelope.Data)
		if err != nil {
			return err
		}

		if envelope.Meta.PageCount > 0 {
			if page >= envelope.Meta.PageCount {
				return nil
			}
			continue
		}
		if count < c.pageSize {
			return nil
		}
	}
}

func (c *Client) getPage(ctx context.Context, path string, page int) (*listEnvelope, error) {
	values := url.Values{}
	values.Set("perPage", strconv.Itoa(c.pageSize))
	values.Set("page", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack %s: %w", path, err)
	}
	defer resp.Body.Close()

	var envelope listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("paystack %s: decode response: %w", path, err)
	}
	if resp.StatusCode >= http.StatusBadRequest || !envelope.Status {
		message := envelope.Message
		if message == "" {
			message = resp.Status
		}
		return nil, fmt.Errorf("paystack %s: %s", path, message)
	}
	return &envelope, nil
}
