package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/luzbrill/pos-terminal/internal/domain/entity"
	"github.com/luzbrill/pos-terminal/internal/domain/port"
)

// SalesClient talks to the remote sales service, the authoritative owner of
// the sale lifecycle and of stock/credit enforcement at confirm time.
type SalesClient struct {
	api *api
}

var _ port.SalesService = (*SalesClient)(nil)

// NewSalesClient creates a sales-service client.
func NewSalesClient(baseURL string, timeout time.Duration) *SalesClient {
	return &SalesClient{api: newAPI(baseURL, "sales", timeout)}
}

// Create persists a new sale. asPending parks it in the deferred flow instead
// of the draft-awaiting-confirm flow. Each create carries a fresh idempotency
// key so a timed-out attempt retried by the operator cannot double-book.
func (c *SalesClient) Create(ctx context.Context, payload *entity.SalePayload, asPending bool) (*entity.Sale, error) {
	path := "/api/v1/sales"
	if asPending {
		path += "?pending=true"
	}
	headers := map[string]string{"Idempotency-Key": uuid.New().String()}

	var sale entity.Sale
	if err := c.api.do(ctx, http.MethodPost, path, "create", payload, &sale, headers); err != nil {
		return nil, err
	}
	return &sale, nil
}

// Update replaces the lines, tender and party of a pending sale.
func (c *SalesClient) Update(ctx context.Context, id int64, payload *entity.SalePayload) (*entity.Sale, error) {
	var sale entity.Sale
	path := fmt.Sprintf("/api/v1/sales/%d", id)
	if err := c.api.do(ctx, http.MethodPut, path, "update", payload, &sale, nil); err != nil {
		return nil, err
	}
	return &sale, nil
}

// Confirm promotes a freshly created draft sale.
func (c *SalesClient) Confirm(ctx context.Context, id int64) (*entity.Sale, error) {
	return c.post(ctx, id, "confirm", "confirm")
}

// ConfirmPending promotes a sale that was parked as pending.
func (c *SalesClient) ConfirmPending(ctx context.Context, id int64) (*entity.Sale, error) {
	return c.post(ctx, id, "confirm-pending", "confirm_pending")
}

// Annul voids a sale.
func (c *SalesClient) Annul(ctx context.Context, id int64) (*entity.Sale, error) {
	return c.post(ctx, id, "annul", "annul")
}

// Get fetches a sale with its lines.
func (c *SalesClient) Get(ctx context.Context, id int64) (*entity.Sale, error) {
	var sale entity.Sale
	path := fmt.Sprintf("/api/v1/sales/%d", id)
	if err := c.api.do(ctx, http.MethodGet, path, "get", nil, &sale, nil); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (c *SalesClient) post(ctx context.Context, id int64, action, operation string) (*entity.Sale, error) {
	var sale entity.Sale
	path := fmt.Sprintf("/api/v1/sales/%d/%s", id, action)
	if err := c.api.do(ctx, http.MethodPost, path, operation, nil, &sale, nil); err != nil {
		return nil, err
	}
	return &sale, nil
}
