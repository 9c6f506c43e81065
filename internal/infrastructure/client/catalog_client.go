package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/luzbrill/pos-terminal/internal/domain/entity"
	"github.com/luzbrill/pos-terminal/internal/domain/port"
)

// CatalogClient talks to the catalog service for products and unique-use lab
// items. Stock levels in its responses are point-in-time observations.
type CatalogClient struct {
	api *api
}

var _ port.Catalog = (*CatalogClient)(nil)

// NewCatalogClient creates a catalog client.
func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{api: newAPI(baseURL, "catalog", timeout)}
}

// FindByBarcodeOrID resolves a scanned code: the catalog tries the barcode
// index first and falls back to a numeric item id.
func (c *CatalogClient) FindByBarcodeOrID(ctx context.Context, code string) (*entity.Item, error) {
	var item entity.Item
	path := "/api/v1/items/lookup/" + url.PathEscape(code)
	if err := c.api.do(ctx, http.MethodGet, path, "lookup", nil, &item, nil); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItem fetches one item by id. unique selects the lab-item namespace,
// which is disjoint from the product namespace.
func (c *CatalogClient) GetItem(ctx context.Context, id int64, unique bool) (*entity.Item, error) {
	var item entity.Item
	path := fmt.Sprintf("/api/v1/items/%d", id)
	if unique {
		path = fmt.Sprintf("/api/v1/lab-items/%d", id)
	}
	if err := c.api.do(ctx, http.MethodGet, path, "get_item", nil, &item, nil); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListAvailable lists sellable items matching the filter.
func (c *CatalogClient) ListAvailable(ctx context.Context, filter port.ItemFilter) ([]entity.Item, error) {
	q := url.Values{}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.OnlyUnique {
		q.Set("unique", "true")
	}
	path := "/api/v1/items"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var items []entity.Item
	if err := c.api.do(ctx, http.MethodGet, path, "list", nil, &items, nil); err != nil {
		return nil, err
	}
	return items, nil
}
