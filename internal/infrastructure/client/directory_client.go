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

// DirectoryClient talks to the client directory for customers and their
// commercial privileges (discount, credit limit, cheque eligibility).
type DirectoryClient struct {
	api *api
}

var _ port.ClientDirectory = (*DirectoryClient)(nil)

// NewDirectoryClient creates a client-directory client.
func NewDirectoryClient(baseURL string, timeout time.Duration) *DirectoryClient {
	return &DirectoryClient{api: newAPI(baseURL, "directory", timeout)}
}

// GetClient fetches one client by id.
func (c *DirectoryClient) GetClient(ctx context.Context, id int64) (*entity.Client, error) {
	var cl entity.Client
	path := fmt.Sprintf("/api/v1/clients/%d", id)
	if err := c.api.do(ctx, http.MethodGet, path, "get_client", nil, &cl, nil); err != nil {
		return nil, err
	}
	return &cl, nil
}

// ListClients lists clients matching a name or tax-id substring.
func (c *DirectoryClient) ListClients(ctx context.Context, search string) ([]entity.Client, error) {
	path := "/api/v1/clients"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}

	var clients []entity.Client
	if err := c.api.do(ctx, http.MethodGet, path, "list_clients", nil, &clients, nil); err != nil {
		return nil, err
	}
	return clients, nil
}
