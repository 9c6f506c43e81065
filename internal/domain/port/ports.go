// Package port declares the contracts toward the remote services this
// process depends on. Implementations live in internal/infrastructure/client.
package port

import (
	"context"

	"github.com/luzbrill/pos-terminal/internal/domain/entity"
)

// ItemFilter narrows a catalog listing.
type ItemFilter struct {
	Search     string
	OnlyUnique bool
}

// Catalog looks up sellable items. Stock levels are a point-in-time
// observation; the sales service re-checks them at confirm time.
type Catalog interface {
	FindByBarcodeOrID(ctx context.Context, code string) (*entity.Item, error)
	GetItem(ctx context.Context, id int64, unique bool) (*entity.Item, error)
	ListAvailable(ctx context.Context, filter ItemFilter) ([]entity.Item, error)
}

// ClientDirectory looks up clients and their commercial privileges.
type ClientDirectory interface {
	GetClient(ctx context.Context, id int64) (*entity.Client, error)
	ListClients(ctx context.Context, search string) ([]entity.Client, error)
}

// SalesService owns the persisted sale lifecycle. Confirm promotes a freshly
// created draft; ConfirmPending promotes a sale that was parked as pending.
type SalesService interface {
	Create(ctx context.Context, payload *entity.SalePayload, asPending bool) (*entity.Sale, error)
	Update(ctx context.Context, id int64, payload *entity.SalePayload) (*entity.Sale, error)
	Confirm(ctx context.Context, id int64) (*entity.Sale, error)
	ConfirmPending(ctx context.Context, id int64) (*entity.Sale, error)
	Annul(ctx context.Context, id int64) (*entity.Sale, error)
	Get(ctx context.Context, id int64) (*entity.Sale, error)
}
