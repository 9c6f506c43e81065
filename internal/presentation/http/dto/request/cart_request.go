package request

import (
	"github.com/shopspring/decimal"
)

// CreateCartRequest opens a cart session, optionally pre-selecting a client.
type CreateCartRequest struct {
	ClientID         *int64 `json:"client_id"`
	RepresentativeID *int64 `json:"representative_id"`
}

// AddLineRequest identifies the item to add: a scanned code, or an explicit
// item id plus kind.
type AddLineRequest struct {
	Code   string `json:"code"`
	ItemID *int64 `json:"item_id"`
	Kind   string `json:"kind"`
}

// UpdateLineRequest carries optional per-line edits. Absent fields are left
// untouched.
type UpdateLineRequest struct {
	Quantity  *int             `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	Note      *string          `json:"note"`
}

// SetClientRequest selects the nominal client and optional representative.
type SetClientRequest struct {
	ClientID         int64  `json:"client_id" binding:"required"`
	RepresentativeID *int64 `json:"representative_id"`
}

// SetTenderRequest records the payment method and related figures.
type SetTenderRequest struct {
	Tender         string           `json:"tender" binding:"required"`
	AmountTendered *decimal.Decimal `json:"amount_tendered"`
	IsDelivery     *bool            `json:"is_delivery"`
}
